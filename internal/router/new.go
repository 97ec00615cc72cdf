package router

import (
	"context"
	"time"

	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, in ClassifyInput) RouterOutput
}

// Config controls prompt identity and the optional keyword policy.
type Config struct {
	HotelName         string
	AssistantName     string
	Timeout           time.Duration
	ChatTopicOverride bool
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm    llmprovider.Generator
	l      log.Logger
	cfg    Config
	topics *ChatTopicPolicy
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger, cfg Config) *SemanticRouter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultClassifyTimeout
	}
	r := &SemanticRouter{
		llm: llm,
		l:   l,
		cfg: cfg,
	}
	if cfg.ChatTopicOverride {
		r.topics = NewChatTopicPolicy()
	}
	return r
}
