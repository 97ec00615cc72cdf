package http

import (
	"context"

	"hotel-assistant/internal/agent/orchestrator"
	"hotel-assistant/pkg/log"
)

// Assistant answers chat turns. It is implemented by *orchestrator.Orchestrator.
type Assistant interface {
	Handle(ctx context.Context, sessionID, utterance string) orchestrator.Reply
	Greeting() string
	Reset(ctx context.Context, sessionID string)
}

type handler struct {
	l         log.Logger
	assistant Assistant
}

// New creates the HTTP handler for chat sessions.
func New(l log.Logger, assistant Assistant) *handler {
	return &handler{
		l:         l,
		assistant: assistant,
	}
}
