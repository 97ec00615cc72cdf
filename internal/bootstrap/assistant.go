package bootstrap

import (
	"context"
	"time"

	"hotel-assistant/config"
	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/agent/orchestrator"
	"hotel-assistant/internal/agent/tools"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/conversation"
	convRepo "hotel-assistant/internal/conversation/repository"
	"hotel-assistant/internal/knowledge"
	"hotel-assistant/internal/router"
	"hotel-assistant/internal/sqlquery"
	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/sqldb"
)

// AssistantDeps are the backends the assistant talks to.
type AssistantDeps struct {
	LLM       llmprovider.Generator
	Databases Databases
	Searcher  knowledge.Searcher
	Booking   booking.UseCase
	// Store may be nil to keep sessions in process only.
	Store    convRepo.Store
	Location *time.Location
}

// Persona returns the hotel identity used in prompts and fixed replies.
func Persona(cfg *config.Config) agent.Persona {
	return agent.Persona{
		HotelName:     cfg.Hotel.Name,
		AssistantName: cfg.Hotel.AssistantName,
		Currency:      cfg.Hotel.Currency,
	}
}

// NewAssistant wires the router, the four executors, the follow-up and the
// orchestrator.
func NewAssistant(ctx context.Context, l log.Logger, cfg *config.Config, deps AssistantDeps) (*orchestrator.Orchestrator, error) {
	persona := Persona(cfg)

	facts, err := tools.ReadFacts(cfg.Hotel.FactsPath)
	if err != nil {
		return nil, err
	}
	activities := facts
	if cfg.Hotel.ActivitiesPath != "" {
		if activities, err = tools.ReadFacts(cfg.Hotel.ActivitiesPath); err != nil {
			return nil, err
		}
	}

	semanticRouter := router.New(deps.LLM, l, router.Config{
		HotelName:         cfg.Hotel.Name,
		AssistantName:     cfg.Hotel.AssistantName,
		Timeout:           cfg.Timeouts.Classify,
		ChatTopicOverride: cfg.Router.ChatTopicOverride,
	})

	executor := sqlquery.New(deps.Databases.ReadOnly, deps.Databases.Dialect, cfg.Timeouts.Query, l)

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewStructuredQueryTool(deps.LLM, executor, l, tools.StructuredQueryConfig{
		Persona:           persona,
		Dialect:           dialectName(deps.Databases.Dialect),
		MaxRows:           cfg.Query.MaxRows,
		Location:          deps.Location,
		GenerationTimeout: cfg.Timeouts.Generation,
	}))
	registry.Register(tools.NewSemanticLookupTool(deps.Searcher, deps.LLM, l, tools.SemanticLookupConfig{
		Persona:           persona,
		Candidates:        cfg.Knowledge.CandidateCount,
		TopK:              cfg.Knowledge.TopK,
		MinPassageLength:  cfg.Knowledge.MinPassageLength,
		RetrievalTimeout:  cfg.Timeouts.Retrieval,
		GenerationTimeout: cfg.Timeouts.Generation,
	}))
	registry.Register(tools.NewBookingRequestTool(deps.Booking, deps.LLM, l, tools.BookingRequestConfig{
		Persona:           persona,
		Location:          deps.Location,
		GenerationTimeout: cfg.Timeouts.Generation,
	}))
	registry.Register(tools.NewOpenChatTool(deps.LLM, l, persona, facts, cfg.Timeouts.Generation))

	if missing := registry.Missing(); len(missing) > 0 {
		l.Warnf(ctx, "No executor registered for %v", missing)
	}

	followup := tools.NewActivityFollowupTool(deps.LLM, l, activities, cfg.Timeouts.Generation)
	summarizer := conversation.NewLLMSummarizer(deps.LLM, cfg.Hotel.Name, cfg.Hotel.AssistantName)

	return orchestrator.New(semanticRouter, registry, followup, summarizer, deps.Store, l, orchestrator.Config{
		Persona:        persona,
		Location:       deps.Location,
		SessionTTL:     cfg.Session.TTL,
		MaxSessions:    cfg.Session.MaxSessions,
		SummaryTimeout: cfg.Timeouts.Summary,
		PersistTimeout: cfg.Timeouts.Persistence,
		TurnTimeout:    cfg.Timeouts.Turn,
	}), nil
}

func dialectName(d sqldb.Dialect) string {
	if d == sqldb.SQLite {
		return "SQLite"
	}
	return "PostgreSQL"
}
