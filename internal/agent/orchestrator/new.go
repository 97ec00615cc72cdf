package orchestrator

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/conversation/repository"
	"hotel-assistant/internal/router"
	pkgLog "hotel-assistant/pkg/log"
)

// Config controls session lifetime and the hotel clock.
type Config struct {
	Persona        agent.Persona
	Location       *time.Location
	SessionTTL     time.Duration
	MaxSessions    int
	SummaryTimeout time.Duration
	PersistTimeout time.Duration
	// TurnTimeout bounds classification and execution of one turn. Zero disables it.
	TurnTimeout time.Duration
}

// Orchestrator runs classify, dispatch, record and reply for every turn.
type Orchestrator struct {
	router     router.Router
	registry   *agent.ToolRegistry
	followup   agent.Tool
	summarizer conversation.Summarizer
	store      repository.Store
	l          pkgLog.Logger
	cfg        Config
	now        func() time.Time

	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	pinned   map[string]*session
}

// New creates an orchestrator. followup handles the turn after a booking
// confirmation; store may be nil to keep sessions in process only.
func New(r router.Router, registry *agent.ToolRegistry, followup agent.Tool, summarizer conversation.Summarizer, store repository.Store, l pkgLog.Logger, cfg Config) *Orchestrator {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = DefaultPersistTimeout
	}
	return &Orchestrator{
		router:     r,
		registry:   registry,
		followup:   followup,
		summarizer: summarizer,
		store:      store,
		l:          l,
		cfg:        cfg,
		now:        time.Now,
		sessions:   expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		pinned:     make(map[string]*session),
	}
}

// Greeting is shown to a guest opening a new conversation.
func (o *Orchestrator) Greeting() string {
	return o.cfg.Persona.Greeting()
}
