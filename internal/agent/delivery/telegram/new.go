package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/agent/orchestrator"
	pkgLog "hotel-assistant/pkg/log"
	pkgTelegram "hotel-assistant/pkg/telegram"
)

// Assistant answers chat turns. It is implemented by *orchestrator.Orchestrator.
type Assistant interface {
	Handle(ctx context.Context, sessionID, utterance string) orchestrator.Reply
	Greeting() string
	Reset(ctx context.Context, sessionID string)
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds the webhook secret and the time allowed for one update.
type Config struct {
	SecretToken string
	Timeout     time.Duration
}

type handler struct {
	l         pkgLog.Logger
	assistant Assistant
	bot       *pkgTelegram.Bot
	cfg       Config
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, assistant Assistant, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &handler{
		l:         l,
		assistant: assistant,
		bot:       bot,
		cfg:       cfg,
	}
}
