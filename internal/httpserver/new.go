package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chatHTTP "hotel-assistant/internal/agent/delivery/http"
	tgDelivery "hotel-assistant/internal/agent/delivery/telegram"
	"hotel-assistant/internal/booking"
	bookingHTTP "hotel-assistant/internal/booking/delivery/http"
	"hotel-assistant/internal/middleware"
	"hotel-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	server      *http.Server

	// Chat domain
	assistant       chatHTTP.Assistant
	telegramHandler tgDelivery.Handler

	// Booking domain
	bookingUC booking.UseCase
	linker    bookingHTTP.ConversationLinker

	middleware middleware.Config
	readyCheck func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Chat domain
	Assistant       chatHTTP.Assistant
	TelegramHandler tgDelivery.Handler

	// Booking domain
	BookingUseCase booking.UseCase
	Linker         bookingHTTP.ConversationLinker

	Middleware middleware.Config
	// ReadyCheck reports whether backing stores are reachable. Optional.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		assistant:       cfg.Assistant,
		telegramHandler: cfg.TelegramHandler,
		bookingUC:       cfg.BookingUseCase,
		linker:          cfg.Linker,
		middleware:      cfg.Middleware,
		readyCheck:      cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	if srv.bookingUC == nil {
		return errors.New("booking use case is required")
	}
	return nil
}
