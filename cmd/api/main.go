package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"hotel-assistant/config"
	_ "hotel-assistant/docs" // Swagger docs
	tgDelivery "hotel-assistant/internal/agent/delivery/telegram"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/notify"
	"hotel-assistant/internal/bootstrap"
	"hotel-assistant/internal/httpserver"
	"hotel-assistant/internal/middleware"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/telegram"
)

// @title       Hotel Assistant API
// @description Chat assistant and booking service for a boutique hotel.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s assistant for %s...", cfg.Hotel.AssistantName, cfg.Hotel.Name)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	loc := bootstrap.Location(ctx, logger, cfg)

	// 3. Infrastructure
	dbs, err := bootstrap.OpenDatabases(ctx, logger, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer dbs.Close()

	llm, err := bootstrap.NewLLM(logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	knowledgeStore, err := bootstrap.NewKnowledgeStore(logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize knowledge store: ", err)
		return
	}

	sessionStore, closeStore, err := bootstrap.NewConversationStore(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}
	defer closeStore()

	// 4. Booking domain
	var notifier booking.Notifier
	if cfg.Queue.Enabled {
		client := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		notifier = notify.NewQueued(logger, client, cfg.Queue.MaxRetry, cfg.GoogleCalendar.Enabled)
		logger.Info(ctx, "Booking confirmations are queued for the worker")
	} else {
		notifier = bootstrap.NewDirectNotifier(ctx, logger, cfg)
	}
	bookingUC := bootstrap.NewBookingUseCase(logger, dbs, notifier, loc, cfg)

	// 5. Assistant
	assistant, err := bootstrap.NewAssistant(ctx, logger, cfg, bootstrap.AssistantDeps{
		LLM:       llm,
		Databases: dbs,
		Searcher:  knowledgeStore,
		Booking:   bookingUC,
		Store:     sessionStore,
		Location:  loc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}

	// 6. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistant, bot, tgDelivery.Config{
			SecretToken: cfg.Telegram.SecretToken,
			Timeout:     cfg.Timeouts.Turn,
		})

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram disabled")
	}

	// 7. HTTP Server
	rateLimit := 0
	if cfg.RateLimit.Enabled {
		rateLimit = cfg.RateLimit.PerMinute
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Assistant:       assistant,
		TelegramHandler: telegramHandler,
		BookingUseCase:  bookingUC,
		Linker:          assistant,
		Middleware:      middleware.Config{RateLimitPerMinute: rateLimit},
		ReadyCheck:      dbs.Main.PingContext,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
