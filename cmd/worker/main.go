package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"hotel-assistant/config"
	"hotel-assistant/internal/booking/delivery/worker"
	"hotel-assistant/internal/bootstrap"
	"hotel-assistant/pkg/log"
)

// main runs the asynq worker that sends booking confirmation emails and
// creates the hotel calendar events enqueued by the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting confirmation worker...")

	processor := bootstrap.NewDirectNotifier(ctx, logger, cfg)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			Logger:      asynqLogger{l: logger, ctx: ctx},
		},
	)

	mux := asynq.NewServeMux()
	worker.Register(mux, worker.New(logger, processor))

	if err := srv.Start(mux); err != nil {
		logger.Error(ctx, "Failed to start worker: ", err)
		return
	}

	<-ctx.Done()
	logger.Info(ctx, "Shutting down worker...")
	srv.Shutdown()
	logger.Info(ctx, "Worker stopped gracefully")
}

// asynqLogger routes asynq's own logs through the service logger.
type asynqLogger struct {
	l   log.Logger
	ctx context.Context
}

func (a asynqLogger) Debug(args ...interface{}) { a.l.Debug(a.ctx, args...) }
func (a asynqLogger) Info(args ...interface{})  { a.l.Info(a.ctx, args...) }
func (a asynqLogger) Warn(args ...interface{})  { a.l.Warn(a.ctx, args...) }
func (a asynqLogger) Error(args ...interface{}) { a.l.Error(a.ctx, args...) }
func (a asynqLogger) Fatal(args ...interface{}) { a.l.Fatal(a.ctx, args...) }
