// Package bootstrap builds the service components from configuration. It is
// shared by the API server, the worker and the CLI.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hotel-assistant/config"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/notify"
	bookingRepo "hotel-assistant/internal/booking/repository/sqlstore"
	bookingUC "hotel-assistant/internal/booking/usecase"
	convRepo "hotel-assistant/internal/conversation/repository"
	"hotel-assistant/internal/conversation/repository/memory"
	redisStore "hotel-assistant/internal/conversation/repository/redis"
	"hotel-assistant/internal/knowledge"
	chromemRepo "hotel-assistant/internal/knowledge/repository/chromem"
	qdrantRepo "hotel-assistant/internal/knowledge/repository/qdrant"
	"hotel-assistant/pkg/email"
	"hotel-assistant/pkg/gcalendar"
	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/openai"
	"hotel-assistant/pkg/qdrant"
	"hotel-assistant/pkg/sqldb"
	"hotel-assistant/pkg/voyage"
)

const (
	backendQdrant  = "qdrant"
	backendChromem = "chromem"

	embedderVoyage = "voyage"
	embedderOpenAI = "openai"

	sessionStoreRedis = "redis"
)

// Location loads the hotel time zone, falling back to UTC.
func Location(ctx context.Context, l log.Logger, cfg *config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Hotel.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Hotel.Timezone, err)
		return time.UTC
	}
	return loc
}

// Databases holds the read-write pool used for bookings and the pool used by
// the structured-query executor. They are the same pool when no read-only
// DSN is configured.
type Databases struct {
	Dialect  sqldb.Dialect
	Main     *sql.DB
	ReadOnly *sql.DB
}

// Close closes both pools.
func (d Databases) Close() {
	if d.ReadOnly != nil && d.ReadOnly != d.Main {
		d.ReadOnly.Close()
	}
	if d.Main != nil {
		d.Main.Close()
	}
}

// OpenDatabases connects to the relational store and makes sure the booking
// schema exists.
func OpenDatabases(ctx context.Context, l log.Logger, cfg config.DatabaseConfig) (Databases, error) {
	dialect := sqldb.Dialect(cfg.Driver)

	main, err := sqldb.Open(ctx, sqldb.Config{Dialect: dialect, DSN: cfg.DSN})
	if err != nil {
		return Databases{}, fmt.Errorf("open database: %w", err)
	}
	if err := bookingRepo.EnsureSchema(ctx, main, dialect); err != nil {
		main.Close()
		return Databases{}, fmt.Errorf("ensure schema: %w", err)
	}

	dbs := Databases{Dialect: dialect, Main: main, ReadOnly: main}
	if cfg.ReadOnlyDSN != "" {
		ro, err := sqldb.Open(ctx, sqldb.Config{Dialect: dialect, DSN: cfg.ReadOnlyDSN})
		if err != nil {
			l.Warnf(ctx, "Read-only database not available, queries use the main pool: %v", err)
		} else {
			dbs.ReadOnly = ro
		}
	}
	return dbs, nil
}

// NewLLM builds the provider manager from the llm section.
func NewLLM(l log.Logger, cfg *config.Config) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM providers: %w", err)
	}
	return llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l), nil
}

// NewEmbedder returns the configured embedding client.
func NewEmbedder(cfg *config.Config) (knowledge.Embedder, error) {
	switch cfg.Knowledge.Embedder {
	case embedderVoyage:
		client, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			return nil, err
		}
		if cfg.Voyage.Model != "" {
			client = client.WithModel(cfg.Voyage.Model)
		}
		return client, nil
	case embedderOpenAI:
		client, err := openai.New(openai.Config{
			APIKey:         cfg.OpenAI.APIKey,
			BaseURL:        cfg.OpenAI.BaseURL,
			EmbeddingModel: cfg.OpenAI.EmbeddingModel,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown embedder %q", cfg.Knowledge.Embedder)
	}
}

// NewKnowledgeStore returns the configured passage index.
func NewKnowledgeStore(l log.Logger, cfg *config.Config) (knowledge.Store, error) {
	embedder, err := NewEmbedder(cfg)
	if err != nil {
		return nil, fmt.Errorf("knowledge embedder: %w", err)
	}

	switch cfg.Knowledge.Backend {
	case backendQdrant:
		client := qdrant.NewClient(cfg.Qdrant.URL)
		return qdrantRepo.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l), nil
	case backendChromem:
		return chromemRepo.New(cfg.Knowledge.ChromemPath, cfg.Knowledge.Collection, embedder, l)
	default:
		return nil, fmt.Errorf("unknown knowledge backend %q", cfg.Knowledge.Backend)
	}
}

// NewConversationStore returns the session store and a close function.
func NewConversationStore(ctx context.Context, l log.Logger, cfg *config.Config) (convRepo.Store, func(), error) {
	if cfg.Session.Store != sessionStoreRedis {
		return memory.New(cfg.Session.MaxSessions, cfg.Session.TTL), func() {}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return redisStore.New(client, cfg.Session.TTL, l), func() { client.Close() }, nil
}

// NewDirectNotifier builds the inline email and calendar side effects.
// Either may be missing; the notifier reports that per booking.
func NewDirectNotifier(ctx context.Context, l log.Logger, cfg *config.Config) *notify.Direct {
	dc := notify.DirectConfig{
		Template:        notify.Template{HotelName: cfg.Hotel.Name, Currency: cfg.Hotel.Currency},
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		EmailTimeout:    cfg.Timeouts.Email,
		CalendarTimeout: cfg.Timeouts.Email,
	}

	if cfg.SMTP.Enabled {
		sender, err := email.New(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Timeout:  cfg.Timeouts.Email,
		})
		if err != nil {
			l.Warnf(ctx, "SMTP not available: %v", err)
		} else {
			dc.Mailer = sender
		}
	}

	if cfg.GoogleCalendar.Enabled {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			dc.Calendar = client
		}
	}

	return notify.NewDirect(l, dc)
}

// NewBookingUseCase builds the booking state machine on the main pool.
func NewBookingUseCase(l log.Logger, dbs Databases, notifier booking.Notifier, loc *time.Location, cfg *config.Config) booking.UseCase {
	repo := bookingRepo.New(dbs.Main, dbs.Dialect, l)
	return bookingUC.New(l, repo, notifier, bookingUC.Config{
		Location:           loc,
		PersistenceTimeout: cfg.Timeouts.Persistence,
	})
}
