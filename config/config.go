package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Hotel     HotelConfig
	Router    RouterConfig
	Timeouts  TimeoutsConfig
	Session   SessionConfig
	Knowledge KnowledgeConfig
	Query     QueryConfig

	// Backends
	Database       DatabaseConfig
	Redis          RedisConfig
	Qdrant         QdrantConfig
	Voyage         VoyageConfig
	OpenAI         OpenAIConfig
	SMTP           SMTPConfig
	GoogleCalendar GoogleCalendarConfig
	Queue          QueueConfig

	// Channels
	Telegram  TelegramConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// HotelConfig describes the property the assistant speaks for.
type HotelConfig struct {
	Name           string
	AssistantName  string
	Timezone       string
	FactsPath      string
	ActivitiesPath string
	Currency       string
	ContactEmail   string
}

type RouterConfig struct {
	ChatTopicOverride bool
}

// TimeoutsConfig bounds every blocking backend call made during a turn.
type TimeoutsConfig struct {
	Classify    time.Duration
	Query       time.Duration
	Retrieval   time.Duration
	Generation  time.Duration
	Persistence time.Duration
	Email       time.Duration
	Summary     time.Duration
	Turn        time.Duration
}

type SessionConfig struct {
	Store       string // memory | redis
	TTL         time.Duration
	MaxSessions int
}

type KnowledgeConfig struct {
	Backend          string // qdrant | chromem
	Embedder         string // voyage | openai
	CandidateCount   int
	TopK             int
	MinPassageLength int
	ChromemPath      string
	Collection       string
}

type QueryConfig struct {
	MaxRows int
}

type DatabaseConfig struct {
	Driver      string // postgres | sqlite
	DSN         string
	ReadOnlyDSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig is used for embeddings; chat goes through llm.providers.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	EmbeddingModel string
}

type SMTPConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

type QueueConfig struct {
	Enabled     bool
	Concurrency int
	MaxRetry    int
}

type TelegramConfig struct {
	Enabled     bool
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Hotel
	cfg.Hotel.Name = viper.GetString("hotel.name")
	cfg.Hotel.AssistantName = viper.GetString("hotel.assistant_name")
	cfg.Hotel.Timezone = viper.GetString("hotel.timezone")
	cfg.Hotel.FactsPath = viper.GetString("hotel.facts_path")
	cfg.Hotel.ActivitiesPath = viper.GetString("hotel.activities_path")
	cfg.Hotel.Currency = viper.GetString("hotel.currency")
	cfg.Hotel.ContactEmail = viper.GetString("hotel.contact_email")

	cfg.Router.ChatTopicOverride = viper.GetBool("router.chat_topic_override")

	cfg.Timeouts.Classify = viper.GetDuration("timeouts.classify")
	cfg.Timeouts.Query = viper.GetDuration("timeouts.query")
	cfg.Timeouts.Retrieval = viper.GetDuration("timeouts.retrieval")
	cfg.Timeouts.Generation = viper.GetDuration("timeouts.generation")
	cfg.Timeouts.Persistence = viper.GetDuration("timeouts.persistence")
	cfg.Timeouts.Email = viper.GetDuration("timeouts.email")
	cfg.Timeouts.Summary = viper.GetDuration("timeouts.summary")
	cfg.Timeouts.Turn = viper.GetDuration("timeouts.turn")

	cfg.Session.Store = viper.GetString("session.store")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	cfg.Knowledge.Backend = viper.GetString("knowledge.backend")
	cfg.Knowledge.Embedder = viper.GetString("knowledge.embedder")
	cfg.Knowledge.CandidateCount = viper.GetInt("knowledge.candidate_count")
	cfg.Knowledge.TopK = viper.GetInt("knowledge.top_k")
	cfg.Knowledge.MinPassageLength = viper.GetInt("knowledge.min_passage_length")
	cfg.Knowledge.ChromemPath = viper.GetString("knowledge.chromem_path")
	cfg.Knowledge.Collection = viper.GetString("knowledge.collection")

	cfg.Query.MaxRows = viper.GetInt("structured_query.max_rows")

	// Backends
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.ReadOnlyDSN = viper.GetString("database.read_only_dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.EmbeddingModel = viper.GetString("openai.embedding_model")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.OpenAI.APIKey = openaiKey
	}

	cfg.SMTP.Enabled = viper.GetBool("smtp.enabled")
	cfg.SMTP.Host = viper.GetString("smtp.host")
	cfg.SMTP.Port = viper.GetInt("smtp.port")
	cfg.SMTP.Username = viper.GetString("smtp.username")
	cfg.SMTP.Password = expandEnvVar(viper.GetString("smtp.password"))
	cfg.SMTP.From = viper.GetString("smtp.from")
	if smtpPassword := viper.GetString("smtp_password"); smtpPassword != "" {
		cfg.SMTP.Password = smtpPassword
	}

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Queue.Enabled = viper.GetBool("queue.enabled")
	cfg.Queue.Concurrency = viper.GetInt("queue.concurrency")
	cfg.Queue.MaxRetry = viper.GetInt("queue.max_retry")

	// Channels
	cfg.Telegram.Enabled = viper.GetBool("telegram.enabled")
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		cfg.LLM.Providers = parseProviders(viper.Get("llm.providers"))
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := validateBackends(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("hotel.name", "Chez Govinda")
	viper.SetDefault("hotel.assistant_name", "George")
	viper.SetDefault("hotel.timezone", "Europe/Paris")
	viper.SetDefault("hotel.facts_path", "config/hotel_facts.txt")
	viper.SetDefault("hotel.currency", "€")

	viper.SetDefault("router.chat_topic_override", false)

	viper.SetDefault("timeouts.classify", "15s")
	viper.SetDefault("timeouts.query", "10s")
	viper.SetDefault("timeouts.retrieval", "10s")
	viper.SetDefault("timeouts.generation", "30s")
	viper.SetDefault("timeouts.persistence", "10s")
	viper.SetDefault("timeouts.email", "15s")
	viper.SetDefault("timeouts.summary", "20s")
	viper.SetDefault("timeouts.turn", "90s")

	viper.SetDefault("session.store", "memory")
	viper.SetDefault("session.ttl", "2h")
	viper.SetDefault("session.max_sessions", 1000)

	viper.SetDefault("knowledge.backend", "chromem")
	viper.SetDefault("knowledge.embedder", "openai")
	viper.SetDefault("knowledge.candidate_count", 30)
	viper.SetDefault("knowledge.top_k", 10)
	viper.SetDefault("knowledge.min_passage_length", 50)
	viper.SetDefault("knowledge.collection", "hotel_documents")

	viper.SetDefault("structured_query.max_rows", 50)

	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetDefault("qdrant.collection_name", "hotel_documents")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("smtp.port", 587)

	viper.SetDefault("queue.concurrency", 10)
	viper.SetDefault("queue.max_retry", 5)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

func parseProviders(raw interface{}) []ProviderConfig {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var providers []ProviderConfig
	for _, p := range list {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateBackends(cfg *Config) error {
	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("session.store must be %q or %q, got %q", SessionStoreMemory, SessionStoreRedis, cfg.Session.Store)
	}

	switch cfg.Knowledge.Backend {
	case KnowledgeQdrant, KnowledgeChromem:
	default:
		return fmt.Errorf("knowledge.backend must be %q or %q, got %q", KnowledgeQdrant, KnowledgeChromem, cfg.Knowledge.Backend)
	}
	if cfg.Knowledge.CandidateCount < 10 {
		return fmt.Errorf("knowledge.candidate_count must be at least 10, got %d", cfg.Knowledge.CandidateCount)
	}
	if cfg.Knowledge.TopK <= 0 {
		return fmt.Errorf("knowledge.top_k must be positive")
	}

	if cfg.Queue.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("queue.enabled requires redis.addr")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// JSON numbers decode as float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
