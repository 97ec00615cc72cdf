package config

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	KnowledgeQdrant  = "qdrant"
	KnowledgeChromem = "chromem"

	EmbedderVoyage = "voyage"
	EmbedderOpenAI = "openai"
)
