package openai

const (
	DefaultChatModel      = "gpt-3.5-turbo"
	DefaultEmbeddingModel = "text-embedding-3-small"

	maxEmbedBatch = 100
)
