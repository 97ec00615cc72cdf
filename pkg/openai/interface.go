package openai

import "context"

// IOpenAI is the subset of the OpenAI API the assistant uses.
type IOpenAI interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Model() string
}
