package openai

// Config configures both the chat and embedding sides of the client.
// BaseURL is optional and points the client at any OpenAI-compatible endpoint.
type Config struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	BaseURL        string
}

// ChatRequest is a provider-neutral chat completion input.
type ChatRequest struct {
	System      string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

type ChatMessage struct {
	Role    string
	Content string
}

// ChatResponse is the first choice plus token usage.
type ChatResponse struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
