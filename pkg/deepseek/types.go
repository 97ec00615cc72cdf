package deepseek

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Request is a chat completion input. Model falls back to the client's model.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

type Message struct {
	Role    string
	Content string
}

type Response struct {
	ID      string
	Model   string
	Choices []Choice
	Usage   Usage
}

type Choice struct {
	Index        int
	Message      Message
	FinishReason string
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
