package deepseek

import "context"

// IDeepSeek is the chat side of DeepSeek. It has no embeddings endpoint.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
