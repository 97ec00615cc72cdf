package conversation

import "context"

// Summarizer regenerates a digest from the whole turn history.
type Summarizer interface {
	Summarize(ctx context.Context, turns []Turn) (string, error)
}
