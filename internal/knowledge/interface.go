package knowledge

import "context"

// Searcher returns up to k passages ranked by similarity to text.
type Searcher interface {
	Search(ctx context.Context, text string, k int) ([]Passage, error)
}

// Indexer adds or replaces documents in the index.
type Indexer interface {
	Upsert(ctx context.Context, docs []Document) error
}

// Store is a searchable index.
type Store interface {
	Searcher
	Indexer
}

// Embedder turns text into vectors. Documents and queries may be embedded
// differently. Both the Voyage and the OpenAI clients satisfy it.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
