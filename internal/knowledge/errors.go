package knowledge

import "errors"

var (
	ErrEmbeddingFailed = errors.New("failed to embed text")
	ErrSearchFailed    = errors.New("failed to search knowledge index")
	ErrUpsertFailed    = errors.New("failed to index documents")
	ErrInvalidDocument = errors.New("document text is empty")
)
