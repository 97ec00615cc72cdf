package chromem

import (
	"context"
	"fmt"

	chromemgo "github.com/philippgille/chromem-go"

	"hotel-assistant/internal/knowledge"
	pkgLog "hotel-assistant/pkg/log"
)

const (
	metaSource = "source"

	embedBatchSize = 64
)

type implRepository struct {
	db         *chromemgo.DB
	collection *chromemgo.Collection
	embedder   knowledge.Embedder
	l          pkgLog.Logger
}

// New creates a local chromem-go knowledge store. An empty path keeps the
// index in memory; otherwise it is persisted under path.
func New(path, collectionName string, embedder knowledge.Embedder, l pkgLog.Logger) (knowledge.Store, error) {
	var (
		db  *chromemgo.DB
		err error
	)
	if path == "" {
		db = chromemgo.NewDB()
	} else {
		db, err = chromemgo.NewPersistentDB(path, true)
		if err != nil {
			return nil, fmt.Errorf("open chromem db: %w", err)
		}
	}

	col, err := db.GetOrCreateCollection(collectionName, nil, queryFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &implRepository{db: db, collection: col, embedder: embedder, l: l}, nil
}

// queryFunc adapts the embedder for chromem, which embeds one text at a time.
func queryFunc(e knowledge.Embedder) chromemgo.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.EmbedQuery(ctx, text)
	}
}
