package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hotel-assistant/internal/knowledge"
	pkgQdrant "hotel-assistant/pkg/qdrant"
)

// Search embeds text as a query and returns the k nearest passages.
func (r *implRepository) Search(ctx context.Context, text string, k int) ([]knowledge.Passage, error) {
	vector, err := r.embedder.EmbedQuery(ctx, text)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/qdrant.Search embed: %v", err)
		return nil, fmt.Errorf("%w: %v", knowledge.ErrEmbeddingFailed, err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/qdrant.Search: %v", err)
		return nil, fmt.Errorf("%w: %v", knowledge.ErrSearchFailed, err)
	}

	passages := make([]knowledge.Passage, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, _ := p.Payload[payloadText].(string)
		if text == "" {
			continue
		}
		source, _ := p.Payload[payloadSource].(string)
		passages = append(passages, knowledge.Passage{Text: text, Source: source, Score: p.Score})
	}
	return passages, nil
}

// Upsert embeds and stores docs, creating the collection on first use.
func (r *implRepository) Upsert(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return nil
	}

	if err := r.client.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: pkgQdrant.DistanceCosine},
	}); err != nil {
		r.l.Errorf(ctx, "knowledge/repository/qdrant.Upsert collection: %v", err)
		return fmt.Errorf("%w: %v", knowledge.ErrUpsertFailed, err)
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vectors, err := knowledge.EmbedBatched(ctx, r.embedder, texts, embedBatchSize)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/qdrant.Upsert embed: %v", err)
		return err
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		points[i] = pkgQdrant.Point{
			ID:     pointID(d.ID),
			Vector: vectors[i],
			Payload: map[string]any{
				payloadDocID:  d.ID,
				payloadText:   d.Text,
				payloadSource: d.Source,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "knowledge/repository/qdrant.Upsert: %v", err)
		return fmt.Errorf("%w: %v", knowledge.ErrUpsertFailed, err)
	}
	r.l.Infof(ctx, "knowledge/repository/qdrant.Upsert: indexed %d documents", len(points))
	return nil
}

// pointID maps a document id onto the UUID space Qdrant accepts.
func pointID(docID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(docID)).String()
}
