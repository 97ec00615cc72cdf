package chromem

import (
	"context"
	"fmt"

	chromemgo "github.com/philippgille/chromem-go"

	"hotel-assistant/internal/knowledge"
)

// Search returns up to k passages. chromem refuses k above the collection
// size, so k is clamped.
func (r *implRepository) Search(ctx context.Context, text string, k int) ([]knowledge.Passage, error) {
	count := r.collection.Count()
	if count == 0 || k <= 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	vector, err := r.embedder.EmbedQuery(ctx, text)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/chromem.Search embed: %v", err)
		return nil, fmt.Errorf("%w: %v", knowledge.ErrEmbeddingFailed, err)
	}

	results, err := r.collection.QueryEmbedding(ctx, vector, k, nil, nil)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/chromem.Search: %v", err)
		return nil, fmt.Errorf("%w: %v", knowledge.ErrSearchFailed, err)
	}

	passages := make([]knowledge.Passage, 0, len(results))
	for _, res := range results {
		passages = append(passages, knowledge.Passage{
			Text:   res.Content,
			Source: res.Metadata[metaSource],
			Score:  float64(res.Similarity),
		})
	}
	return passages, nil
}

// Upsert embeds docs with the document embedding and stores them. Existing ids are replaced.
func (r *implRepository) Upsert(ctx context.Context, docs []knowledge.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	vectors, err := knowledge.EmbedBatched(ctx, r.embedder, texts, embedBatchSize)
	if err != nil {
		r.l.Errorf(ctx, "knowledge/repository/chromem.Upsert embed: %v", err)
		return err
	}

	chromDocs := make([]chromemgo.Document, len(docs))
	for i, d := range docs {
		chromDocs[i] = chromemgo.Document{
			ID:        d.ID,
			Content:   d.Text,
			Metadata:  map[string]string{metaSource: d.Source},
			Embedding: vectors[i],
		}
	}

	if err := r.collection.AddDocuments(ctx, chromDocs, 1); err != nil {
		r.l.Errorf(ctx, "knowledge/repository/chromem.Upsert: %v", err)
		return fmt.Errorf("%w: %v", knowledge.ErrUpsertFailed, err)
	}
	r.l.Infof(ctx, "knowledge/repository/chromem.Upsert: indexed %d documents", len(chromDocs))
	return nil
}
