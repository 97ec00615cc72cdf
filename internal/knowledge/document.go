package knowledge

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReadDocuments decodes a JSON array of documents and fills in missing ids.
func ReadDocuments(r io.Reader) ([]Document, error) {
	var docs []Document
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	for i := range docs {
		docs[i].Text = strings.TrimSpace(docs[i].Text)
		if docs[i].Text == "" {
			return nil, fmt.Errorf("document %d: %w", i, ErrInvalidDocument)
		}
		if docs[i].ID == "" {
			docs[i].ID = ContentID(docs[i].Source, docs[i].Text)
		}
	}
	return docs, nil
}

// ContentID is a stable id for a chunk, so re-seeding replaces instead of duplicating.
func ContentID(source, text string) string {
	sum := sha1.Sum([]byte(source + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// EmbedBatched embeds texts in batches of size.
func EmbedBatched(ctx context.Context, e Embedder, texts []string, size int) ([][]float32, error) {
	if size <= 0 {
		size = len(texts)
	}
	out := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := e.Embed(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
		}
		if len(vecs) != end-start {
			return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrEmbeddingFailed, len(vecs), end-start)
		}
		out = append(out, vecs...)
	}
	return out, nil
}
