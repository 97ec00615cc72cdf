package qdrant

import (
	"context"

	"hotel-assistant/internal/knowledge"
	pkgLog "hotel-assistant/pkg/log"
	pkgQdrant "hotel-assistant/pkg/qdrant"
)

const (
	payloadText   = "text"
	payloadSource = "source"
	payloadDocID  = "doc_id"

	embedBatchSize = 64
)

// Client is the part of the Qdrant client this store needs.
type Client interface {
	EnsureCollection(ctx context.Context, req pkgQdrant.CreateCollectionRequest) error
	UpsertPoints(ctx context.Context, collectionName string, req pkgQdrant.UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collectionName string, req pkgQdrant.SearchRequest) (*pkgQdrant.SearchResponse, error)
}

type implRepository struct {
	client         Client
	embedder       knowledge.Embedder
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed knowledge store.
func New(client Client, embedder knowledge.Embedder, collectionName string, vectorSize int, l pkgLog.Logger) knowledge.Store {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
