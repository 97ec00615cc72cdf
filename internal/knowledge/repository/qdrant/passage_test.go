package qdrant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-assistant/internal/knowledge"
	"hotel-assistant/pkg/log"
	pkgQdrant "hotel-assistant/pkg/qdrant"
)

type stubEmbedder struct{ err error }

func (s stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

func (s stubEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []float32{0.3, 0.2, 0.1}, nil
}

func newServer(t *testing.T, upserted *[]pkgQdrant.Point) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/collections/hotel":
			w.Write([]byte(`{"result":{}}`))
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/points"):
			var req pkgQdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			*upserted = append(*upserted, req.Points...)
			w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/points/search"):
			var req pkgQdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit != 30 || !req.WithPayload {
				t.Errorf("search request = %+v", req)
			}
			w.Write([]byte(`{"result":[
				{"id":"a","score":0.9,"payload":{"text":"Breakfast is served daily from 7 to 10.","source":"https://chezgovinda.example/breakfast"}},
				{"id":"b","score":0.8,"payload":{"source":"empty"}},
				{"id":3,"score":0.7,"payload":{"text":"We use green energy.","source":"https://chezgovinda.example/environment"}}
			]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSearch(t *testing.T) {
	var upserted []pkgQdrant.Point
	ts := newServer(t, &upserted)
	defer ts.Close()

	store := New(pkgQdrant.NewClient(ts.URL), stubEmbedder{}, "hotel", 3, log.NewNop())
	passages, err := store.Search(context.Background(), "when is breakfast", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(passages) != 2 {
		t.Fatalf("passages = %+v", passages)
	}
	if passages[0].Source != "https://chezgovinda.example/breakfast" || passages[0].Score != 0.9 {
		t.Errorf("first passage = %+v", passages[0])
	}
}

func TestUpsert(t *testing.T) {
	var upserted []pkgQdrant.Point
	ts := newServer(t, &upserted)
	defer ts.Close()

	store := New(pkgQdrant.NewClient(ts.URL), stubEmbedder{}, "hotel", 3, log.NewNop())
	docs := []knowledge.Document{
		{ID: "d1", Text: "Quiet hours are from 22:00.", Source: "policy"},
		{ID: "d2", Text: "Rooms have balconies.", Source: "rooms"},
	}
	if err := store.Upsert(context.Background(), docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(upserted) != 2 {
		t.Fatalf("upserted = %d", len(upserted))
	}
	if upserted[0].ID != pointID("d1") || upserted[0].Payload["source"] != "policy" {
		t.Errorf("point = %+v", upserted[0])
	}
	if pointID("d1") != pointID("d1") || pointID("d1") == pointID("d2") {
		t.Errorf("point ids must be stable and distinct")
	}
}

func TestSearchEmbedFailure(t *testing.T) {
	store := New(pkgQdrant.NewClient("http://127.0.0.1:1"), stubEmbedder{err: errors.New("down")}, "hotel", 3, log.NewNop())
	if _, err := store.Search(context.Background(), "x", 10); !errors.Is(err, knowledge.ErrEmbeddingFailed) {
		t.Errorf("expected ErrEmbeddingFailed, got %v", err)
	}
}
