package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/conversation/repository"
)

type implStore struct {
	cache *expirable.LRU[string, conversation.State]
}

var _ repository.Store = (*implStore)(nil)

// New keeps at most size sessions, each expiring ttl after its last save.
func New(size int, ttl time.Duration) repository.Store {
	return &implStore{cache: expirable.NewLRU[string, conversation.State](size, nil, ttl)}
}

func (s *implStore) Get(ctx context.Context, sessionID string) (conversation.State, error) {
	state, ok := s.cache.Get(sessionID)
	if !ok {
		return conversation.State{}, repository.ErrNotFound
	}
	return state, nil
}

func (s *implStore) Save(ctx context.Context, state conversation.State) error {
	s.cache.Add(state.SessionID, state)
	return nil
}

func (s *implStore) Delete(ctx context.Context, sessionID string) error {
	s.cache.Remove(sessionID)
	return nil
}
