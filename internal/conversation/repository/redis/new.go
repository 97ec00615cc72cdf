package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/conversation/repository"
	"hotel-assistant/pkg/log"
)

const keyPrefix = "hotel:session:"

type implStore struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

var _ repository.Store = (*implStore)(nil)

// New stores each session as one JSON value whose TTL is refreshed on save.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) repository.Store {
	if client == nil {
		panic("conversation/repository/redis: client is nil")
	}
	return &implStore{client: client, ttl: ttl, l: l}
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *implStore) Get(ctx context.Context, sessionID string) (conversation.State, error) {
	raw, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return conversation.State{}, repository.ErrNotFound
	}
	if err != nil {
		s.l.Errorf(ctx, "internal.conversation.repository.redis.Get: %v", err)
		return conversation.State{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var state conversation.State
	if err := json.Unmarshal(raw, &state); err != nil {
		s.l.Errorf(ctx, "internal.conversation.repository.redis.Get: decode: %v", err)
		return conversation.State{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return state, nil
}

func (s *implStore) Save(ctx context.Context, state conversation.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := s.client.Set(ctx, key(state.SessionID), raw, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "internal.conversation.repository.redis.Save: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToClear, err)
	}
	return nil
}
