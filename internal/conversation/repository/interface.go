package repository

import (
	"context"

	"hotel-assistant/internal/conversation"
)

// Store persists session state between turns and process restarts.
type Store interface {
	// Get returns ErrNotFound when the session is unknown or expired.
	Get(ctx context.Context, sessionID string) (conversation.State, error)
	Save(ctx context.Context, state conversation.State) error
	Delete(ctx context.Context, sessionID string) error
}
