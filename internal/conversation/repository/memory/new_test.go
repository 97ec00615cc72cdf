package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/conversation/repository"
)

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New(10, time.Minute)

	if _, err := s.Get(ctx, "s1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	state := conversation.State{SessionID: "s1", Summary: "guest asked about breakfast", Mode: conversation.ModeIdle}
	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Get(ctx, "s1")
	if err != nil || got.Summary != state.Summary {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	s.Delete(ctx, "s1")
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_Expires(t *testing.T) {
	ctx := context.Background()
	s := New(10, 20*time.Millisecond)
	s.Save(ctx, conversation.State{SessionID: "s1"})
	time.Sleep(60 * time.Millisecond)
	if _, err := s.Get(ctx, "s1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected session to expire, got %v", err)
	}
}
