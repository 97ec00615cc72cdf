package email

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	if _, err := New(Config{From: "a@b.c"}); !errors.Is(err, ErrMissingHost) {
		t.Errorf("expected ErrMissingHost, got %v", err)
	}
	if _, err := New(Config{Host: "smtp.example.com"}); !errors.Is(err, ErrMissingSender) {
		t.Errorf("expected ErrMissingSender, got %v", err)
	}

	s, err := New(Config{Host: "smtp.example.com", From: "hotel@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.cfg.Port != DefaultPort || s.cfg.Timeout != DefaultTimeout {
		t.Errorf("defaults not applied: %+v", s.cfg)
	}
}

func TestBuild(t *testing.T) {
	s, _ := New(Config{Host: "smtp.example.com", From: "hotel@example.com"})

	if _, err := s.Build(Message{Subject: "x"}); !errors.Is(err, ErrMissingRecipient) {
		t.Errorf("expected ErrMissingRecipient, got %v", err)
	}
	if _, err := s.Build(Message{To: "not an address"}); err == nil {
		t.Errorf("expected invalid recipient error")
	}

	m, err := s.Build(Message{To: "guest@example.com", Subject: "Booking Confirmation", Body: "Dear Ann"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{"guest@example.com", "Booking Confirmation", "Dear Ann"} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSendUnreachable(t *testing.T) {
	s, _ := New(Config{Host: "127.0.0.1", Port: 1, From: "hotel@example.com", Timeout: time.Second, Insecure: true})
	err := s.Send(context.Background(), Message{To: "guest@example.com", Subject: "s", Body: "b"})
	if err == nil {
		t.Fatal("expected dial error")
	}
}
