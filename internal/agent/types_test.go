package agent_test

import (
	"context"
	"strings"
	"testing"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
)

type mockTool struct {
	intent router.Intent
}

func (m *mockTool) Intent() router.Intent { return m.intent }
func (m *mockTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	return agent.Output{Reply: string(m.intent)}, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()
	registry.Register(&mockTool{intent: router.IntentOpenChat})
	registry.Register(&mockTool{intent: router.IntentSemanticLookup})

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get(router.IntentOpenChat)
		if !ok || got.Intent() != router.IntentOpenChat {
			t.Errorf("expected open_chat tool to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		if _, ok := registry.Get(router.IntentBookingRequest); ok {
			t.Errorf("expected booking_request tool to not be found")
		}
	})

	t.Run("List tools", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 || tools[0].Intent() != router.IntentOpenChat {
			t.Errorf("unexpected list: %d tools", len(tools))
		}
	})

	t.Run("Missing intents", func(t *testing.T) {
		missing := registry.Missing()
		if len(missing) != 2 || missing[0] != router.IntentStructuredQuery || missing[1] != router.IntentBookingRequest {
			t.Errorf("missing = %v", missing)
		}
	})
}

func TestPersonaConfirm(t *testing.T) {
	p := agent.Persona{HotelName: "Chez Govinda", AssistantName: "George"}
	out := booking.SubmitOutput{
		State: booking.StateAccepted,
		Reservation: booking.Reservation{
			BookingNumber: "BKG-20250520-0001",
			Request:       booking.Request{FirstName: "Ann"},
		},
	}

	got := p.Confirm(out)
	if !strings.HasPrefix(got.Reply, "Dear Ann, this is your booking number #BKG-20250520-0001.") {
		t.Errorf("reply = %q", got.Reply)
	}
	if !strings.Contains(got.Reply, agent.MsgConfirmationEmail) || !strings.HasSuffix(got.Reply, "during your stay?") {
		t.Errorf("reply = %q", got.Reply)
	}
	if got.Transition.Mode != conversation.ModeAwaitingActivityConsent || !got.Transition.ClearDraft {
		t.Errorf("transition = %+v", got.Transition)
	}
	if got.Transition.Booking == nil || got.Transition.Booking.Number != "BKG-20250520-0001" {
		t.Errorf("booking ref = %+v", got.Transition.Booking)
	}

	out.Notify = booking.NotifyResult{EmailFailed: true, CalendarFailed: true}
	got = p.Confirm(out)
	if !strings.Contains(got.Reply, agent.MsgConfirmationNoMail) || !strings.Contains(got.Reply, "hotel calendar") {
		t.Errorf("caveats missing: %q", got.Reply)
	}

	if g := p.Greeting(); g != "👋 Hello, I'm George. How can I help you today?" {
		t.Errorf("greeting = %q", g)
	}
}
