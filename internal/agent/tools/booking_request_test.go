package tools_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/agent/tools"
	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/pkg/log"
)

var (
	bookingNow = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC) // Tuesday
	testRooms  = []booking.Room{
		{ID: 1, Type: "Single", Price: 80, Capacity: 1},
		{ID: 2, Type: "Double", Price: 120, Capacity: 2},
	}
)

func newBookingTool(uc *stubBookingUC, llm *scriptedLLM) *tools.BookingRequestTool {
	return tools.NewBookingRequestTool(uc, llm, log.NewNop(), tools.BookingRequestConfig{Persona: persona})
}

func day(s string) time.Time {
	t, _ := booking.ParseDate(s)
	return t
}

func TestBookingRequestCollectsDetails(t *testing.T) {
	uc := &stubBookingUC{rooms: testRooms}
	llm := &scriptedLLM{replies: []scripted{reply("```json\n{\"first_name\": \"Ann\", \"check_in\": \"tomorrow\", \"check_out\": \"next friday\", \"guests\": \"2\"}\n```")}}

	out, err := newBookingTool(uc, llm).Execute(context.Background(), agent.Input{
		Utterance: "I'm Ann, I'd like a room from tomorrow until next friday for 2",
		Mode:      conversation.ModeIdle,
		Now:       bookingNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := out.Transition.Draft
	if out.Transition.Mode != conversation.ModeCollectingDetails || d == nil {
		t.Fatalf("transition = %+v", out.Transition)
	}
	if d.FirstName != "Ann" || d.CheckIn != "2025-05-21" || d.CheckOut != "2025-05-23" || d.Guests != 2 {
		t.Errorf("draft = %+v", d)
	}
	if !strings.HasPrefix(out.Reply, tools.MsgBookingStart) {
		t.Errorf("reply should open the booking flow: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "your last name, your email address and the room number.") {
		t.Errorf("missing fields not listed: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "- Room 2: Double, €120 per night, up to 2 guests") {
		t.Errorf("rooms not listed: %q", out.Reply)
	}
	if len(uc.submitted) != 0 {
		t.Errorf("incomplete draft must not be submitted")
	}
}

func TestBookingRequestBadDate(t *testing.T) {
	uc := &stubBookingUC{rooms: testRooms}
	llm := &scriptedLLM{replies: []scripted{reply(`{"check_in": "whenever"}`)}}
	out, _ := newBookingTool(uc, llm).Execute(context.Background(), agent.Input{
		Utterance: "whenever",
		Mode:      conversation.ModeCollectingDetails,
		Draft:     conversation.BookingDraft{FirstName: "Ann"},
		Now:       bookingNow,
	})
	if !strings.Contains(out.Reply, `I couldn't understand the date "whenever"`) {
		t.Errorf("reply = %q", out.Reply)
	}
	if out.Transition.Draft.FirstName != "Ann" || out.Transition.Draft.CheckIn != "" {
		t.Errorf("draft = %+v", out.Transition.Draft)
	}
}

func completeDraft() conversation.BookingDraft {
	return conversation.BookingDraft{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
		RoomID: 2, CheckIn: "2025-06-01", Guests: 2,
	}
}

func TestBookingRequestAccepted(t *testing.T) {
	uc := &stubBookingUC{rooms: testRooms, out: booking.SubmitOutput{
		State: booking.StateAccepted,
		Reservation: booking.Reservation{
			ID: 1, BookingNumber: "BKG-20250520-0001",
			Request: booking.Request{FirstName: "Ann", RoomID: 2, CheckIn: day("2025-06-01"), CheckOut: day("2025-06-03"), Guests: 2},
		},
	}}
	llm := &scriptedLLM{replies: []scripted{reply(`{"check_out": "2025-06-03"}`)}}

	out, _ := newBookingTool(uc, llm).Execute(context.Background(), agent.Input{
		Utterance: "check out on the 3rd of June",
		Mode:      conversation.ModeCollectingDetails,
		Draft:     completeDraft(),
		Now:       bookingNow,
	})

	if len(uc.submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(uc.submitted))
	}
	sub := uc.submitted[0]
	if sub.RoomID != 2 || !sub.CheckIn.Equal(day("2025-06-01")) || !sub.CheckOut.Equal(day("2025-06-03")) {
		t.Errorf("submitted = %+v", sub)
	}
	if !strings.HasPrefix(out.Reply, "Dear Ann, this is your booking number #BKG-20250520-0001.") {
		t.Errorf("reply = %q", out.Reply)
	}
	tr := out.Transition
	if tr.Mode != conversation.ModeAwaitingActivityConsent || !tr.ClearDraft || tr.Booking == nil || tr.Booking.Number != "BKG-20250520-0001" {
		t.Errorf("transition = %+v", tr)
	}
}

func TestBookingRequestConflict(t *testing.T) {
	uc := &stubBookingUC{rooms: testRooms, out: booking.SubmitOutput{
		State: booking.StateConflict,
		Conflicts: []booking.Reservation{{
			BookingNumber: "BKG-20250520-0001",
			Request:       booking.Request{RoomID: 2, CheckIn: day("2025-06-01"), CheckOut: day("2025-06-03")},
		}},
	}}
	llm := &scriptedLLM{replies: []scripted{reply(`{"check_in": "2025-06-02", "check_out": "2025-06-04"}`)}}

	draft := completeDraft()
	out, _ := newBookingTool(uc, llm).Execute(context.Background(), agent.Input{
		Utterance: "June 2 to June 4",
		Mode:      conversation.ModeCollectingDetails,
		Draft:     draft,
		Now:       bookingNow,
	})

	if !strings.Contains(out.Reply, "BKG-20250520-0001 from 2025-06-01 to 2025-06-03") {
		t.Errorf("conflict not described: %q", out.Reply)
	}
	d := out.Transition.Draft
	if out.Transition.Mode != conversation.ModeCollectingDetails || d == nil || d.CheckIn != "" || d.CheckOut != "" || d.Email != "ann@example.com" {
		t.Errorf("transition = %+v draft = %+v", out.Transition, d)
	}
}

func TestBookingRequestValidationOutcomes(t *testing.T) {
	ctx := context.Background()

	t.Run("capacity", func(t *testing.T) {
		uc := &stubBookingUC{rooms: testRooms, err: booking.ErrCapacityExceeded, out: booking.SubmitOutput{Room: testRooms[0]}}
		llm := &scriptedLLM{replies: []scripted{reply(`{"check_out": "2025-06-03", "room_id": 1}`)}}
		out, _ := newBookingTool(uc, llm).Execute(ctx, agent.Input{
			Utterance: "room 1", Mode: conversation.ModeCollectingDetails, Draft: completeDraft(), Now: bookingNow,
		})
		if !strings.HasPrefix(out.Reply, "Room 1 takes at most 1 guest.") {
			t.Errorf("reply = %q", out.Reply)
		}
		if d := out.Transition.Draft; d.RoomID != 0 || d.Guests != 0 {
			t.Errorf("room and guests should be cleared: %+v", d)
		}
	})

	t.Run("date range", func(t *testing.T) {
		uc := &stubBookingUC{rooms: testRooms}
		llm := &scriptedLLM{replies: []scripted{reply(`{"check_out": "2025-05-30"}`)}}
		out, _ := newBookingTool(uc, llm).Execute(ctx, agent.Input{
			Utterance: "out on May 30", Mode: conversation.ModeCollectingDetails, Draft: completeDraft(), Now: bookingNow,
		})
		if out.Reply != tools.MsgBookingDateRange {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		uc := &stubBookingUC{rooms: testRooms, err: booking.ErrBookingFailed, out: booking.SubmitOutput{State: booking.StateFailed}}
		llm := &scriptedLLM{replies: []scripted{reply(`{"check_out": "2025-06-03"}`)}}
		out, _ := newBookingTool(uc, llm).Execute(ctx, agent.Input{
			Utterance: "June 3", Mode: conversation.ModeCollectingDetails, Draft: completeDraft(), Now: bookingNow,
		})
		if out.Reply != tools.MsgBookingFailed || out.Transition.Mode != conversation.ModeCollectingDetails {
			t.Errorf("out = %+v", out)
		}
	})
}

func TestBookingRequestCancel(t *testing.T) {
	llm := &scriptedLLM{}
	out, _ := newBookingTool(&stubBookingUC{}, llm).Execute(context.Background(), agent.Input{
		Utterance: "Cancel, please",
		Mode:      conversation.ModeCollectingDetails,
		Draft:     completeDraft(),
	})
	if out.Reply != tools.MsgBookingCancelled || out.Transition.Mode != conversation.ModeIdle || !out.Transition.ClearDraft {
		t.Errorf("out = %+v", out)
	}
	if llm.calls() != 0 {
		t.Errorf("cancel must not call the model")
	}
}

func TestBookingRequestExtractionFailure(t *testing.T) {
	llm := &scriptedLLM{replies: []scripted{fail()}}
	out, err := newBookingTool(&stubBookingUC{rooms: testRooms}, llm).Execute(context.Background(), agent.Input{
		Utterance: "Ann Lee",
		Mode:      conversation.ModeCollectingDetails,
		Now:       bookingNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.Reply, tools.MsgBookingExtractErr) {
		t.Errorf("reply = %q", out.Reply)
	}
}

func TestParseDetails(t *testing.T) {
	got, err := tools.ParseDetails("Sure! {\"room_id\": 2, \"email\": \"a@b.c\"} hope that helps")
	if err != nil || got["email"] != "a@b.c" || got["room_id"] != float64(2) {
		t.Errorf("ParseDetails() = %v, %v", got, err)
	}
	if _, err := tools.ParseDetails("no json here"); err == nil {
		t.Errorf("expected error")
	}
	if tools.IsCancel("I can't stop smiling") {
		t.Errorf("cancel words mid-sentence should not cancel")
	}
}
