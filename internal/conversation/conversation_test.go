package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
)

// echoSummarizer returns the whole transcript, so containment is exact.
type echoSummarizer struct {
	calls     int
	lastTurns int
}

func (e *echoSummarizer) Summarize(ctx context.Context, turns []Turn) (string, error) {
	e.calls++
	e.lastTurns = len(turns)
	return transcript(turns, "George"), nil
}

type failingSummarizer struct{}

func (failingSummarizer) Summarize(ctx context.Context, turns []Turn) (string, error) {
	return "", errors.New("llm down")
}

func TestNew_EmptyState(t *testing.T) {
	c := New("s1", &echoSummarizer{}, log.NewNop(), time.Second)
	if c.Summary() != "" || len(c.Turns()) != 0 || c.Mode() != ModeIdle {
		t.Fatalf("unexpected initial state %+v", c.Snapshot())
	}
}

func TestRecord_SummaryReflectsTurn(t *testing.T) {
	s := &echoSummarizer{}
	c := New("s1", s, log.NewNop(), time.Second)

	c.Record(context.Background(), "Is breakfast included?", "Yes, breakfast is organic and included.")
	c.Record(context.Background(), "What time?", "From 07:30 to 10:30.")

	if s.calls != 2 || s.lastTurns != 2 {
		t.Errorf("summary must be regenerated from full history: calls=%d lastTurns=%d", s.calls, s.lastTurns)
	}
	for _, want := range []string{"Is breakfast included?", "organic", "What time?", "07:30 to 10:30"} {
		if !strings.Contains(c.Summary(), want) {
			t.Errorf("summary missing %q: %s", want, c.Summary())
		}
	}
}

func TestRecord_FallsBackToDigest(t *testing.T) {
	c := New("s1", failingSummarizer{}, log.NewNop(), time.Second)
	c.Record(context.Background(), "Do you have parking?", "Yes, free parking behind the hotel.")

	if !strings.Contains(c.Summary(), "Do you have parking?") || !strings.Contains(c.Summary(), "free parking") {
		t.Errorf("digest should contain the latest turn: %q", c.Summary())
	}
}

func TestDigest_KeepsLatestTurns(t *testing.T) {
	var turns []Turn
	for i := 0; i < 10; i++ {
		turns = append(turns, Turn{Utterance: fmt.Sprintf("q%d", i), Reply: fmt.Sprintf("a%d", i)})
	}
	d := Digest(turns)
	if !strings.Contains(d, "q9") || !strings.Contains(d, "a9") {
		t.Errorf("digest missing latest turn: %s", d)
	}
	if strings.Contains(d, "q0\n") {
		t.Errorf("digest should drop the oldest turns: %s", d)
	}
	if !strings.Contains(d, "4 earlier turns omitted") {
		t.Errorf("digest should note omitted turns: %s", d)
	}
}

func TestApply_Transitions(t *testing.T) {
	c := New("s1", nil, log.NewNop(), time.Second)

	c.Apply(Transition{Mode: ModeCollectingDetails, Draft: &BookingDraft{RoomID: 2}})
	if c.Mode() != ModeCollectingDetails || c.Draft().RoomID != 2 {
		t.Fatalf("after collecting: %+v", c.Snapshot())
	}

	c.Apply(Transition{Mode: ModeAwaitingActivityConsent, ClearDraft: true, Booking: &BookingRef{Number: "BKG-20250601-0001", FirstName: "Ana"}})
	if c.Draft().RoomID != 0 {
		t.Error("draft should be cleared")
	}
	ref, ok := c.LatestBooking()
	if !ok || ref.Number != "BKG-20250601-0001" {
		t.Errorf("latest booking = %+v", ref)
	}

	// Empty transition changes nothing.
	c.Apply(Transition{})
	if c.Mode() != ModeAwaitingActivityConsent {
		t.Errorf("mode changed by empty transition: %s", c.Mode())
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	c := New("s1", nil, log.NewNop(), time.Second)
	c.Apply(Transition{Draft: &BookingDraft{Guests: 1}})
	c.Record(context.Background(), "u", "r")

	snap := c.Snapshot()
	snap.Draft.Guests = 9
	snap.Turns[0].Reply = "changed"

	if c.Draft().Guests != 1 || c.Turns()[0].Reply != "r" {
		t.Error("snapshot must not alias conversation state")
	}

	restored := Restore(snap, nil, log.NewNop(), time.Second)
	if restored.SessionID() != "s1" || len(restored.Turns()) != 1 {
		t.Errorf("restore lost state: %+v", restored.Snapshot())
	}
}

type stubLLM struct {
	prompt string
	text   string
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.prompt = req.Messages[0].Parts[0].Text
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: s.text}}}}, nil
}

func TestLLMSummarizer(t *testing.T) {
	llm := &stubLLM{text: "  Guest Ana asked about room 2 for June 1-3.  "}
	s := NewLLMSummarizer(llm, "Chez Govinda", "George")

	got, err := s.Summarize(context.Background(), []Turn{{Utterance: "Room 2 June 1-3?", Reply: "It is free."}})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "Guest Ana asked about room 2 for June 1-3." {
		t.Errorf("summary not trimmed: %q", got)
	}
	if !strings.Contains(llm.prompt, "Room 2 June 1-3?") || !strings.Contains(llm.prompt, "George: It is free.") {
		t.Errorf("prompt missing transcript: %s", llm.prompt)
	}
}
