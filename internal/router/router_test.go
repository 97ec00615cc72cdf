package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel-assistant/pkg/llmprovider"
	"hotel-assistant/pkg/log"
)

type stubLLM struct {
	text  string
	err   error
	delay time.Duration
	last  *llmprovider.Request
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.last = req
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Content: llmprovider.Message{Parts: []llmprovider.Part{{Text: s.text}}}}, nil
}

func newTestRouter(llm llmprovider.Generator, override bool) *SemanticRouter {
	return New(llm, log.NewNop(), Config{
		HotelName:         "Chez Govinda",
		AssistantName:     "George",
		Timeout:           time.Second,
		ChatTopicOverride: override,
	})
}

func TestClassify_Labels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"json", `{"intent":"structured_query","confidence":91,"reasoning":"price"}`, IntentStructuredQuery},
		{"fenced json", "```json\n{\"intent\":\"semantic_lookup\",\"confidence\":80}\n```", IntentSemanticLookup},
		{"bare label", "booking_request", IntentBookingRequest},
		{"uppercase and padded", "  OPEN_CHAT.\n", IntentOpenChat},
		{"quoted label", `"semantic_lookup"`, IntentSemanticLookup},
		{"unknown label", "sql_tool", IntentOpenChat},
		{"unknown json label", `{"intent":"weather"}`, IntentOpenChat},
		{"garbage json", `{"intent":`, IntentOpenChat},
		{"empty", "   ", IntentOpenChat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&stubLLM{text: tt.text}, false)
			out := r.Classify(context.Background(), ClassifyInput{Utterance: "hello"})
			if out.Intent != tt.want {
				t.Errorf("Intent = %s, want %s", out.Intent, tt.want)
			}
			if out.Degraded {
				t.Error("successful call must not be marked degraded")
			}
		})
	}
}

func TestClassify_ErrorDegradesToOpenChat(t *testing.T) {
	r := newTestRouter(&stubLLM{err: errors.New("provider down")}, false)
	out := r.Classify(context.Background(), ClassifyInput{Utterance: "what does room 2 cost?"})
	if out.Intent != IntentOpenChat || !out.Degraded {
		t.Errorf("got %+v, want degraded open_chat", out)
	}
}

func TestClassify_TimeoutDegradesToOpenChat(t *testing.T) {
	r := New(&stubLLM{text: "structured_query", delay: time.Second}, log.NewNop(), Config{Timeout: 20 * time.Millisecond})
	start := time.Now()
	out := r.Classify(context.Background(), ClassifyInput{Utterance: "x"})
	if out.Intent != IntentOpenChat || !out.Degraded {
		t.Errorf("got %+v, want degraded open_chat", out)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Errorf("classification not bounded, took %v", time.Since(start))
	}
}

func TestClassify_PromptCarriesContext(t *testing.T) {
	llm := &stubLLM{text: "booking_request"}
	r := newTestRouter(llm, false)
	r.Classify(context.Background(), ClassifyInput{
		Utterance:         "John Smith, 2 guests",
		Summary:           "Guest wants to book room 2.",
		BookingInProgress: true,
	})

	prompt := llm.last.Messages[0].Parts[0].Text
	for _, want := range []string{"Guest wants to book room 2.", "booking is currently in progress", "John Smith, 2 guests"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(llm.last.SystemInstruction.Parts[0].Text, "George") {
		t.Error("system prompt should name the assistant")
	}
	if llm.last.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", llm.last.Temperature)
	}
}

func TestClassify_ChatTopicOverride(t *testing.T) {
	utterance := "Where can I smoke?"

	off := newTestRouter(&stubLLM{text: "semantic_lookup"}, false)
	if got := off.Classify(context.Background(), ClassifyInput{Utterance: utterance}); got.Intent != IntentSemanticLookup {
		t.Errorf("override disabled: got %s", got.Intent)
	}

	on := newTestRouter(&stubLLM{text: "semantic_lookup"}, true)
	got := on.Classify(context.Background(), ClassifyInput{Utterance: utterance})
	if got.Intent != IntentOpenChat || !got.Overridden {
		t.Errorf("override enabled: got %+v", got)
	}

	// Never applied while a booking is collecting details.
	got = on.Classify(context.Background(), ClassifyInput{Utterance: "we speak English", BookingInProgress: true})
	if got.Intent != IntentSemanticLookup {
		t.Errorf("override applied during booking: %+v", got)
	}
}

func TestChatTopicPolicy_Match(t *testing.T) {
	p := NewChatTopicPolicy()
	tests := []struct {
		in    string
		topic string
		hit   bool
	}{
		{"Is there a smoking area?", "smoking", true},
		{"Can you send me the website URL?", "website", true},
		{"What are your quiet hours?", "quiet hours", true},
		{"Can we host parties in the room?", "events", true},
		{"Do you speak Dutch?", "languages", true},
		{"What time is breakfast?", "", false},
	}
	for _, tt := range tests {
		topic, hit := p.Match(tt.in)
		if hit != tt.hit || topic != tt.topic {
			t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.in, topic, hit, tt.topic, tt.hit)
		}
	}
}
