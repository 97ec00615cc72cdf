package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/agent/tools"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
	"hotel-assistant/pkg/log"
)

var persona = agent.Persona{HotelName: "Chez Govinda", AssistantName: "George", Currency: "€"}

func TestOpenChat(t *testing.T) {
	ctx := context.Background()
	facts := "Smoking is allowed only in the back garden."

	t.Run("grounded in facts", func(t *testing.T) {
		llm := &scriptedLLM{replies: []scripted{reply("  You can smoke in the back garden.  ")}}
		tool := tools.NewOpenChatTool(llm, log.NewNop(), persona, facts, 0)
		if tool.Intent() != router.IntentOpenChat {
			t.Errorf("intent = %s", tool.Intent())
		}
		out, err := tool.Execute(ctx, agent.Input{Utterance: "Where can I smoke?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "You can smoke in the back garden." {
			t.Errorf("reply = %q", out.Reply)
		}
		if !strings.Contains(llm.prompts[0], facts) || !strings.Contains(llm.prompts[0], tools.MsgNoInformation) {
			t.Errorf("prompt lacks facts or fallback line")
		}
	})

	t.Run("llm error", func(t *testing.T) {
		tool := tools.NewOpenChatTool(&scriptedLLM{replies: []scripted{fail()}}, log.NewNop(), persona, facts, 0)
		out, _ := tool.Execute(ctx, agent.Input{Utterance: "hi"})
		if out.Reply != tools.MsgChatFailure {
			t.Errorf("reply = %q", out.Reply)
		}
	})

	t.Run("empty answer", func(t *testing.T) {
		tool := tools.NewOpenChatTool(&scriptedLLM{replies: []scripted{reply("")}}, log.NewNop(), persona, "", 0)
		out, _ := tool.Execute(ctx, agent.Input{Utterance: "Do you have a gym?"})
		if out.Reply != tools.MsgNoInformation {
			t.Errorf("reply = %q", out.Reply)
		}
	})
}

func TestActivityFollowup(t *testing.T) {
	ctx := context.Background()
	activities := "Visit the Atomium. Walk the Sonian Forest."

	tests := []struct {
		name    string
		replies []scripted
		want    string
	}{
		{name: "positive", replies: []scripted{reply("POSITIVE"), reply("Try the Atomium and a forest walk.")}, want: "Try the Atomium and a forest walk."},
		{name: "positive with generation failure", replies: []scripted{reply("positive."), fail()}, want: tools.MsgActivitiesFallback + activities},
		{name: "negative", replies: []scripted{reply("NEGATIVE")}, want: tools.MsgConsentNegative},
		{name: "unclear", replies: []scripted{reply("maybe?")}, want: tools.MsgConsentUnclear},
		{name: "classifier error", replies: []scripted{fail()}, want: tools.MsgConsentError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := tools.NewActivityFollowupTool(&scriptedLLM{replies: tt.replies}, log.NewNop(), activities, 0)
			out, err := tool.Execute(ctx, agent.Input{Utterance: "sure", Mode: conversation.ModeAwaitingActivityConsent})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Reply != tt.want {
				t.Errorf("reply = %q, want %q", out.Reply, tt.want)
			}
			if out.Transition.Mode != conversation.ModeIdle {
				t.Errorf("mode = %s, want idle", out.Transition.Mode)
			}
		})
	}

	t.Run("no activities loaded", func(t *testing.T) {
		tool := tools.NewActivityFollowupTool(&scriptedLLM{replies: []scripted{reply("POSITIVE")}}, log.NewNop(), "", 0)
		out, _ := tool.Execute(ctx, agent.Input{Utterance: "yes"})
		if out.Reply != tools.MsgActivitiesUnavailable {
			t.Errorf("reply = %q", out.Reply)
		}
	})
}

func TestParseConsent(t *testing.T) {
	for in, want := range map[string]tools.Consent{
		"POSITIVE":      tools.ConsentPositive,
		" `negative` ":  tools.ConsentNegative,
		"Positive.":     tools.ConsentPositive,
		"UNCLEAR":       tools.ConsentUnclear,
		"I am not sure": tools.ConsentUnclear,
	} {
		if got := tools.ParseConsent(in); got != want {
			t.Errorf("ParseConsent(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestReadFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.txt")
	os.WriteFile(path, []byte("\nQuiet hours start at 22:00.\n"), 0o644)

	got, err := tools.ReadFacts(path)
	if err != nil || got != "Quiet hours start at 22:00." {
		t.Errorf("ReadFacts() = %q, %v", got, err)
	}
	if got, err := tools.ReadFacts(""); err != nil || got != "" {
		t.Errorf("empty path = %q, %v", got, err)
	}
	if _, err := tools.ReadFacts(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
