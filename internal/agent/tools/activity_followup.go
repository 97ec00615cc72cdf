package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
	"hotel-assistant/pkg/llmprovider"
	pkgLog "hotel-assistant/pkg/log"
)

// Consent is the guest's answer to the activity offer.
type Consent string

const (
	ConsentPositive Consent = "POSITIVE"
	ConsentNegative Consent = "NEGATIVE"
	ConsentUnclear  Consent = "UNCLEAR"
)

// ActivityFollowupTool handles the turn after a booking confirmation. It is
// dispatched by mode, not by the router. Whatever the answer, the session
// returns to idle.
type ActivityFollowupTool struct {
	llm        llmprovider.Generator
	l          pkgLog.Logger
	activities string
	timeout    time.Duration
}

// NewActivityFollowupTool creates the follow-up executor. activities is the
// text suggestions are drawn from.
func NewActivityFollowupTool(llm llmprovider.Generator, l pkgLog.Logger, activities string, timeout time.Duration) *ActivityFollowupTool {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	return &ActivityFollowupTool{llm: llm, l: l, activities: activities, timeout: timeout}
}

// Intent reports open_chat, the label recorded for follow-up turns.
func (t *ActivityFollowupTool) Intent() router.Intent {
	return router.IntentOpenChat
}

func (t *ActivityFollowupTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	done := conversation.Transition{Mode: conversation.ModeIdle}

	consent, err := t.classify(ctx, in.Utterance)
	if err != nil {
		t.l.Warnf(ctx, "%s: classify consent: %v", LogPrefixActivityFollowup, err)
		return agent.Output{Reply: MsgConsentError, Transition: done}, nil
	}
	t.l.Infof(ctx, "%s: consent %s", LogPrefixActivityFollowup, consent)

	switch consent {
	case ConsentPositive:
		return agent.Output{Reply: t.suggest(ctx, in.Utterance), Transition: done}, nil
	case ConsentNegative:
		return agent.Output{Reply: MsgConsentNegative, Transition: done}, nil
	default:
		return agent.Output{Reply: MsgConsentUnclear, Transition: done}, nil
	}
}

func (t *ActivityFollowupTool) classify(ctx context.Context, reply string) (Consent, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(ctx, llmprovider.UserPrompt("", fmt.Sprintf(PromptConsent, reply), consentTemperature, consentMaxTokens))
	if err != nil {
		return "", err
	}
	return ParseConsent(resp.Text()), nil
}

func (t *ActivityFollowupTool) suggest(ctx context.Context, utterance string) string {
	if t.activities == "" {
		return MsgActivitiesUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(ctx, llmprovider.UserPrompt("", fmt.Sprintf(PromptActivities, t.activities, utterance), activityTemperature, activityMaxTokens))
	if err == nil {
		if text := strings.TrimSpace(resp.Text()); text != "" {
			return text
		}
	}
	t.l.Warnf(ctx, "%s: generate suggestions: %v", LogPrefixActivityFollowup, err)
	return MsgActivitiesFallback + t.activities
}

// ParseConsent reads the classifier's label. Anything other than a clear
// POSITIVE or NEGATIVE is UNCLEAR.
func ParseConsent(text string) Consent {
	label := strings.ToUpper(strings.Trim(strings.TrimSpace(text), "\"'`.! \n"))
	switch {
	case strings.HasPrefix(label, string(ConsentPositive)):
		return ConsentPositive
	case strings.HasPrefix(label, string(ConsentNegative)):
		return ConsentNegative
	default:
		return ConsentUnclear
	}
}
