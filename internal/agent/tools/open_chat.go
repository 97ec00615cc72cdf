package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-assistant/internal/agent"
	"hotel-assistant/internal/router"
	"hotel-assistant/pkg/llmprovider"
	pkgLog "hotel-assistant/pkg/log"
)

// OpenChatTool handles small talk and questions answered from the static facts.
type OpenChatTool struct {
	llm     llmprovider.Generator
	l       pkgLog.Logger
	persona agent.Persona
	facts   string
	timeout time.Duration
}

// NewOpenChatTool creates the open chat executor. facts may be empty.
func NewOpenChatTool(llm llmprovider.Generator, l pkgLog.Logger, persona agent.Persona, facts string, timeout time.Duration) *OpenChatTool {
	if timeout <= 0 {
		timeout = DefaultGenerationTimeout
	}
	if facts == "" {
		l.Warnf(context.Background(), "%s: no hotel facts loaded", LogPrefixOpenChat)
	}
	return &OpenChatTool{llm: llm, l: l, persona: persona, facts: facts, timeout: timeout}
}

func (t *OpenChatTool) Intent() router.Intent {
	return router.IntentOpenChat
}

func (t *OpenChatTool) Execute(ctx context.Context, in agent.Input) (agent.Output, error) {
	facts := t.facts
	if facts == "" {
		facts = noFactsPlaceholder
	}
	prompt := fmt.Sprintf(PromptOpenChat, t.persona.AssistantName, t.persona.HotelName,
		facts, MsgNoInformation, orNone(in.Summary), in.Utterance)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	resp, err := t.llm.GenerateContent(ctx, llmprovider.UserPrompt("", prompt, answerTemperature, answerMaxTokens))
	if err != nil {
		t.l.Warnf(ctx, "%s: %v", LogPrefixOpenChat, err)
		return agent.Output{Reply: MsgChatFailure}, nil
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		reply = MsgNoInformation
	}
	return agent.Output{Reply: reply}, nil
}
