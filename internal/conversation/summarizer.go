package conversation

import (
	"context"
	"fmt"
	"strings"

	"hotel-assistant/pkg/llmprovider"
)

// LLMSummarizer asks the language model for a fresh digest of the whole history.
type LLMSummarizer struct {
	llm           llmprovider.Generator
	hotelName     string
	assistantName string
}

var _ Summarizer = (*LLMSummarizer)(nil)

func NewLLMSummarizer(llm llmprovider.Generator, hotelName, assistantName string) *LLMSummarizer {
	return &LLMSummarizer{llm: llm, hotelName: hotelName, assistantName: assistantName}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", nil
	}
	prompt := fmt.Sprintf(PromptSummarize, s.assistantName, s.hotelName, transcript(turns, s.assistantName))
	resp, err := s.llm.GenerateContent(ctx, llmprovider.UserPrompt("", prompt, SummaryTemperature, SummaryMaxTokens))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
