package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hotel-assistant/pkg/llmprovider"
)

// Classify determines the intent of an utterance. It never fails: classifier
// errors and unrecognised labels both resolve to open_chat.
func (r *SemanticRouter) Classify(ctx context.Context, in ClassifyInput) RouterOutput {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	system := fmt.Sprintf(PromptRouterSystem, r.cfg.AssistantName, r.cfg.HotelName)
	resp, err := r.llm.GenerateContent(ctx, llmprovider.UserPrompt(system, buildPrompt(in), RouterTemperature, RouterMaxTokens))
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonLLMError,
			Degraded:   true,
		}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonEmptyResponse,
		}
	}

	output, ok := parseOutput(text)
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgParseFailed, text)
		return RouterOutput{
			Intent:     RouterFallbackIntent,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonParsingError,
		}
	}

	if r.topics != nil && output.Intent != IntentOpenChat && !in.BookingInProgress {
		if topic, hit := r.topics.Match(in.Utterance); hit {
			r.l.Infof(ctx, "%s: %s: %s (classifier said %s)", LogPrefixClassify, MsgChatTopicOverride, topic, output.Intent)
			output.Intent = IntentOpenChat
			output.Reasoning = ReasonChatTopic + ": " + topic
			output.Overridden = true
		}
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output
}

func buildPrompt(in ClassifyInput) string {
	var sb strings.Builder
	if s := strings.TrimSpace(in.Summary); s != "" {
		sb.WriteString(fmt.Sprintf(PromptSummaryPrefix, s))
	}
	if in.BookingInProgress {
		sb.WriteString(PromptBookingPending)
	}
	sb.WriteString(fmt.Sprintf(PromptMessage, in.Utterance))
	return sb.String()
}

// parseOutput accepts either the JSON object or a bare label such as
// "semantic_lookup". Labels are compared after trimming and lowercasing.
func parseOutput(text string) (RouterOutput, bool) {
	text = stripFences(text)

	if strings.HasPrefix(text, "{") {
		var raw struct {
			Intent     string  `json:"intent"`
			Confidence float64 `json:"confidence"`
			Reasoning  string  `json:"reasoning"`
		}
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return RouterOutput{}, false
		}
		intent := normalizeLabel(raw.Intent)
		if !intent.Valid() {
			return RouterOutput{}, false
		}
		return RouterOutput{Intent: intent, Confidence: int(raw.Confidence), Reasoning: raw.Reasoning}, true
	}

	intent := normalizeLabel(text)
	if !intent.Valid() {
		return RouterOutput{}, false
	}
	return RouterOutput{Intent: intent, Confidence: 100}, true
}

func normalizeLabel(s string) Intent {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, "\"'`.")
	return Intent(strings.TrimSpace(s))
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
