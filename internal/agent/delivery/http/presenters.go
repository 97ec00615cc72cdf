package http

import (
	"strings"

	"hotel-assistant/internal/agent/orchestrator"
)

const maxMessageLength = 2000

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required" example:"Do you have rooms for two next weekend?"`
}

func (r *chatReq) validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return errEmptyMessage
	}
	if len([]rune(r.Message)) > maxMessageLength {
		return errMessageTooLong
	}
	return nil
}

// --- Response DTOs ---

type chatResp struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Intent    string `json:"intent"`
	Mode      string `json:"mode"`
	// Degraded is true when the reply came from the fallback path.
	Degraded bool `json:"degraded"`
}

func (h *handler) newChatResp(r orchestrator.Reply) chatResp {
	return chatResp{
		SessionID: r.SessionID,
		Reply:     r.Text,
		Intent:    string(r.Intent),
		Mode:      string(r.Mode),
		Degraded:  r.Degraded,
	}
}

type sessionResp struct {
	SessionID string `json:"session_id"`
	Greeting  string `json:"greeting"`
}
