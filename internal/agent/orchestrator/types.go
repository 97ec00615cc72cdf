package orchestrator

import (
	"sync"

	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
)

// Reply is the outcome of one turn.
type Reply struct {
	SessionID string
	Text      string
	Intent    router.Intent
	Mode      conversation.Mode
	Degraded  bool
}

// session serialises the turns of one conversation. refs counts the turns
// holding it and is guarded by the orchestrator's mutex.
type session struct {
	mu   sync.Mutex
	conv *conversation.Conversation
	refs int
}
