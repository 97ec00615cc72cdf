package agent

import (
	"context"
	"sort"
	"time"

	"hotel-assistant/internal/conversation"
	"hotel-assistant/internal/router"
)

// Input is everything an executor may look at for one turn.
type Input struct {
	SessionID     string
	Utterance     string
	Summary       string
	Mode          conversation.Mode
	Draft         conversation.BookingDraft
	LatestBooking *conversation.BookingRef
	Now           time.Time
}

// Output is an executor's reply and the session change it asks for.
type Output struct {
	Reply      string
	Transition conversation.Transition
}

// Tool is a capability executor. Executors degrade to a guest-facing message
// themselves; a returned error means the turn could not be answered at all.
type Tool interface {
	// Intent returns the router label the tool serves.
	Intent() router.Intent

	// Execute produces the reply for one utterance.
	Execute(ctx context.Context, in Input) (Output, error)
}

// Persona is how the assistant introduces itself and the hotel.
type Persona struct {
	HotelName     string
	AssistantName string
	Currency      string
}

// ToolRegistry maps router intents to executors.
type ToolRegistry struct {
	tools map[router.Intent]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[router.Intent]Tool),
	}
}

// Register adds a tool under its intent, replacing any earlier one.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Intent()] = tool
}

// Get retrieves the tool for an intent.
func (r *ToolRegistry) Get(intent router.Intent) (Tool, bool) {
	tool, ok := r.tools[intent]
	return tool, ok
}

// List returns all registered tools ordered by intent.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Intent() < tools[j].Intent() })
	return tools
}

// Missing returns the router intents that have no tool.
func (r *ToolRegistry) Missing() []router.Intent {
	var missing []router.Intent
	for _, intent := range router.Intents {
		if _, ok := r.tools[intent]; !ok {
			missing = append(missing, intent)
		}
	}
	return missing
}
