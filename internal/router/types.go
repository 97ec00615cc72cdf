package router

// Intent is the capability an utterance is dispatched to.
type Intent string

const (
	IntentStructuredQuery Intent = "structured_query"
	IntentSemanticLookup  Intent = "semantic_lookup"
	IntentBookingRequest  Intent = "booking_request"
	IntentOpenChat        Intent = "open_chat"
)

// Intents lists every valid label in prompt order.
var Intents = []Intent{IntentStructuredQuery, IntentSemanticLookup, IntentBookingRequest, IntentOpenChat}

// Valid reports whether i is one of the four labels.
func (i Intent) Valid() bool {
	switch i {
	case IntentStructuredQuery, IntentSemanticLookup, IntentBookingRequest, IntentOpenChat:
		return true
	}
	return false
}

// ClassifyInput is what the router sees for one turn.
type ClassifyInput struct {
	Utterance         string
	Summary           string
	BookingInProgress bool
}

// RouterOutput is the structured response from Semantic Router
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`

	// Degraded is set when the classifier call failed and the fallback was used.
	Degraded bool `json:"-"`
	// Overridden is set when the chat-topic policy replaced the classifier's label.
	Overridden bool `json:"-"`
}
