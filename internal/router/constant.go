package router

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the routing assistant for %s, the AI receptionist at %s.
Choose exactly one capability for the guest's latest message.

Capabilities:
- structured_query: room availability, prices, capacities, booking status or details of an existing reservation
- semantic_lookup: room descriptions, hotel policies, breakfast, dining, amenities, sustainability, location and address
- booking_request: the guest wants to book a room, asks for help booking, or is giving booking details
- open_chat: pleasantries, personal or emotional messages, topics unrelated to the hotel, website, smoking, quiet hours, parties and events, languages spoken

Return JSON only:
{"intent": "structured_query|semantic_lookup|booking_request|open_chat", "confidence": 0-100, "reasoning": "short explanation"}`

	PromptSummaryPrefix  = "Conversation so far:\n%s\n\n"
	PromptBookingPending = "A booking is currently in progress; details such as names, dates or guest counts belong to booking_request.\n\n"
	PromptMessage        = "Guest message: %q"
)

// Router configuration
const (
	RouterTemperature        = 0
	RouterMaxTokens          = 120
	RouterFallbackIntent     = IntentOpenChat
	RouterFallbackConfidence = 50
	DefaultClassifyTimeout   = 15 * time.Second
)

// Warning messages
const (
	ErrMsgLLMCallFailed  = "LLM call failed, falling back to open_chat"
	ErrMsgParseFailed    = "Unrecognised classifier output, falling back to open_chat"
	ErrMsgEmptyResponse  = "Empty LLM response, falling back to open_chat"
	MsgChatTopicOverride = "Chat topic override applied"
)

// Fallback reasons
const (
	ReasonParsingError  = "Fallback due to unrecognised label"
	ReasonEmptyResponse = "Fallback due to empty response"
	ReasonLLMError      = "Fallback due to classifier error or timeout"
	ReasonChatTopic     = "Topic answered from static hotel facts"
)
