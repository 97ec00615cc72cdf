package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixHandle      = "internal.agent.orchestrator.Handle"
	LogPrefixLinkBooking = "internal.agent.orchestrator.LinkBooking"
	LogPrefixSession     = "internal.agent.orchestrator.session"
)

// Configuration
const (
	DefaultSessionTTL     = 2 * time.Hour
	DefaultMaxSessions    = 10000
	DefaultPersistTimeout = 5 * time.Second
)

// formUtterance stands in for the guest's message when a booking made
// through the form is folded into a conversation.
const formUtterance = "[Booked room %d from %s to %s using the booking form]"
