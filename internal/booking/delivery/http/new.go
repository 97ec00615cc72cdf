package http

import (
	"context"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/log"
)

// ConversationLinker attaches a booking made through the form to a chat session,
// so the next chat turn continues with the post-booking follow-up.
type ConversationLinker interface {
	LinkBooking(ctx context.Context, sessionID string, out booking.SubmitOutput) error
}

type handler struct {
	l      log.Logger
	uc     booking.UseCase
	linker ConversationLinker
}

// New creates the HTTP handler for rooms and bookings. linker may be nil.
func New(l log.Logger, uc booking.UseCase, linker ConversationLinker) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		linker: linker,
	}
}
