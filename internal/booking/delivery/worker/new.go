package worker

import (
	"context"

	"github.com/hibiken/asynq"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/notify"
	"hotel-assistant/pkg/log"
)

// Processor performs the confirmation side effects for one booking.
type Processor interface {
	SendConfirmation(ctx context.Context, c booking.Confirmation) error
	SyncCalendar(ctx context.Context, c booking.Confirmation) error
}

type handler struct {
	l    log.Logger
	proc Processor
}

// New creates the asynq handlers for confirmation jobs.
func New(l log.Logger, proc Processor) *handler {
	return &handler{l: l, proc: proc}
}

// Register mounts the handlers on mux.
func Register(mux *asynq.ServeMux, h *handler) {
	mux.HandleFunc(notify.TypeConfirmationEmail, h.HandleConfirmationEmail)
	mux.HandleFunc(notify.TypeCalendarSync, h.HandleCalendarSync)
}
