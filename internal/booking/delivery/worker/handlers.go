package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"hotel-assistant/internal/booking/notify"
)

// HandleConfirmationEmail sends the guest's confirmation email. Errors are retried by asynq.
func (h *handler) HandleConfirmationEmail(ctx context.Context, t *asynq.Task) error {
	c, err := notify.DecodeTask(t)
	if err != nil {
		h.l.Errorf(ctx, "worker.HandleConfirmationEmail: %v", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if err := h.proc.SendConfirmation(ctx, c); err != nil {
		if errors.Is(err, notify.ErrMailerNotConfigured) {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		h.l.Warnf(ctx, "worker.HandleConfirmationEmail %s: %v", c.Reservation.BookingNumber, err)
		return err
	}
	return nil
}

// HandleCalendarSync creates the reservation's hotel calendar event.
func (h *handler) HandleCalendarSync(ctx context.Context, t *asynq.Task) error {
	c, err := notify.DecodeTask(t)
	if err != nil {
		h.l.Errorf(ctx, "worker.HandleCalendarSync: %v", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if err := h.proc.SyncCalendar(ctx, c); err != nil {
		if errors.Is(err, notify.ErrCalendarNotConfigured) {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		h.l.Warnf(ctx, "worker.HandleCalendarSync %s: %v", c.Reservation.BookingNumber, err)
		return err
	}
	return nil
}
