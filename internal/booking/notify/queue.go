package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/log"
)

const (
	TypeConfirmationEmail = "booking:confirmation_email"
	TypeCalendarSync      = "booking:calendar_sync"

	QueueNotifications = "notifications"
	DefaultMaxRetry    = 5
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Queued hands the side effects to the worker through asynq. Only a failed
// enqueue is reported back to the guest.
type Queued struct {
	client       Enqueuer
	l            log.Logger
	maxRetry     int
	withCalendar bool
}

// NewQueued returns a notifier that enqueues confirmation jobs.
func NewQueued(l log.Logger, client Enqueuer, maxRetry int, withCalendar bool) *Queued {
	if maxRetry <= 0 {
		maxRetry = DefaultMaxRetry
	}
	return &Queued{client: client, l: l, maxRetry: maxRetry, withCalendar: withCalendar}
}

// Confirm enqueues the email job and, when enabled, the calendar job.
func (q *Queued) Confirm(ctx context.Context, c booking.Confirmation) booking.NotifyResult {
	var result booking.NotifyResult

	if err := q.enqueue(ctx, TypeConfirmationEmail, c); err != nil {
		q.l.Warnf(ctx, "notify.Queued.Confirm email %s: %v", c.Reservation.BookingNumber, err)
		result.EmailFailed = true
	}
	if q.withCalendar {
		if err := q.enqueue(ctx, TypeCalendarSync, c); err != nil {
			q.l.Warnf(ctx, "notify.Queued.Confirm calendar %s: %v", c.Reservation.BookingNumber, err)
			result.CalendarFailed = true
		}
	}
	return result
}

func (q *Queued) enqueue(ctx context.Context, taskType string, c booking.Confirmation) error {
	task, err := NewTask(taskType, c)
	if err != nil {
		return err
	}
	info, err := q.client.EnqueueContext(ctx, task, asynq.Queue(QueueNotifications), asynq.MaxRetry(q.maxRetry))
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	q.l.Infof(ctx, "notify.Queued: enqueued %s id=%s for %s", taskType, info.ID, c.Reservation.BookingNumber)
	return nil
}

// NewTask encodes c as a task of the given type.
func NewTask(taskType string, c booking.Confirmation) (*asynq.Task, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal confirmation: %w", err)
	}
	return asynq.NewTask(taskType, b), nil
}

// DecodeTask reads the confirmation carried by t.
func DecodeTask(t *asynq.Task) (booking.Confirmation, error) {
	var c booking.Confirmation
	if err := json.Unmarshal(t.Payload(), &c); err != nil {
		return booking.Confirmation{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if c.Reservation.BookingNumber == "" {
		return booking.Confirmation{}, ErrInvalidPayload
	}
	return c, nil
}

var _ booking.Notifier = (*Queued)(nil)
