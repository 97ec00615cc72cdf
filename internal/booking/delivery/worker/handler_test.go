package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/notify"
	"hotel-assistant/pkg/log"
)

type stubProcessor struct {
	emails    []string
	calendars []string
	emailErr  error
	calErr    error
}

func (s *stubProcessor) SendConfirmation(ctx context.Context, c booking.Confirmation) error {
	if s.emailErr != nil {
		return s.emailErr
	}
	s.emails = append(s.emails, c.Reservation.BookingNumber)
	return nil
}

func (s *stubProcessor) SyncCalendar(ctx context.Context, c booking.Confirmation) error {
	if s.calErr != nil {
		return s.calErr
	}
	s.calendars = append(s.calendars, c.Reservation.BookingNumber)
	return nil
}

func task(t *testing.T, taskType string) *asynq.Task {
	t.Helper()
	tk, err := notify.NewTask(taskType, booking.Confirmation{
		Reservation: booking.Reservation{ID: 1, BookingNumber: "BKG-20250520-0001"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tk
}

func TestHandlers(t *testing.T) {
	proc := &stubProcessor{}
	h := New(log.NewNop(), proc)
	ctx := context.Background()

	if err := h.HandleConfirmationEmail(ctx, task(t, notify.TypeConfirmationEmail)); err != nil {
		t.Fatalf("email: %v", err)
	}
	if err := h.HandleCalendarSync(ctx, task(t, notify.TypeCalendarSync)); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(proc.emails) != 1 || len(proc.calendars) != 1 {
		t.Errorf("emails=%v calendars=%v", proc.emails, proc.calendars)
	}

	mux := asynq.NewServeMux()
	Register(mux, h)
	if err := mux.ProcessTask(ctx, task(t, notify.TypeConfirmationEmail)); err != nil {
		t.Errorf("mux dispatch: %v", err)
	}
	if len(proc.emails) != 2 {
		t.Errorf("mux did not route the email task")
	}
}

func TestHandlersRetryPolicy(t *testing.T) {
	ctx := context.Background()

	bad := asynq.NewTask(notify.TypeConfirmationEmail, []byte("{"))
	if err := New(log.NewNop(), &stubProcessor{}).HandleConfirmationEmail(ctx, bad); !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("bad payload should skip retry, got %v", err)
	}

	transient := New(log.NewNop(), &stubProcessor{emailErr: errors.New("smtp timeout")})
	err := transient.HandleConfirmationEmail(ctx, task(t, notify.TypeConfirmationEmail))
	if err == nil || errors.Is(err, asynq.SkipRetry) {
		t.Errorf("transient failure should be retried, got %v", err)
	}

	unconfigured := New(log.NewNop(), &stubProcessor{calErr: notify.ErrCalendarNotConfigured})
	if err := unconfigured.HandleCalendarSync(ctx, task(t, notify.TypeCalendarSync)); !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("unconfigured calendar should skip retry, got %v", err)
	}
}
