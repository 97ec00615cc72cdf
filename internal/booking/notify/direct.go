package notify

import (
	"context"
	"fmt"
	"time"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/email"
	"hotel-assistant/pkg/gcalendar"
	"hotel-assistant/pkg/log"
)

const (
	DefaultEmailTimeout    = 15 * time.Second
	DefaultCalendarTimeout = 15 * time.Second

	propertyBookingNumber = "booking_number"
)

// CalendarClient is the part of the Google Calendar client used for reservation sync.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// DirectConfig wires the inline confirmation side effects. Mailer and Calendar may be nil.
type DirectConfig struct {
	Template        Template
	Mailer          email.ISender
	Calendar        CalendarClient
	CalendarID      string
	EmailTimeout    time.Duration
	CalendarTimeout time.Duration
}

// Direct sends the confirmation email and creates the calendar event inline.
type Direct struct {
	cfg DirectConfig
	l   log.Logger
}

// NewDirect returns a notifier that runs the side effects in the caller's goroutine.
func NewDirect(l log.Logger, cfg DirectConfig) *Direct {
	if cfg.EmailTimeout <= 0 {
		cfg.EmailTimeout = DefaultEmailTimeout
	}
	if cfg.CalendarTimeout <= 0 {
		cfg.CalendarTimeout = DefaultCalendarTimeout
	}
	return &Direct{cfg: cfg, l: l}
}

// Confirm sends the email and syncs the calendar. A missing mailer counts as a
// failed email; a missing calendar is skipped.
func (d *Direct) Confirm(ctx context.Context, c booking.Confirmation) booking.NotifyResult {
	var result booking.NotifyResult

	if err := d.SendConfirmation(ctx, c); err != nil {
		d.l.Warnf(ctx, "notify.Direct.Confirm email %s: %v", c.Reservation.BookingNumber, err)
		result.EmailFailed = true
	}

	if d.cfg.Calendar != nil {
		if err := d.SyncCalendar(ctx, c); err != nil {
			d.l.Warnf(ctx, "notify.Direct.Confirm calendar %s: %v", c.Reservation.BookingNumber, err)
			result.CalendarFailed = true
		}
	}
	return result
}

// SendConfirmation emails the guest, bounded by the email timeout.
func (d *Direct) SendConfirmation(ctx context.Context, c booking.Confirmation) error {
	if d.cfg.Mailer == nil {
		return ErrMailerNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.EmailTimeout)
	defer cancel()

	if err := d.cfg.Mailer.Send(ctx, d.cfg.Template.ConfirmationEmail(c)); err != nil {
		return err
	}
	d.l.Infof(ctx, "notify.SendConfirmation: email sent for %s", c.Reservation.BookingNumber)
	return nil
}

// SyncCalendar creates an all-day event spanning the stay. It is idempotent on
// the booking number, so retried jobs do not duplicate events.
func (d *Direct) SyncCalendar(ctx context.Context, c booking.Confirmation) error {
	if d.cfg.Calendar == nil {
		return ErrCalendarNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.CalendarTimeout)
	defer cancel()

	res := c.Reservation
	existing, err := d.cfg.Calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:    d.cfg.CalendarID,
		TimeMin:       res.CheckIn,
		TimeMax:       res.CheckOut.Add(24 * time.Hour),
		PropertyKey:   propertyBookingNumber,
		PropertyValue: res.BookingNumber,
	})
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	event, err := d.cfg.Calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  d.cfg.CalendarID,
		Summary:     d.cfg.Template.CalendarSummary(c),
		Description: d.cfg.Template.CalendarDescription(c),
		StartTime:   res.CheckIn,
		EndTime:     res.CheckOut,
		AllDay:      true,
		Properties:  map[string]string{propertyBookingNumber: res.BookingNumber},
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	d.l.Infof(ctx, "notify.SyncCalendar: event %s created for %s", event.ID, res.BookingNumber)
	return nil
}

var _ booking.Notifier = (*Direct)(nil)
