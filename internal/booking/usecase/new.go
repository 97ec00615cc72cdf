package usecase

import (
	"time"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/repository"
	"hotel-assistant/pkg/log"
)

const DefaultPersistenceTimeout = 10 * time.Second

// Config tunes the booking usecase.
type Config struct {
	// Location is the hotel time zone; the booking day in the number is taken there.
	Location           *time.Location
	PersistenceTimeout time.Duration
	Now                func() time.Time
}

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo     repository.Repository
	notifier booking.Notifier
	l        log.Logger
	loc      *time.Location
	timeout  time.Duration
	now      func() time.Time
}

// New creates the booking UseCase. notifier may be nil, in which case the
// confirmation email is reported as not sent.
func New(l log.Logger, repo repository.Repository, notifier booking.Notifier, cfg Config) booking.UseCase {
	uc := &implUseCase{
		repo:     repo,
		notifier: notifier,
		l:        l,
		loc:      cfg.Location,
		timeout:  cfg.PersistenceTimeout,
		now:      cfg.Now,
	}
	if uc.loc == nil {
		uc.loc = time.UTC
	}
	if uc.timeout <= 0 {
		uc.timeout = DefaultPersistenceTimeout
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	return uc
}
