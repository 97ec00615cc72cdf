package repository

import (
	"time"

	"hotel-assistant/internal/booking"
)

// FindConflictsOptions selects reservations of a room overlapping [CheckIn, CheckOut).
type FindConflictsOptions struct {
	RoomID   int
	CheckIn  time.Time
	CheckOut time.Time
}

// CreateReservationOptions holds a validated request and the day it was booked.
type CreateReservationOptions struct {
	Request  booking.Request
	BookedAt time.Time
}

// CreateReservationResult carries either the new reservation or the conflicts that blocked it.
type CreateReservationResult struct {
	Reservation booking.Reservation
	Conflicts   []booking.Reservation
}
