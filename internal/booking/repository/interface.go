package repository

import (
	"context"

	"hotel-assistant/internal/booking"
)

// Repository is the composed interface for the booking data store.
type Repository interface {
	RoomRepository
	ReservationRepository
}

// RoomRepository reads the room catalogue.
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]booking.Room, error)
	// GetRoom returns a zero Room when id does not exist.
	GetRoom(ctx context.Context, id int) (booking.Room, error)
	UpsertRoom(ctx context.Context, room booking.Room) error
}

// ReservationRepository reads and writes reservations.
type ReservationRepository interface {
	FindConflicts(ctx context.Context, opt FindConflictsOptions) ([]booking.Reservation, error)
	// CreateReservation checks conflicts and inserts in one transaction.
	CreateReservation(ctx context.Context, opt CreateReservationOptions) (CreateReservationResult, error)
	// GetReservationByNumber returns a zero Reservation when the number is unknown.
	GetReservationByNumber(ctx context.Context, number string) (booking.Reservation, error)
}
