package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListRooms(ctx context.Context) ([]Room, error)
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
	Detail(ctx context.Context, bookingNumber string) (Reservation, error)
}

// Notifier runs the confirmation side effects of an accepted booking.
// Failures are reported, never returned.
type Notifier interface {
	Confirm(ctx context.Context, c Confirmation) NotifyResult
}
