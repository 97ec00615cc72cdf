package usecase

import (
	"context"

	"hotel-assistant/internal/booking"
)

// ListRooms returns the room catalogue.
func (uc *implUseCase) ListRooms(ctx context.Context) ([]booking.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	rooms, err := uc.repo.ListRooms(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRooms: %v", err)
		return nil, err
	}
	return rooms, nil
}

// Detail looks a reservation up by its booking number.
func (uc *implUseCase) Detail(ctx context.Context, bookingNumber string) (booking.Reservation, error) {
	number := booking.NormalizeBookingNumber(bookingNumber)
	if !booking.IsBookingNumber(number) {
		return booking.Reservation{}, booking.ErrBookingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	res, err := uc.repo.GetReservationByNumber(ctx, number)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		return booking.Reservation{}, err
	}
	if res.ID == 0 {
		return booking.Reservation{}, booking.ErrBookingNotFound
	}
	return res, nil
}
