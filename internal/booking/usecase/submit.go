package usecase

import (
	"context"

	"hotel-assistant/internal/booking"
	repo "hotel-assistant/internal/booking/repository"
)

// Submit validates a request and persists it when the room is free.
// Validation errors are returned before any write; a conflict is an outcome, not an error.
func (uc *implUseCase) Submit(ctx context.Context, input booking.SubmitInput) (booking.SubmitOutput, error) {
	req := input.Request
	out := booking.SubmitOutput{State: booking.StateCollectingDetails}

	if err := booking.ValidateRequest(req); err != nil {
		return out, err
	}

	room, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit GetRoom: %v", err)
		out.State = booking.StateFailed
		return out, booking.ErrBookingFailed
	}
	if room.ID == 0 {
		return out, booking.ErrRoomNotFound
	}
	out.Room = room

	if err := booking.Validate(req, room); err != nil {
		return out, err
	}

	out.State = booking.StateValidating
	req.TotalPrice = booking.TotalPrice(room, req.CheckIn, req.CheckOut)

	pctx, cancel := context.WithTimeout(ctx, uc.timeout)
	res, err := uc.repo.CreateReservation(pctx, repo.CreateReservationOptions{
		Request:  req,
		BookedAt: uc.now().In(uc.loc),
	})
	cancel()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Submit CreateReservation: %v", err)
		out.State = booking.StateFailed
		return out, booking.ErrBookingFailed
	}

	if len(res.Conflicts) > 0 {
		uc.l.Infof(ctx, "uc.Submit: room %d has %d conflicting bookings", req.RoomID, len(res.Conflicts))
		out.State = booking.StateConflict
		out.Conflicts = res.Conflicts
		return out, nil
	}

	out.State = booking.StateAccepted
	out.Reservation = res.Reservation
	uc.l.Infof(ctx, "uc.Submit: accepted %s", res.Reservation.BookingNumber)

	if uc.notifier == nil {
		out.Notify = booking.NotifyResult{EmailFailed: true}
		return out, nil
	}
	out.Notify = uc.notifier.Confirm(ctx, booking.Confirmation{Reservation: res.Reservation, Room: room})
	return out, nil
}

func (uc *implUseCase) getRoom(ctx context.Context, id int) (booking.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.repo.GetRoom(ctx, id)
}
