package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-assistant/internal/booking"
	repo "hotel-assistant/internal/booking/repository"
	"hotel-assistant/pkg/log"
)

type mockRepo struct {
	rooms        map[int]booking.Room
	reservations []booking.Reservation
	createCalls  int
	getRoomErr   error
	createErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{rooms: map[int]booking.Room{
		2: {ID: 2, Type: "Double", Price: 120, Capacity: 2},
	}}
}

func (m *mockRepo) ListRooms(ctx context.Context) ([]booking.Room, error) {
	var out []booking.Room
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) GetRoom(ctx context.Context, id int) (booking.Room, error) {
	if m.getRoomErr != nil {
		return booking.Room{}, m.getRoomErr
	}
	return m.rooms[id], nil
}

func (m *mockRepo) UpsertRoom(ctx context.Context, room booking.Room) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *mockRepo) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]booking.Reservation, error) {
	var out []booking.Reservation
	for _, r := range m.reservations {
		if r.RoomID == opt.RoomID && booking.Overlaps(r.CheckIn, r.CheckOut, opt.CheckIn, opt.CheckOut) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateReservation(ctx context.Context, opt repo.CreateReservationOptions) (repo.CreateReservationResult, error) {
	m.createCalls++
	if m.createErr != nil {
		return repo.CreateReservationResult{}, m.createErr
	}
	conflicts, _ := m.FindConflicts(ctx, repo.FindConflictsOptions{RoomID: opt.Request.RoomID, CheckIn: opt.Request.CheckIn, CheckOut: opt.Request.CheckOut})
	if len(conflicts) > 0 {
		return repo.CreateReservationResult{Conflicts: conflicts}, nil
	}
	id := int64(len(m.reservations) + 1)
	res := booking.Reservation{ID: id, BookingNumber: booking.FormatBookingNumber(opt.BookedAt, id), Request: opt.Request}
	m.reservations = append(m.reservations, res)
	return repo.CreateReservationResult{Reservation: res}, nil
}

func (m *mockRepo) GetReservationByNumber(ctx context.Context, number string) (booking.Reservation, error) {
	for _, r := range m.reservations {
		if r.BookingNumber == number {
			return r, nil
		}
	}
	return booking.Reservation{}, nil
}

type mockNotifier struct {
	calls  int
	result booking.NotifyResult
}

func (n *mockNotifier) Confirm(ctx context.Context, c booking.Confirmation) booking.NotifyResult {
	n.calls++
	return n.result
}

func day(s string) time.Time {
	t, _ := booking.ParseDate(s)
	return t
}

func request(in, out string, guests int) booking.Request {
	return booking.Request{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
		RoomID: 2, CheckIn: day(in), CheckOut: day(out), Guests: guests,
	}
}

func newUC(r *mockRepo, n booking.Notifier) booking.UseCase {
	return New(log.NewNop(), r, n, Config{Now: func() time.Time {
		return time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	}})
}

func TestSubmitScenario(t *testing.T) {
	r := newMockRepo()
	n := &mockNotifier{}
	uc := newUC(r, n)
	ctx := context.Background()

	first, err := uc.Submit(ctx, booking.SubmitInput{Request: request("2025-06-01", "2025-06-03", 2)})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.State != booking.StateAccepted {
		t.Fatalf("state = %s", first.State)
	}
	if first.Reservation.BookingNumber != "BKG-20250520-0001" {
		t.Errorf("number = %s", first.Reservation.BookingNumber)
	}
	if first.Reservation.TotalPrice != 240 {
		t.Errorf("total = %v, want rate x nights = 240", first.Reservation.TotalPrice)
	}
	if n.calls != 1 {
		t.Errorf("notifier calls = %d", n.calls)
	}

	second, err := uc.Submit(ctx, booking.SubmitInput{Request: request("2025-06-02", "2025-06-04", 2)})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.State != booking.StateConflict {
		t.Fatalf("state = %s", second.State)
	}
	if len(second.Conflicts) != 1 || second.Conflicts[0].BookingNumber != first.Reservation.BookingNumber {
		t.Errorf("conflicts = %+v", second.Conflicts)
	}
	if n.calls != 1 {
		t.Errorf("notifier must not run on conflict")
	}
}

func TestSubmitRejectsBeforePersistence(t *testing.T) {
	tests := []struct {
		name    string
		req     booking.Request
		wantErr error
	}{
		{"capacity", request("2025-06-01", "2025-06-03", 3), booking.ErrCapacityExceeded},
		{"date range", request("2025-06-03", "2025-06-01", 2), booking.ErrInvalidDateRange},
		{"same day", request("2025-06-01", "2025-06-01", 2), booking.ErrInvalidDateRange},
		{"missing", booking.Request{RoomID: 2}, booking.ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepo()
			out, err := newUC(r, nil).Submit(context.Background(), booking.SubmitInput{Request: tt.req})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if r.createCalls != 0 {
				t.Errorf("CreateReservation called %d times", r.createCalls)
			}
			if out.State != booking.StateCollectingDetails {
				t.Errorf("state = %s", out.State)
			}
		})
	}
}

func TestSubmitUnknownRoom(t *testing.T) {
	req := request("2025-06-01", "2025-06-03", 1)
	req.RoomID = 9
	_, err := newUC(newMockRepo(), nil).Submit(context.Background(), booking.SubmitInput{Request: req})
	if !errors.Is(err, booking.ErrRoomNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	r := newMockRepo()
	r.createErr = repo.ErrFailedToInsert
	n := &mockNotifier{}

	out, err := newUC(r, n).Submit(context.Background(), booking.SubmitInput{Request: request("2025-06-01", "2025-06-03", 2)})
	if !errors.Is(err, booking.ErrBookingFailed) {
		t.Fatalf("err = %v", err)
	}
	if out.State != booking.StateFailed || out.Reservation.ID != 0 {
		t.Errorf("out = %+v", out)
	}
	if n.calls != 0 {
		t.Errorf("notifier must not run on failure")
	}
}

func TestSubmitNotifyCaveat(t *testing.T) {
	n := &mockNotifier{result: booking.NotifyResult{EmailFailed: true}}
	out, err := newUC(newMockRepo(), n).Submit(context.Background(), booking.SubmitInput{Request: request("2025-06-01", "2025-06-03", 2)})
	if err != nil || out.State != booking.StateAccepted {
		t.Fatalf("out = %+v, err = %v", out, err)
	}
	if !out.Notify.EmailFailed {
		t.Errorf("email caveat not propagated")
	}

	out, _ = newUC(newMockRepo(), nil).Submit(context.Background(), booking.SubmitInput{Request: request("2025-06-01", "2025-06-03", 2)})
	if !out.Notify.EmailFailed {
		t.Errorf("without a notifier the email is not sent")
	}
}

func TestDetail(t *testing.T) {
	r := newMockRepo()
	uc := newUC(r, nil)
	ctx := context.Background()

	out, _ := uc.Submit(ctx, booking.SubmitInput{Request: request("2025-06-01", "2025-06-03", 2)})

	got, err := uc.Detail(ctx, "#"+out.Reservation.BookingNumber)
	if err != nil || got.ID != out.Reservation.ID {
		t.Errorf("Detail = %+v, %v", got, err)
	}
	if _, err := uc.Detail(ctx, "BKG-20990101-0009"); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("unknown err = %v", err)
	}
	if _, err := uc.Detail(ctx, "garbage"); !errors.Is(err, booking.ErrBookingNotFound) {
		t.Errorf("malformed err = %v", err)
	}
}
