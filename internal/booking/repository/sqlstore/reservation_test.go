package sqlstore

import (
	"context"
	"database/sql"
	"regexp"
	"sync"
	"testing"
	"time"

	"hotel-assistant/internal/booking"
	repo "hotel-assistant/internal/booking/repository"
	"hotel-assistant/pkg/log"
	"hotel-assistant/pkg/sqldb"
)

func newTestRepo(t *testing.T) (repo.Repository, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	db, err := sqldb.Open(ctx, sqldb.Config{Dialect: sqldb.SQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := EnsureSchema(ctx, db, sqldb.SQLite); err != nil {
		t.Fatalf("schema: %v", err)
	}
	r := New(db, sqldb.SQLite, log.NewNop())
	for _, room := range []booking.Room{
		{ID: 1, Type: "Single", Price: 80, Capacity: 1, Description: "Garden view"},
		{ID: 2, Type: "Double", Price: 120, Capacity: 2, Description: "Balcony"},
	} {
		if err := r.UpsertRoom(ctx, room); err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}
	return r, db
}

func day(s string) time.Time {
	t, _ := booking.ParseDate(s)
	return t
}

func request(roomID int, in, out string) booking.Request {
	return booking.Request{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Phone: "+32 470 00 00 00",
		RoomID: roomID, CheckIn: day(in), CheckOut: day(out), Guests: 2, TotalPrice: 240,
	}
}

var numberRe = regexp.MustCompile(`^BKG-\d{8}-\d{4}$`)

func TestRooms(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	rooms, err := r.ListRooms(ctx)
	if err != nil || len(rooms) != 2 {
		t.Fatalf("ListRooms = %v, %v", rooms, err)
	}
	room, err := r.GetRoom(ctx, 2)
	if err != nil || room.Capacity != 2 || room.Price != 120 {
		t.Errorf("GetRoom = %+v, %v", room, err)
	}
	missing, err := r.GetRoom(ctx, 99)
	if err != nil || missing.ID != 0 {
		t.Errorf("missing room = %+v, %v", missing, err)
	}

	if err := r.UpsertRoom(ctx, booking.Room{ID: 2, Type: "Double Deluxe", Price: 150, Capacity: 2}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	room, _ = r.GetRoom(ctx, 2)
	if room.Type != "Double Deluxe" || room.Price != 150 {
		t.Errorf("upsert not applied: %+v", room)
	}
}

func TestCreateReservationScenario(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	bookedAt := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

	first, err := r.CreateReservation(ctx, repo.CreateReservationOptions{Request: request(2, "2025-06-01", "2025-06-03"), BookedAt: bookedAt})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if len(first.Conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", first.Conflicts)
	}
	if !numberRe.MatchString(first.Reservation.BookingNumber) {
		t.Errorf("booking number %q has the wrong shape", first.Reservation.BookingNumber)
	}
	if first.Reservation.BookingNumber != "BKG-20250520-0001" {
		t.Errorf("booking number = %s", first.Reservation.BookingNumber)
	}

	second, err := r.CreateReservation(ctx, repo.CreateReservationOptions{Request: request(2, "2025-06-02", "2025-06-04"), BookedAt: bookedAt})
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if len(second.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(second.Conflicts))
	}
	c := second.Conflicts[0]
	if c.BookingNumber != first.Reservation.BookingNumber {
		t.Errorf("conflict references %s, want %s", c.BookingNumber, first.Reservation.BookingNumber)
	}
	if !c.CheckIn.Equal(day("2025-06-01")) || !c.CheckOut.Equal(day("2025-06-03")) {
		t.Errorf("conflict dates = %v..%v", c.CheckIn, c.CheckOut)
	}
	if second.Reservation.ID != 0 {
		t.Errorf("conflicting request must not insert")
	}

	got, err := r.GetReservationByNumber(ctx, first.Reservation.BookingNumber)
	if err != nil || got.ID != first.Reservation.ID || got.Guests != 2 || got.TotalPrice != 240 {
		t.Errorf("GetReservationByNumber = %+v, %v", got, err)
	}
	unknown, err := r.GetReservationByNumber(ctx, "BKG-20990101-0001")
	if err != nil || unknown.ID != 0 {
		t.Errorf("unknown number = %+v, %v", unknown, err)
	}
}

func TestCreateReservationNonOverlapping(t *testing.T) {
	r, db := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	ranges := [][2]string{
		{"2025-06-01", "2025-06-03"},
		{"2025-06-03", "2025-06-05"}, // back to back
		{"2025-05-28", "2025-06-01"},
	}
	for _, rg := range ranges {
		res, err := r.CreateReservation(ctx, repo.CreateReservationOptions{Request: request(2, rg[0], rg[1]), BookedAt: now})
		if err != nil || len(res.Conflicts) != 0 {
			t.Fatalf("%v: conflicts=%v err=%v", rg, res.Conflicts, err)
		}
	}

	// A different room never conflicts.
	res, err := r.CreateReservation(ctx, repo.CreateReservationOptions{Request: request(1, "2025-06-01", "2025-06-03"), BookedAt: now})
	if err != nil || len(res.Conflicts) != 0 {
		t.Fatalf("room 1: conflicts=%v err=%v", res.Conflicts, err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM bookings WHERE booking_number IS NOT NULL`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("bookings = %d, want 4", count)
	}

	conflicts, err := r.FindConflicts(ctx, repo.FindConflictsOptions{RoomID: 2, CheckIn: day("2025-06-02"), CheckOut: day("2025-06-04")})
	if err != nil || len(conflicts) != 2 {
		t.Errorf("FindConflicts = %d, %v", len(conflicts), err)
	}
}

func TestCreateReservationConcurrent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	const n = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.CreateReservation(ctx, repo.CreateReservationOptions{Request: request(2, "2025-07-01", "2025-07-04"), BookedAt: time.Now()})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			if len(res.Conflicts) == 0 {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Errorf("accepted = %d, want exactly 1", accepted)
	}
}
