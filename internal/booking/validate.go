package booking

import (
	"strings"
	"time"
)

// ValidateRequest checks the required fields and the date range. It needs no room.
func ValidateRequest(req Request) error {
	var missing []string
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, FieldFirstName)
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, FieldLastName)
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, FieldEmail)
	}
	if req.RoomID <= 0 {
		missing = append(missing, FieldRoomID)
	}
	if req.CheckIn.IsZero() {
		missing = append(missing, FieldCheckIn)
	}
	if req.CheckOut.IsZero() {
		missing = append(missing, FieldCheckOut)
	}
	if req.Guests <= 0 {
		missing = append(missing, FieldGuests)
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if !Day(req.CheckOut).After(Day(req.CheckIn)) {
		return ErrInvalidDateRange
	}
	return nil
}

// Validate checks req against room. It runs before any persistence call.
func Validate(req Request, room Room) error {
	if err := ValidateRequest(req); err != nil {
		return err
	}
	if req.Guests > room.Capacity {
		return ErrCapacityExceeded
	}
	return nil
}

// Nights is the number of whole days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
}

// TotalPrice is the nightly rate times the number of nights.
func TotalPrice(room Room, checkIn, checkOut time.Time) float64 {
	return room.Price * float64(Nights(checkIn, checkOut))
}

// Overlaps reports whether [aIn, aOut) and [bIn, bOut) share a night.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return Day(aIn).Before(Day(bOut)) && Day(bIn).Before(Day(aOut))
}

// Day truncates t to its calendar date in UTC, keeping the wall-clock date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}
