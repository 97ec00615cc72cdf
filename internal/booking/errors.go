package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrRoomNotFound     = errors.New("room not found")
	ErrMissingField     = errors.New("missing required booking field")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingFailed    = errors.New("booking could not be saved")
)

// MissingFieldsError lists the required fields that are empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingField.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingField
}
