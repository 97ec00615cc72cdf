package booking

import "time"

// State is a step of the booking state machine.
type State string

const (
	StateCollectingDetails State = "collecting_details"
	StateValidating        State = "validating"
	StateConflict          State = "conflict"
	StateAccepted          State = "accepted"
	StateFailed            State = "failed"
)

// Room is a bookable room as stored in the rooms table.
type Room struct {
	ID          int
	Type        string
	Price       float64 // nightly rate
	Capacity    int
	Description string
}

// Request is a guest's booking request before persistence.
type Request struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	RoomID          int
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      float64
	SpecialRequests string
}

// Reservation is an accepted request with its generated booking number.
type Reservation struct {
	ID            int64
	BookingNumber string
	Request
}

// --- UseCase Inputs ---

type SubmitInput struct {
	Request Request
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	State       State
	Reservation Reservation
	Room        Room
	// Conflicts holds the existing reservations that overlap the request.
	Conflicts []Reservation
	Notify    NotifyResult
}

// Confirmation is what the side effects of an accepted booking need.
type Confirmation struct {
	Reservation Reservation
	Room        Room
}

// NotifyResult reports which confirmation side effects did not go through.
type NotifyResult struct {
	EmailFailed    bool
	CalendarFailed bool
}
