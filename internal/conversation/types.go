package conversation

import "time"

// Mode is the session-level workflow state. It replaces ad-hoc booking flags.
type Mode string

const (
	ModeIdle                    Mode = "idle"
	ModeCollectingDetails       Mode = "collecting_details"
	ModeAwaitingActivityConsent Mode = "awaiting_activity_consent"
)

// Turn is one utterance and the reply it produced.
type Turn struct {
	Utterance string    `json:"utterance"`
	Reply     string    `json:"reply"`
	At        time.Time `json:"at"`
}

// BookingDraft holds booking details gathered over several turns.
// Dates are ISO (YYYY-MM-DD) once normalised.
type BookingDraft struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	RoomID          int    `json:"room_id,omitempty"`
	CheckIn         string `json:"check_in,omitempty"`
	CheckOut        string `json:"check_out,omitempty"`
	Guests          int    `json:"guests,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingRef points at the last reservation made in the session.
type BookingRef struct {
	Number    string `json:"number"`
	FirstName string `json:"first_name"`
}

// State is the persisted form of a session.
type State struct {
	SessionID     string        `json:"session_id"`
	Turns         []Turn        `json:"turns"`
	Summary       string        `json:"summary"`
	Mode          Mode          `json:"mode"`
	Draft         *BookingDraft `json:"draft,omitempty"`
	LatestBooking *BookingRef   `json:"latest_booking,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Transition is the change an executor asks for. Zero fields leave state untouched.
type Transition struct {
	Mode       Mode
	Draft      *BookingDraft
	ClearDraft bool
	Booking    *BookingRef
}
