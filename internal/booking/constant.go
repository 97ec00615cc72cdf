package booking

const (
	// DateLayout is the wire and storage format of check-in and check-out dates.
	DateLayout = "2006-01-02"

	bookingNumberPrefix = "BKG"
	bookingDayLayout    = "20060102"
)

// Required field names, as reported by MissingFieldsError.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldRoomID    = "room_id"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldGuests    = "guests"
)
