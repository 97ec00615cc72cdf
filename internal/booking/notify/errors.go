package notify

import "errors"

var (
	ErrMailerNotConfigured   = errors.New("confirmation email is not configured")
	ErrCalendarNotConfigured = errors.New("calendar sync is not configured")
	ErrInvalidPayload        = errors.New("invalid confirmation task payload")
)
