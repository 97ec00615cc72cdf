package gcalendar

import "time"

const (
	DateFormat = "2006-01-02"
	// TokenFile holds the OAuth token for desktop credentials, relative to the working directory.
	TokenFile = "token.json"
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Brussels"
	AllDay      bool
	// Properties are stored as private extended properties, used for lookups.
	Properties map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID    string
	TimeMin       time.Time
	TimeMax       time.Time
	MaxResults    int64
	PropertyKey   string
	PropertyValue string
}
