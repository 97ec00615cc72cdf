package email

import "time"

// Config holds the SMTP account used for outgoing mail.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	// Insecure disables authentication and STARTTLS; only for local relays.
	Insecure bool
}

// Message is a single plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}
