package email

import "time"

const (
	DefaultPort    = 587
	DefaultTimeout = 15 * time.Second
)
