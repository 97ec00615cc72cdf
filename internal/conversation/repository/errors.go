package repository

import "errors"

var (
	ErrNotFound      = errors.New("session not found")
	ErrFailedToSave  = errors.New("failed to save session")
	ErrFailedToGet   = errors.New("failed to get session")
	ErrFailedToClear = errors.New("failed to delete session")
)
