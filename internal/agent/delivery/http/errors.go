package http

import (
	"net/http"

	"hotel-assistant/pkg/response"
)

var (
	errInvalidBody    = response.NewHTTPError(http.StatusBadRequest, 41000, "invalid request body")
	errEmptyMessage   = response.NewHTTPError(http.StatusBadRequest, 41001, "message must not be empty")
	errMessageTooLong = response.NewHTTPError(http.StatusBadRequest, 41002, "message is too long")
)
