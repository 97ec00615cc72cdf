package http

import (
	"errors"
	"net/http"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/response"
)

var (
	errInvalidBody = response.NewHTTPError(http.StatusBadRequest, 40000, "invalid request body")
	errInvalidDate = response.NewHTTPError(http.StatusBadRequest, 40004, "dates must use the YYYY-MM-DD format")
	errConflict    = response.NewHTTPError(http.StatusConflict, 40901, "the room is already booked for some of these dates")
)

// mapError converts domain errors into HTTP errors. Unknown errors never leak.
func (h *handler) mapError(err error) error {
	var missing *booking.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		return response.NewHTTPError(http.StatusBadRequest, 40003, missing.Error())
	case errors.Is(err, booking.ErrInvalidDateRange):
		return response.NewHTTPError(http.StatusBadRequest, 40001, booking.ErrInvalidDateRange.Error())
	case errors.Is(err, booking.ErrCapacityExceeded):
		return response.NewHTTPError(http.StatusBadRequest, 40002, booking.ErrCapacityExceeded.Error())
	case errors.Is(err, booking.ErrRoomNotFound):
		return response.NewHTTPError(http.StatusNotFound, 40401, booking.ErrRoomNotFound.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		return response.NewHTTPError(http.StatusNotFound, 40402, booking.ErrBookingNotFound.Error())
	case errors.Is(err, booking.ErrBookingFailed):
		return response.NewHTTPError(http.StatusInternalServerError, 50001, booking.ErrBookingFailed.Error())
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage)
	}
}
