package http

import (
	"github.com/gin-gonic/gin"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/response"
)

// ListRooms godoc
// @Summary     List rooms
// @Description Returns every room with its nightly rate and capacity.
// @Tags        Booking
// @Produce     json
// @Success     200 {object} roomsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rooms [GET]
func (h *handler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	rooms, err := h.uc.ListRooms(ctx)
	if err != nil {
		h.l.Errorf(ctx, "booking.delivery.http.ListRooms: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newRoomsResp(rooms))
}

// Create godoc
// @Summary     Book a room
// @Description Validates the request, checks it against existing bookings and stores it.
// @Description A conflict returns 409 with the overlapping bookings.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Booking form"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Room not found"
// @Failure     409 {object} response.Resp "Conflict with existing bookings"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, booking.SubmitInput{Request: req.toRequest()})
	if err != nil {
		h.l.Warnf(ctx, "booking.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if output.State == booking.StateConflict {
		response.Error(c, errConflict, map[string]interface{}{
			"conflicts": h.newConflicts(output.Conflicts),
		})
		return
	}

	if req.SessionID != "" && h.linker != nil {
		if err := h.linker.LinkBooking(ctx, req.SessionID, output); err != nil {
			h.l.Warnf(ctx, "booking.delivery.http.Create LinkBooking: %v", err)
		}
	}

	response.OK(c, h.newCreateResp(output))
}

// Detail godoc
// @Summary     Get a booking
// @Description Returns a booking by its number, e.g. BKG-20250601-0001.
// @Tags        Booking
// @Produce     json
// @Param       number path string true "Booking number"
// @Success     200 {object} reservationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings/{number} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	res, err := h.uc.Detail(ctx, c.Param("number"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReservationResp(res))
}
