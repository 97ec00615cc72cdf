package http

import (
	"time"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	SessionID       string `json:"session_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	RoomID          int    `json:"room_id"`
	CheckIn         string `json:"check_in" example:"2025-06-01"`
	CheckOut        string `json:"check_out" example:"2025-06-03"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`

	checkIn, checkOut time.Time
}

func (r *createReq) validate() error {
	if r.CheckIn != "" {
		t, err := booking.ParseDate(r.CheckIn)
		if err != nil {
			return errInvalidDate
		}
		r.checkIn = t
	}
	if r.CheckOut != "" {
		t, err := booking.ParseDate(r.CheckOut)
		if err != nil {
			return errInvalidDate
		}
		r.checkOut = t
	}
	return nil
}

func (r createReq) toRequest() booking.Request {
	return booking.Request{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		RoomID:          r.RoomID,
		CheckIn:         r.checkIn,
		CheckOut:        r.checkOut,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}
}

// --- Response DTOs ---

type roomResp struct {
	ID          int     `json:"room_id"`
	Type        string  `json:"room_type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"guest_capacity"`
	Description string  `json:"description"`
}

type roomsResp struct {
	Rooms []roomResp `json:"rooms"`
}

func (h *handler) newRoomsResp(rooms []booking.Room) roomsResp {
	out := roomsResp{Rooms: make([]roomResp, 0, len(rooms))}
	for _, r := range rooms {
		out.Rooms = append(out.Rooms, roomResp{
			ID:          r.ID,
			Type:        r.Type,
			Price:       r.Price,
			Capacity:    r.Capacity,
			Description: r.Description,
		})
	}
	return out
}

type reservationResp struct {
	BookingNumber   string        `json:"booking_number"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	RoomID          int           `json:"room_id"`
	CheckIn         response.Date `json:"check_in" swaggertype:"string" example:"2025-06-01"`
	CheckOut        response.Date `json:"check_out" swaggertype:"string" example:"2025-06-03"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"total_price"`
	SpecialRequests string        `json:"special_requests,omitempty"`
}

func (h *handler) newReservationResp(res booking.Reservation) reservationResp {
	return reservationResp{
		BookingNumber:   res.BookingNumber,
		FirstName:       res.FirstName,
		LastName:        res.LastName,
		RoomID:          res.RoomID,
		CheckIn:         response.Date(res.CheckIn),
		CheckOut:        response.Date(res.CheckOut),
		Guests:          res.Guests,
		TotalPrice:      res.TotalPrice,
		SpecialRequests: res.SpecialRequests,
	}
}

type createResp struct {
	State       string          `json:"state"`
	Reservation reservationResp `json:"reservation"`
	RoomType    string          `json:"room_type"`
	EmailSent   bool            `json:"email_sent"`
	// CalendarSynced is false when the hotel calendar could not be updated.
	CalendarSynced bool `json:"calendar_synced"`
}

func (h *handler) newCreateResp(out booking.SubmitOutput) createResp {
	return createResp{
		State:          string(out.State),
		Reservation:    h.newReservationResp(out.Reservation),
		RoomType:       out.Room.Type,
		EmailSent:      !out.Notify.EmailFailed,
		CalendarSynced: !out.Notify.CalendarFailed,
	}
}

type conflictResp struct {
	BookingNumber string        `json:"booking_number"`
	CheckIn       response.Date `json:"check_in" swaggertype:"string"`
	CheckOut      response.Date `json:"check_out" swaggertype:"string"`
}

func (h *handler) newConflicts(conflicts []booking.Reservation) []conflictResp {
	out := make([]conflictResp, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, conflictResp{
			BookingNumber: c.BookingNumber,
			CheckIn:       response.Date(c.CheckIn),
			CheckOut:      response.Date(c.CheckOut),
		})
	}
	return out
}
