package notify

import (
	"fmt"
	"strconv"
	"strings"

	"hotel-assistant/internal/booking"
	"hotel-assistant/pkg/email"
)

// Template carries the hotel identity used in confirmations.
type Template struct {
	HotelName string
	Currency  string
}

// ConfirmationEmail builds the plain-text confirmation for c.
func (t Template) ConfirmationEmail(c booking.Confirmation) email.Message {
	res := c.Reservation

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s %s,\n\n", res.FirstName, res.LastName)
	fmt.Fprintf(&b, "Thank you for booking with %s!\n\n", t.HotelName)
	fmt.Fprintf(&b, "📅 Booking Number: %s\n", res.BookingNumber)
	fmt.Fprintf(&b, "🛏️ Room Type: %s\n", c.Room.Type)
	fmt.Fprintf(&b, "👥 Guests: %d\n", res.Guests)
	fmt.Fprintf(&b, "📆 Check-in: %s\n", res.CheckIn.Format(booking.DateLayout))
	fmt.Fprintf(&b, "📆 Check-out: %s\n", res.CheckOut.Format(booking.DateLayout))
	fmt.Fprintf(&b, "💶 Total Price: %s%s\n", t.Currency, FormatAmount(res.TotalPrice))
	fmt.Fprintf(&b, "📞 Phone: %s\n\n", res.Phone)
	b.WriteString("We look forward to hosting you!\n\n")
	fmt.Fprintf(&b, "Sincerely,\n%s\n", t.HotelName)

	return email.Message{
		To:      res.Email,
		Subject: "Booking Confirmation – " + res.BookingNumber,
		Body:    b.String(),
	}
}

// CalendarSummary is the title of the hotel calendar event for c.
func (t Template) CalendarSummary(c booking.Confirmation) string {
	return fmt.Sprintf("%s – %s %s (%s)", c.Reservation.BookingNumber, c.Reservation.FirstName, c.Reservation.LastName, c.Room.Type)
}

// CalendarDescription lists the booking details for the hotel calendar event.
func (t Template) CalendarDescription(c booking.Confirmation) string {
	res := c.Reservation
	lines := []string{
		"Booking: " + res.BookingNumber,
		fmt.Sprintf("Room: %d (%s)", res.RoomID, c.Room.Type),
		fmt.Sprintf("Guests: %d", res.Guests),
		"Email: " + res.Email,
		"Phone: " + res.Phone,
		"Total: " + t.Currency + FormatAmount(res.TotalPrice),
	}
	if res.SpecialRequests != "" {
		lines = append(lines, "Special requests: "+res.SpecialRequests)
	}
	return strings.Join(lines, "\n")
}

// FormatAmount prints whole amounts without decimals and others with two.
func FormatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
