package agent

import (
	"fmt"
	"strings"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/conversation"
)

// Greeting is the first line a new session sees.
func (p Persona) Greeting() string {
	return fmt.Sprintf(MsgGreeting, p.AssistantName)
}

// Confirm builds the reply for an accepted booking and the transition into
// the activity follow-up. It is shared by the chat and form booking paths.
func (p Persona) Confirm(out booking.SubmitOutput) Output {
	res := out.Reservation
	first := strings.TrimSpace(res.FirstName)
	if first == "" {
		first = "valued guest"
	}

	mail := MsgConfirmationEmail
	if out.Notify.EmailFailed {
		mail = MsgConfirmationNoMail
	}

	reply := fmt.Sprintf(MsgConfirmation, first, res.BookingNumber, mail, p.HotelName)
	if out.Notify.CalendarFailed {
		reply += MsgCalendarCaveat
	}
	reply += MsgActivityOffer

	return Output{
		Reply: reply,
		Transition: conversation.Transition{
			Mode:       conversation.ModeAwaitingActivityConsent,
			ClearDraft: true,
			Booking:    &conversation.BookingRef{Number: res.BookingNumber, FirstName: first},
		},
	}
}
