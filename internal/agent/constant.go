package agent

// Guest-facing messages shared by the executors and the orchestrator.
const (
	MsgCouldNotRetrieve = "I'm sorry, I couldn't retrieve that information right now. Please try again in a moment."
	MsgNoDataFound      = "No data found."
	MsgNothingRelevant  = "❌ I couldn’t find anything relevant in our documents."
	MsgRephrase         = "Hmm, I found some documents but they seem too short to be helpful. Could you rephrase your question?"
	MsgGenericFailure   = "I'm sorry, I encountered an error processing your request. Please try again or rephrase your question."
	MsgDegradedNotice   = "(I'm having a little trouble understanding requests right now, so I'll answer as best I can.)\n\n"

	MsgGreeting = "👋 Hello, I'm %s. How can I help you today?"
)

// Booking confirmation pieces.
const (
	MsgConfirmation       = "Dear %s, this is your booking number #%s. %sThank you for choosing %s for your upcoming stay!"
	MsgConfirmationEmail  = "A confirmation email has been sent to your provided email address. "
	MsgConfirmationNoMail = "We couldn't send the confirmation email just now, so please keep your booking number handy. "
	MsgCalendarCaveat     = "\n\nOur team will add your stay to the hotel calendar shortly."
	MsgActivityOffer      = "\n\nWould you like recommendations for things to see and do during your stay?"
)
