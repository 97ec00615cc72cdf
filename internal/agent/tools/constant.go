package tools

import "time"

// Log prefixes
const (
	LogPrefixStructuredQuery  = "internal.agent.tools.StructuredQuery"
	LogPrefixSemanticLookup   = "internal.agent.tools.SemanticLookup"
	LogPrefixOpenChat         = "internal.agent.tools.OpenChat"
	LogPrefixBookingRequest   = "internal.agent.tools.BookingRequest"
	LogPrefixActivityFollowup = "internal.agent.tools.ActivityFollowup"
)

// Defaults
const (
	DefaultGenerationTimeout = 30 * time.Second
	DefaultRetrievalTimeout  = 15 * time.Second
	DefaultMaxRows           = 50
	DefaultCandidates        = 30
	MinCandidates            = 10
	DefaultTopK              = 10
	DefaultMinPassageLength  = 50

	// dedupRunes is the prefix length two passages are compared on.
	dedupRunes = 100

	sqlTemperature      = 0
	sqlMaxTokens        = 400
	answerTemperature   = 0.3
	answerMaxTokens     = 600
	extractTemperature  = 0
	extractMaxTokens    = 300
	consentTemperature  = 0
	consentMaxTokens    = 5
	activityTemperature = 0.5
	activityMaxTokens   = 700
)

// Structured query prompts
const (
	PromptSQL = `You are an SQL assistant for a hotel booking system.

Conversation summary so far:
%s

Translate the guest's question into a single %s SELECT statement using this schema:

bookings(booking_id, first_name, last_name, email, phone, room_id, check_in, check_out, num_guests, total_price, special_requests, booking_number)
rooms(room_id, room_type, price, guest_capacity, description)
room_availability(room_id, date, is_available)

Rules:
- Today is %s in the hotel's time zone.
- rooms.price is the nightly rate. The total price of a stay is price multiplied by the number of nights, where nights is the whole number of days between check_out and check_in.
- A room is free for a stay when no booking for it has check_in before the requested check-out and check_out after the requested check-in.
- Use prior information from the summary, such as booking numbers, when the question does not repeat it.
- Use exact column names and booking_number for reservations.
- Return only the SQL statement ending with a semicolon. No prose, no markdown fences.

Example:
Question: Can you get me the details for BKG-20250401-0003?
SELECT * FROM bookings WHERE booking_number = 'BKG-20250401-0003';

Question: %s`

	PromptSQLAnswer = `You are %s, the receptionist at %s.
Answer the guest's question in a warm, concise reply using only the query result below.
Prices are in %s.

Question: %s

Query result:
%s`

	MsgRowsPreface   = "Here is what I found:\n\n"
	RowsTruncatedFmt = "[truncated: showing %d of %d rows]"
)

// Semantic lookup prompts
const (
	PromptSemanticAnswer = `You are %s, the friendly receptionist at %s.

Answer the guest's question in a warm and concise paragraph, using only the information below. Prioritize anything about sustainability or green practices when applicable.

%s

Guest: %s`
)

// Open chat prompts and messages
const (
	PromptOpenChat = `You are %s, the friendly AI hotel assistant at %s.

RESPONSE STYLE:
- Keep responses SHORT and conversational (2-3 sentences max)
- Use a warm, casual chat tone, not email format
- Never use "Dear Guest," "Warm regards," or email signatures
- Do not ask follow-up questions or offer additional help

%s

If a guest expresses emotions like loneliness, sadness, or stress:
- Gently acknowledge the feeling with empathy
- Give 1-2 brief, comforting suggestions from the facts

If the answer is not found in the facts:
- Say: "%s"

Conversation so far:
%s

Guest: %s

Response (keep it brief and conversational):`

	MsgNoInformation   = "I don't have that information right now. Feel free to contact our team directly - they'll be happy to help!"
	MsgChatFailure     = "I'm sorry, something went wrong while processing your question."
	noFactsPlaceholder = "[NO FACTS AVAILABLE]"
)

// Activity follow-up prompts and messages
const (
	PromptConsent = `You are analyzing a guest's response to this question:
"Would you like suggestions for things to do in the area during your stay?"

Their reply was: %q

Classify their intent as:
- POSITIVE: They want activity suggestions (yes, sure, sounds good, please, etc.)
- NEGATIVE: They don't want suggestions (no, not interested, no thanks, etc.)
- UNCLEAR: Ambiguous response

Respond with only: POSITIVE, NEGATIVE, or UNCLEAR`

	PromptActivities = `You are providing activity suggestions to a hotel guest. Be warm and helpful.

Activities information:
%s

Requirements:
1. Start directly with your response, without any name prefix
2. Provide the activity information in a friendly way
3. End immediately after giving the information
4. Do not mention reception, assistance or further services
5. Do not ask questions or invite more interaction

Guest said: %s

Your response:`

	MsgActivitiesFallback    = "Great! Here are some wonderful things to do in the area:\n\n"
	MsgActivitiesUnavailable = "I'm sorry, I couldn't load the activity suggestions at this time."
	MsgConsentNegative       = "No problem at all! Have a wonderful and relaxing stay with us! 😊"
	MsgConsentUnclear        = "Would you like some suggestions for local attractions and activities? Just let me know!"
	MsgConsentError          = "I'm sorry, I had trouble understanding that. Could you say that again?"
)

// Booking conversation prompts and messages
const (
	PromptExtractBooking = `Extract hotel booking details from the guest's latest message.
Today is %s.

Details collected so far:
%s

Guest message: %q

Return JSON only with any of these keys that the message provides:
{"first_name": "", "last_name": "", "email": "", "phone": "", "room_id": 0, "check_in": "", "check_out": "", "guests": 0, "special_requests": ""}
Dates may be copied as the guest wrote them (for example "tomorrow" or "June 3") or given as YYYY-MM-DD.
Leave out keys the message does not mention. Do not guess.`

	MsgBookingStart      = "I'd be happy to help you book a room! "
	MsgBookingNeed       = "To complete your booking I still need: %s."
	MsgBookingRoomsHead  = "\n\nOur rooms:"
	MsgBookingRoomLine   = "\n- Room %d: %s, %s per night, up to %d %s"
	MsgBookingBadDate    = "I couldn't understand the date %q. Could you give it as YYYY-MM-DD? "
	MsgBookingExtractErr = "I'm sorry, I couldn't read those details. Could you repeat them? "
	MsgBookingCancelled  = "No problem, I've cancelled the booking. Is there anything else I can help you with?"
	MsgBookingDateRange  = "The check-out date has to be after the check-in date. Could you give me your dates again?"
	MsgBookingCapacity   = "Room %d takes at most %d %s. Could you choose another room or adjust the number of guests?"
	MsgBookingNoRoom     = "I couldn't find room %d. Please choose one of the rooms listed."
	MsgBookingFailed     = "I'm sorry, I couldn't complete your booking right now. Nothing has been reserved, so please try again in a moment."
	MsgBookingConflict   = "I'm sorry, room %d is not available for those dates. It is already booked:"
	MsgBookingConflictLn = "\n- %s from %s to %s"
	MsgBookingNewDates   = "\n\nCould you choose different dates or another room?"
)
