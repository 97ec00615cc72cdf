package telegram

import "time"

const (
	defaultTimeout = 2 * time.Minute

	commandStart = "/start"
	commandHelp  = "/help"
	commandReset = "/reset"

	sessionPrefix = "telegram_"

	msgHelp = "Ask me anything about the hotel: rooms, prices, availability, breakfast or our eco initiatives.\n" +
		"You can also book a room right here in the chat.\n\n" +
		"/reset starts a new conversation."
	msgFailure = "Sorry, something went wrong while handling your message. Please try again."
)
