package conversation

import "time"

const (
	LogPrefixRecord = "internal.conversation.Record"

	DefaultSummaryTimeout = 20 * time.Second

	// digestTurns is how many recent turns the fallback digest keeps.
	digestTurns = 6

	SummaryTemperature = 0
	SummaryMaxTokens   = 400
)

const PromptSummarize = `Summarize the conversation below between a hotel guest and %s, the receptionist at %s.
Write a short third-person digest that keeps every concrete fact: names, room numbers, dates, guest counts, prices and booking numbers.
Do not add anything that is not in the conversation.

%s
Summary:`
