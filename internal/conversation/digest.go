package conversation

import (
	"fmt"
	"strings"
)

// Digest renders the most recent turns verbatim. It always contains the latest turn.
func Digest(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}
	start := 0
	if len(turns) > digestTurns {
		start = len(turns) - digestTurns
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(fmt.Sprintf("(%d earlier turns omitted)\n", start))
	}
	for _, t := range turns[start:] {
		sb.WriteString("Guest: ")
		sb.WriteString(t.Utterance)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(t.Reply)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func transcript(turns []Turn, assistant string) string {
	var sb strings.Builder
	for _, t := range turns {
		sb.WriteString("Guest: ")
		sb.WriteString(t.Utterance)
		sb.WriteString("\n")
		sb.WriteString(assistant)
		sb.WriteString(": ")
		sb.WriteString(t.Reply)
		sb.WriteString("\n")
	}
	return sb.String()
}
