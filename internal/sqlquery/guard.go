package sqlquery

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	stringLiteralRe = regexp.MustCompile(`'(?:[^']|'')*'`)
	lineCommentRe   = regexp.MustCompile(`--[^\n]*`)
	blockCommentRe  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	leadingVerbRe   = regexp.MustCompile(`(?i)^\s*(select|with)\b`)
	writeKeywordRe  = regexp.MustCompile(`(?i)\b(insert|update|delete|merge|drop|alter|create|truncate|grant|revoke|attach|detach|pragma|vacuum|reindex|copy|call|do|lock|set)\b`)
)

// Check accepts exactly one SELECT or WITH statement and returns it without
// the trailing semicolon. Data-modifying keywords are rejected anywhere
// outside string literals, which also covers writable CTEs.
func Check(query string) (string, error) {
	q := strings.TrimSpace(query)
	q = strings.TrimRight(q, "; \t\r\n")
	if q == "" {
		return "", ErrEmptyQuery
	}

	bare := stringLiteralRe.ReplaceAllString(q, "''")
	bare = blockCommentRe.ReplaceAllString(bare, " ")
	bare = lineCommentRe.ReplaceAllString(bare, " ")

	if strings.Contains(bare, ";") {
		return "", ErrMultipleStatements
	}
	if !leadingVerbRe.MatchString(bare) {
		return "", ErrNotReadOnly
	}
	if kw := writeKeywordRe.FindString(bare); kw != "" {
		return "", fmt.Errorf("%w: found %q", ErrNotReadOnly, strings.ToUpper(kw))
	}
	return q, nil
}
