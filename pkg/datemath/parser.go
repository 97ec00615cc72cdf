package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	ordinalRe    = regexp.MustCompile(`(\d+)(st|nd|rd|th)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts date phrases to calendar days in one time zone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA time zone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Parse converts an absolute or relative date phrase to midnight of that day.
// Unknown phrases return ErrUnrecognised rather than guessing.
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	phrase = ordinalRe.ReplaceAllString(phrase, "$1")

	switch phrase {
	case "":
		return time.Time{}, ErrUnrecognised
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	}

	if t, ok := p.parseAbsolute(phrase, baseTime); ok {
		return t, nil
	}

	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, baseTime)
	}

	return p.parseWeekday(phrase, baseTime)
}

// Normalize returns phrase as YYYY-MM-DD.
func (p *Parser) Normalize(phrase string, baseTime time.Time) (string, error) {
	t, err := p.Parse(phrase, baseTime)
	if err != nil {
		return "", err
	}
	return t.Format(ISODate), nil
}

func (p *Parser) parseAbsolute(phrase string, baseTime time.Time) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, phrase, p.location); err == nil {
			return t, true
		}
	}

	base := p.startOfDay(baseTime)
	for _, layout := range yearlessLayouts {
		t, err := time.ParseInLocation(layout, phrase, p.location)
		if err != nil {
			continue
		}
		t = time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
		if t.Before(base) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// parseInDuration handles "in 3 days", "in 2 weeks" and "in 1 month".
func (p *Parser) parseInDuration(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognised, phrase)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday handles "friday", "this friday" and "next friday". All three
// mean the first such day strictly after today.
func (p *Parser) parseWeekday(phrase string, baseTime time.Time) (time.Time, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(phrase, "next "), "this ")
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognised, phrase)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's time zone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
