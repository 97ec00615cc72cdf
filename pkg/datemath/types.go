package datemath

import "errors"

// ISODate is the layout every normalised date is returned in.
const ISODate = "2006-01-02"

// ErrUnrecognised is returned when a phrase is neither a date nor a known relative expression.
var ErrUnrecognised = errors.New("datemath: unrecognised date")

// absoluteLayouts are tried in order before any relative parsing.
var absoluteLayouts = []string{
	ISODate,
	"2006/01/02",
	"02.01.2006",
	"2 January 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
}

// yearlessLayouts resolve to the next occurrence on or after the base day.
var yearlessLayouts = []string{
	"2 January",
	"January 2",
	"2 Jan",
	"Jan 2",
}
