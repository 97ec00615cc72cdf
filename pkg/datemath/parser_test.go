package datemath_test

import (
	"errors"
	"testing"
	"time"

	"hotel-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestNormalize(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	base := time.Date(2025, 5, 21, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{name: "ISO", phrase: "2025-06-01", want: "2025-06-01"},
		{name: "Slashes", phrase: "2025/06/01", want: "2025-06-01"},
		{name: "Dotted European", phrase: "01.06.2025", want: "2025-06-01"},
		{name: "Long month", phrase: "June 1, 2025", want: "2025-06-01"},
		{name: "Ordinal without year", phrase: "1st June", want: "2025-06-01"},
		{name: "Yearless in the past rolls over", phrase: "Jan 3", want: "2026-01-03"},
		{name: "Today", phrase: "today", want: "2025-05-21"},
		{name: "Tomorrow", phrase: " Tomorrow ", want: "2025-05-22"},
		{name: "Day after tomorrow", phrase: "the day after tomorrow", want: "2025-05-23"},
		{name: "In 3 days", phrase: "in 3 days", want: "2025-05-24"},
		{name: "In 2 weeks", phrase: "in 2 weeks", want: "2025-06-04"},
		{name: "In 1 month", phrase: "in 1 month", want: "2025-06-21"},
		{name: "Next friday", phrase: "next friday", want: "2025-05-23"},
		{name: "Bare weekday", phrase: "monday", want: "2025-05-26"},
		{name: "Same weekday is a week later", phrase: "this wednesday", want: "2025-05-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Normalize(tt.phrase, base)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.phrase, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %s, want %s", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestParseUnrecognised(t *testing.T) {
	parser := datemath.NewParserIn(time.UTC)
	base := time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)

	for _, phrase := range []string{"", "in a few days", "someday", "next blursday"} {
		if _, err := parser.Parse(phrase, base); !errors.Is(err, datemath.ErrUnrecognised) {
			t.Errorf("Parse(%q) error = %v, want ErrUnrecognised", phrase, err)
		}
	}
}

func TestParseUsesParserZone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	// 20:00 UTC is already the next morning in Tokyo.
	base := time.Date(2025, 5, 21, 20, 0, 0, 0, time.UTC)
	got, _ := parser.Normalize("today", base)
	if got != "2025-05-22" {
		t.Errorf("today in Tokyo = %s, want 2025-05-22", got)
	}
}
