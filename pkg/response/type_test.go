package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel-assistant/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tests := map[string]struct {
		in   time.Time
		want string
	}{
		"midnight utc": {
			in:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			want: `"2025-06-01"`,
		},
		"late evening west of utc": {
			in:   time.Date(2025, 6, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want: `"2025-06-01"`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tc.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tc.want {
				t.Errorf("got %s, want %s", b, tc.want)
			}
		})
	}
}
