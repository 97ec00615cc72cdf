package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var bookingNumberRe = regexp.MustCompile(`^BKG-\d{8}-\d{4,}$`)

// FormatBookingNumber derives BKG-<YYYYMMDD of the booking day>-<id padded to 4>.
func FormatBookingNumber(bookedAt time.Time, id int64) string {
	return fmt.Sprintf("%s-%s-%04d", bookingNumberPrefix, bookedAt.Format(bookingDayLayout), id)
}

// NormalizeBookingNumber uppercases a guest-typed number and drops a leading '#'.
func NormalizeBookingNumber(s string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
}

// IsBookingNumber reports whether s has the booking number shape.
func IsBookingNumber(s string) bool {
	return bookingNumberRe.MatchString(s)
}
