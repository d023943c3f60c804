package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidTime is returned when a clock time string is malformed or out of range.
var ErrInvalidTime = errors.New("invalid clock time")

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock parses a clock time in H:MM or HH:MM form into minutes since
// midnight. Hours must be 0-23 and minutes 0-59.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (want HH:MM)", ErrInvalidTime, s)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: hours out of range in %q", ErrInvalidTime, s)
	}

	minutes, err := strconv.Atoi(m[2])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: minutes out of range in %q", ErrInvalidTime, s)
	}

	return hours*60 + minutes, nil
}

// FormatMinutes formats a minute count as "Xh Ym" (floor division, no rounding)
// Example: FormatMinutes(90) returns "1h 30m", FormatMinutes(0) returns "0h 0m"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
