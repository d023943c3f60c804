package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical date key format (local calendar date).
const KeyLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	daysFromMonday := weekday - 1
	return StartOfDay(date.AddDate(0, 0, -daysFromMonday))
}

// EndOfWeek returns the Sunday of the week for the given date (start of day)
func EndOfWeek(date time.Time) time.Time {
	return StartOfWeek(date).AddDate(0, 0, 6)
}

// Key formats the date as its canonical YYYY-MM-DD key using the local
// calendar date. Two times on the same calendar day produce the same key.
func Key(date time.Time) string {
	return date.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD date key into a local-time date
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", key, err)
	}
	return t, nil
}

// WeekdayIndex returns the weekday as 0=Sunday .. 6=Saturday
func WeekdayIndex(date time.Time) int {
	return int(date.Weekday())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
