package schedule

import (
	"time"

	"github.com/username/work-journal/pkg/dateutil"
)

// Schedule modes
const (
	ModeFlexible    = "flexible"
	ModeFiveFixed   = "five_fixed"
	ModeThreeFixed  = "three_fixed"
	ModeFourFixed   = "four_fixed"
	ModeTwoTwoThree = "two23"
)

// Holiday handling modes
const (
	HolidaySkip   = "skip"
	HolidayIgnore = "ignore"
)

// rotationReference anchors the 2-2-3 rotation. It is a Monday; week 0 of the
// cycle starts here.
var rotationReference = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Policy classifies calendar dates against the configured work schedule
type Policy struct {
	mode        string
	fixedDays   map[int]bool
	holidayMode string
	holidays    map[string]bool
}

// NewPolicy creates a Policy. fixedDays are weekday indices (0=Sunday) and are
// only consulted in the three_fixed/four_fixed modes. holidays are date keys
// (YYYY-MM-DD).
func NewPolicy(mode string, fixedDays []int, holidayMode string, holidays []string) *Policy {
	p := &Policy{
		mode:        mode,
		fixedDays:   make(map[int]bool, len(fixedDays)),
		holidayMode: holidayMode,
		holidays:    make(map[string]bool, len(holidays)),
	}
	for _, d := range fixedDays {
		p.fixedDays[d] = true
	}
	for _, h := range holidays {
		p.holidays[h] = true
	}
	return p
}

// IsScheduledDay returns whether the schedule expects work on the given date,
// independent of holidays and of whether work was actually logged.
func (p *Policy) IsScheduledDay(date time.Time) bool {
	weekday := dateutil.WeekdayIndex(date)

	switch p.mode {
	case ModeFiveFixed:
		return weekday >= 1 && weekday <= 5

	case ModeThreeFixed, ModeFourFixed:
		return p.fixedDays[weekday]

	case ModeTwoTwoThree:
		// Alternating 2-week cycle: week 0 works Mon+Tue, week 1 works
		// Wed+Thu+Fri. Floored arithmetic keeps the rotation consistent for
		// dates before the reference.
		weeks := floorDiv(daysSinceReference(date), 7)
		if floorMod(weeks, 2) == 0 {
			return weekday == 1 || weekday == 2
		}
		return weekday == 3 || weekday == 4 || weekday == 5

	default: // flexible and anything unrecognized
		return false
	}
}

// IsHoliday returns whether the date is in the configured holiday set
func (p *Policy) IsHoliday(date time.Time) bool {
	return p.holidays[dateutil.Key(date)]
}

// ShouldWork combines holiday and schedule classification. A holiday forces
// false only under the skip holiday mode.
func (p *Policy) ShouldWork(date time.Time) bool {
	if p.IsHoliday(date) && p.holidayMode == HolidaySkip {
		return false
	}
	return p.IsScheduledDay(date)
}

// daysSinceReference returns whole calendar days between the rotation
// reference and the given date, negative for earlier dates. Both endpoints are
// normalized to UTC midnight so the difference is an exact day multiple.
func daysSinceReference(date time.Time) int {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(rotationReference) / (24 * time.Hour))
}

// floorDiv is integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv (always in [0, b) for b > 0)
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
