package journal

import (
	"errors"

	"github.com/username/work-journal/pkg/timeutil"
)

// ErrEndBeforeStart is returned when an entry's end time is not after its start.
var ErrEndBeforeStart = errors.New("end time must be after start time")

// ErrNotFound is returned when deleting an entry that does not exist.
var ErrNotFound = errors.New("entry not found")

// DefaultDescription is used when an entry is added with a blank description.
const DefaultDescription = "Work"

// Entry represents one recorded work interval within a day.
// Times are clock strings (HH:MM), validated when the entry is created.
type Entry struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
}

// Duration returns the entry length in minutes. Entries are validated on
// insertion, so the times are assumed parseable with end after start.
func (e Entry) Duration() int {
	return e.endMinutes() - e.startMinutes()
}

func (e Entry) startMinutes() int {
	m, _ := timeutil.ParseClock(e.StartTime)
	return m
}

func (e Entry) endMinutes() int {
	m, _ := timeutil.ParseClock(e.EndTime)
	return m
}

// Snapshot is the persisted journal structure: date key -> ordered entries.
type Snapshot map[string][]Entry
