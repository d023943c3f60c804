package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/work-journal/internal/journal"
	"github.com/username/work-journal/pkg/dateutil"
	"github.com/username/work-journal/pkg/timeutil"
)

// localeDateLayout renders dates the way the report consumer expects (M/D/YYYY)
const localeDateLayout = "1/2/2006"

// Day is one day's slice of a weekly report
type Day struct {
	Date         time.Time
	Entries      []journal.Entry
	TotalMinutes int
}

// Weekly holds a full week of entries and totals, Monday through Sunday.
// It is a pure derivation from the store; rendering is layered on top.
type Weekly struct {
	WeekStart    time.Time
	WeekEnd      time.Time
	Days         [7]Day
	TotalMinutes int
}

// Generate builds the weekly report for the 7 days starting at weekStart
func Generate(weekStart time.Time, store *journal.Store) *Weekly {
	w := &Weekly{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		day := Day{
			Date:         date,
			Entries:      store.Entries(date),
			TotalMinutes: store.DayTotal(date),
		}
		w.Days[i] = day
		w.TotalMinutes += day.TotalMinutes
	}

	return w
}

// Text renders the report as flat text
func (w *Weekly) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weekly Report: %s - %s\n",
		w.WeekStart.Format(localeDateLayout),
		w.WeekEnd.Format(localeDateLayout))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, day := range w.Days {
		fmt.Fprintf(&b, "%s, %s\n", day.Date.Weekday(), day.Date.Format(localeDateLayout))
		b.WriteString(strings.Repeat("-", 30) + "\n")

		if len(day.Entries) == 0 {
			b.WriteString("No work logged\n\n")
			continue
		}

		for _, e := range day.Entries {
			fmt.Fprintf(&b, "%s - %s (%s): %s\n",
				e.StartTime, e.EndTime, timeutil.FormatMinutes(e.Duration()), e.Description)
		}
		fmt.Fprintf(&b, "Day Total: %s\n\n", timeutil.FormatMinutes(day.TotalMinutes))
	}

	b.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&b, "Week Total: %s\n", timeutil.FormatMinutes(w.TotalMinutes))

	return b.String()
}

// DefaultExportName returns the conventional export file name for a week
func DefaultExportName(weekStart time.Time) string {
	return fmt.Sprintf("weekly-report-%s.txt", dateutil.Key(weekStart))
}
