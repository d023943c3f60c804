package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/username/work-journal/pkg/dateutil"
	"github.com/username/work-journal/pkg/timeutil"
	"go.uber.org/zap"
)

// Store holds the journal in memory and writes the whole snapshot through its
// Persistence on every mutation. It assumes a single synchronous caller.
type Store struct {
	persistence Persistence
	days        Snapshot
	logger      *zap.Logger
}

// Open creates a Store backed by the given persistence and loads the snapshot
func Open(persistence Persistence, logger *zap.Logger) (*Store, error) {
	snapshot, err := persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	if snapshot == nil {
		snapshot = Snapshot{}
	}

	return &Store{
		persistence: persistence,
		days:        snapshot,
		logger:      logger,
	}, nil
}

// Add validates and inserts an entry for the given date. The day's entries are
// kept sorted ascending by start time (stable for equal starts). On any
// validation error the store is left unchanged.
func (s *Store) Add(date time.Time, start, end, description string) error {
	startMin, err := timeutil.ParseClock(start)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}

	endMin, err := timeutil.ParseClock(end)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}

	if endMin <= startMin {
		return fmt.Errorf("%w (%s-%s)", ErrEndBeforeStart, start, end)
	}

	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}

	key := dateutil.Key(date)
	entries := append(s.days[key], Entry{
		StartTime:   start,
		EndTime:     end,
		Description: description,
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].startMinutes() < entries[j].startMinutes()
	})
	s.days[key] = entries

	s.logger.Info("Entry added",
		zap.String("date", key),
		zap.String("start", start),
		zap.String("end", end))

	return s.persist()
}

// Delete removes the entry at index from the given date. When the day's last
// entry is removed the date key is removed entirely.
func (s *Store) Delete(date time.Time, index int) error {
	key := dateutil.Key(date)

	entries, ok := s.days[key]
	if !ok {
		return fmt.Errorf("%w: no entries for %s", ErrNotFound, key)
	}
	if index < 0 || index >= len(entries) {
		return fmt.Errorf("%w: index %d out of range for %s", ErrNotFound, index, key)
	}

	entries = append(entries[:index], entries[index+1:]...)
	if len(entries) == 0 {
		delete(s.days, key)
	} else {
		s.days[key] = entries
	}

	s.logger.Info("Entry deleted",
		zap.String("date", key),
		zap.Int("index", index))

	return s.persist()
}

// ClearDay removes all entries for the given date (no-op if there are none)
func (s *Store) ClearDay(date time.Time) error {
	key := dateutil.Key(date)
	delete(s.days, key)

	s.logger.Info("Day cleared", zap.String("date", key))

	return s.persist()
}

// Entries returns the ordered entry list for the given date (nil if none)
func (s *Store) Entries(date time.Time) []Entry {
	return s.days[dateutil.Key(date)]
}

// DayTotal returns the total logged minutes for the given date
func (s *Store) DayTotal(date time.Time) int {
	total := 0
	for _, e := range s.days[dateutil.Key(date)] {
		total += e.Duration()
	}
	return total
}

// WeekTotal returns the total logged minutes for the 7 days starting at weekStart
func (s *Store) WeekTotal(weekStart time.Time) int {
	total := 0
	for i := 0; i < 7; i++ {
		total += s.DayTotal(weekStart.AddDate(0, 0, i))
	}
	return total
}

// MonthTotal returns the total logged minutes for the given month
func (s *Store) MonthTotal(year int, month time.Month) int {
	total := 0
	for key, entries := range s.days {
		date, err := dateutil.ParseKey(key)
		if err != nil {
			s.logger.Warn("Skipping malformed date key", zap.String("key", key))
			continue
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		for _, e := range entries {
			total += e.Duration()
		}
	}
	return total
}

func (s *Store) persist() error {
	if err := s.persistence.Save(s.days); err != nil {
		return fmt.Errorf("failed to persist journal: %w", err)
	}
	return nil
}
