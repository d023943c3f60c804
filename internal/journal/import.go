package journal

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Bulk import line format: "<day> <start>-<end> <description>"
// Example: mon 9:00-17:00 Client call
var importLinePattern = regexp.MustCompile(
	`^(?i)(mon|tue|wed|thu|fri|sat|sun)\s+(\d{1,2}:\d{2})-(\d{1,2}:\d{2})\s+(.+)$`)

var dayOffsets = map[string]int{
	"mon": 0,
	"tue": 1,
	"wed": 2,
	"thu": 3,
	"fri": 4,
	"sat": 5,
	"sun": 6,
}

// ImportResult summarizes a bulk import batch
type ImportResult struct {
	Imported int
	Errors   []string
}

// BulkImport parses multi-line free text anchored to the week starting at
// weekStart (a Monday) and adds each parsed line as an entry. A malformed or
// rejected line produces a per-line error and is skipped; the batch never
// aborts. Line numbers count non-blank lines only.
func (s *Store) BulkImport(text string, weekStart time.Time) ImportResult {
	var result ImportResult

	lineNum := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lineNum++

		m := importLinePattern.FindStringSubmatch(line)
		if m == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: Invalid format", lineNum))
			continue
		}

		day := strings.ToLower(m[1])
		date := weekStart.AddDate(0, 0, dayOffsets[day])

		if err := s.Add(date, m[2], m[3], strings.TrimSpace(m[4])); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: %v", lineNum, err))
			continue
		}

		result.Imported++
	}

	s.logger.Info("Bulk import finished",
		zap.Int("imported", result.Imported),
		zap.Int("errors", len(result.Errors)))

	return result
}
