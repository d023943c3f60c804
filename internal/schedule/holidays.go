package schedule

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/work-journal/pkg/dateutil"
	"go.uber.org/zap"
)

// LoadHolidayFile reads holiday dates from a local text file.
// Format: one date per line, "YYYY-MM-DD [note]"; blank lines and lines
// starting with # are ignored. Malformed lines are logged and skipped.
func LoadHolidayFile(filePath string, logger *zap.Logger) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	var holidays []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Note after the date is informational only
		dateStr, _, _ := strings.Cut(line, " ")

		date, err := time.Parse(dateutil.KeyLayout, dateStr)
		if err != nil {
			logger.Warn("Failed to parse holiday date",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		holidays = append(holidays, dateutil.Key(date))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	logger.Info("Holiday file loaded",
		zap.String("file", filePath),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}
