package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Persistence stores and retrieves whole journal snapshots. Every mutation of
// the store writes the full snapshot (last write wins, no partial updates).
type Persistence interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// FilePersistence implements Persistence using a single JSON file
type FilePersistence struct {
	path   string
	logger *zap.Logger
}

// NewFilePersistence creates a new FilePersistence instance
func NewFilePersistence(path string, logger *zap.Logger) *FilePersistence {
	return &FilePersistence{
		path:   path,
		logger: logger,
	}
}

// Load loads the journal snapshot from file
func (fp *FilePersistence) Load() (Snapshot, error) {
	data, err := os.ReadFile(fp.path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first save
			return Snapshot{}, nil
		}
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse journal file: %w", err)
	}

	fp.logger.Debug("Journal snapshot loaded",
		zap.String("file", fp.path),
		zap.Int("days", len(snapshot)))

	return snapshot, nil
}

// Save saves the journal snapshot to file
func (fp *FilePersistence) Save(snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	if dir := filepath.Dir(fp.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	if err := os.WriteFile(fp.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write journal file: %w", err)
	}

	fp.logger.Debug("Journal snapshot saved",
		zap.String("file", fp.path),
		zap.Int("days", len(snapshot)))

	return nil
}
