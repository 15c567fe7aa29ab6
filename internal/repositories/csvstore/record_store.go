package csvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
	"github.com/ArowuTest/lotto-tracker/internal/utils"
)

var _ repositories.DrawRecordRepository = (*RecordStore)(nil)

// RecordStore keeps the draw history in a single CSV file
type RecordStore struct {
	path string
}

// NewRecordStore creates a store backed by path. The file need not exist yet.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// Path returns the backing file path
func (s *RecordStore) Path() string {
	return s.path
}

// Load reads the history file. A missing file is an empty history.
func (s *RecordStore) Load(ctx context.Context) ([]models.DrawRecord, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.DrawRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	records, err := utils.ReadDrawRecords(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

// Save overwrites the history file with records. The new content is written to a
// temporary file next to it and renamed into place.
func (s *RecordStore) Save(ctx context.Context, records []models.DrawRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := utils.WriteDrawRecords(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close history: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set history permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
