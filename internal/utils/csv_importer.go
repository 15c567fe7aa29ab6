package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
)

// CSVImporter merges an external history CSV into a record repository
type CSVImporter struct {
	repo repositories.DrawRecordRepository
}

// ImportResult summarises an import run
type ImportResult struct {
	TotalRows         int `json:"totalRows"`
	Imported          int `json:"imported"`
	SkippedDuplicates int `json:"skippedDuplicates"`
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(repo repositories.DrawRecordRepository) *CSVImporter {
	return &CSVImporter{repo: repo}
}

// ImportDrawRecords appends the rows of filePath whose round is not already stored.
// Existing records are left as they are; nothing is saved if the file fails to parse.
func (i *CSVImporter) ImportDrawRecords(ctx context.Context, filePath string) (*ImportResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	incoming, err := ReadDrawRecords(file)
	if err != nil {
		return nil, err
	}

	existing, err := i.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing records: %w", err)
	}

	seen := make(map[int]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Round] = true
	}

	result := &ImportResult{TotalRows: len(incoming)}
	merged := make([]models.DrawRecord, len(existing), len(existing)+len(incoming))
	copy(merged, existing)
	for _, rec := range incoming {
		if seen[rec.Round] {
			result.SkippedDuplicates++
			continue
		}
		seen[rec.Round] = true
		merged = append(merged, rec)
		result.Imported++
	}

	if result.Imported == 0 {
		return result, nil
	}
	if err := i.repo.Save(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save imported records: %w", err)
	}
	return result, nil
}
