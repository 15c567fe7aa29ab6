package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ArowuTest/lotto-tracker/internal/models"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure TrackerService implements DrawTracker
var _ DrawTracker = (*TrackerService)(nil)

// TrackerService owns the session's draw history and runs the update pipeline
type TrackerService struct {
	mu      sync.Mutex
	repo    repositories.DrawRecordRepository
	fetcher LatestDrawFetcher
	records []models.DrawRecord
	loaded  bool
}

// NewTrackerService creates a new TrackerService
func NewTrackerService(repo repositories.DrawRecordRepository, fetcher LatestDrawFetcher) *TrackerService {
	return &TrackerService{
		repo:    repo,
		fetcher: fetcher,
	}
}

// LoadHistory replaces the in-memory history with what the repository holds
func (s *TrackerService) LoadHistory(ctx context.Context) ([]models.DrawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return cloneRecords(s.records), nil
}

func (s *TrackerService) loadLocked(ctx context.Context) error {
	records, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("Failed to load draw history", "error", err)
		return fmt.Errorf("failed to load draw history: %w", err)
	}
	s.records = records
	s.loaded = true
	slog.Info("Draw history loaded", "records", len(records))
	return nil
}

// Records returns a copy of the current history
func (s *TrackerService) Records() []models.DrawRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records)
}

// TriggerUpdate runs fetch, evaluate, append and persist. The history is only
// replaced after the save succeeds, so a failure at any step leaves it untouched.
// The lock is held for the load and the append and save, never across the remote lookup.
func (s *TrackerService) TriggerUpdate(ctx context.Context, fixedSets []models.FixedSet) (*models.UpdateResult, []models.DrawRecord, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", models.ErrUpdateFailed, err)
	}

	draw, err := s.fetcher.FetchLatest(ctx)
	if err != nil {
		slog.Error("Update aborted: fetch failed", "error", err)
		return nil, nil, fmt.Errorf("%w: %w", models.ErrUpdateFailed, err)
	}

	results := Evaluate(fixedSets, draw.Numbers, draw.Bonus)
	summary := Summary(results)
	record := models.NewDrawRecord(draw, summary)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := AppendRecord(s.records, record)
	if err := s.repo.Save(ctx, next); err != nil {
		slog.Error("Update aborted: save failed", "error", err, "round", draw.Round)
		return nil, nil, fmt.Errorf("%w: failed to save draw history: %w", models.ErrUpdateFailed, err)
	}
	s.records = next

	slog.Info("Draw history updated", "round", draw.Round, "fixedSets", len(fixedSets), "summary", summary)
	return &models.UpdateResult{
		Record:  record,
		Results: results,
		Summary: summary,
	}, cloneRecords(next), nil
}

func (s *TrackerService) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

// Summary joins evaluation results into the outcome text stored with a record
func Summary(results []string) string {
	return strings.Join(results, ", ")
}

// AppendRecord returns a new history with rec at the end. records itself is not modified.
func AppendRecord(records []models.DrawRecord, rec models.DrawRecord) []models.DrawRecord {
	next := make([]models.DrawRecord, len(records), len(records)+1)
	copy(next, records)
	return append(next, rec)
}

func cloneRecords(records []models.DrawRecord) []models.DrawRecord {
	out := make([]models.DrawRecord, len(records))
	copy(out, records)
	return out
}
