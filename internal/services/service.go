package services

import (
	"context"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

// DrawTracker defines the operations the presentation layer drives
type DrawTracker interface {
	// LoadHistory reads the stored history into the session
	LoadHistory(ctx context.Context) ([]models.DrawRecord, error)

	// Records returns a copy of the current history
	Records() []models.DrawRecord

	// TriggerUpdate fetches the latest draw, evaluates fixedSets against it and appends the record
	TriggerUpdate(ctx context.Context, fixedSets []models.FixedSet) (*models.UpdateResult, []models.DrawRecord, error)
}

// LatestDrawFetcher resolves the most recent drawn round
type LatestDrawFetcher interface {
	FetchLatest(ctx context.Context) (models.DrawResult, error)
}

// AuthService defines the interface for operator authentication
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
