package repositories

import (
	"context"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

// DrawRecordRepository persists the draw history as a whole.
// Load on a store that was never saved returns an empty slice and no error.
// Save replaces everything previously stored with records, keeping their order.
// Implementations assume a single writer.
type DrawRecordRepository interface {
	Load(ctx context.Context) ([]models.DrawRecord, error)
	Save(ctx context.Context, records []models.DrawRecord) error
}
