package bootstrap

import (
	"context"
	"fmt"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/repositories"
	"github.com/ArowuTest/lotto-tracker/internal/repositories/csvstore"
	mongorepo "github.com/ArowuTest/lotto-tracker/internal/repositories/mongodb"
	"github.com/ArowuTest/lotto-tracker/internal/services"
	"github.com/ArowuTest/lotto-tracker/pkg/dhlottery"
	"github.com/ArowuTest/lotto-tracker/pkg/mongodb"
	"golang.org/x/exp/slog"
)

// OpenRecordRepository returns the history store selected by cfg.Store.Backend.
// The returned close function must be called when the session ends.
func OpenRecordRepository(ctx context.Context, cfg *config.Config) (repositories.DrawRecordRepository, func(context.Context) error, error) {
	switch cfg.Store.Backend {
	case "", config.BackendCSV:
		slog.Info("Using CSV history store", "path", cfg.Store.Path)
		return csvstore.NewRecordStore(cfg.Store.Path), func(context.Context) error { return nil }, nil
	case config.BackendMongoDB:
		client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		slog.Info("Using MongoDB history store", "database", cfg.MongoDB.Database)
		return mongorepo.NewDrawRecordRepository(client.Database(cfg.MongoDB.Database)), client.Disconnect, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// NewDrawFetcher builds the fetcher from the lottery configuration
func NewDrawFetcher(cfg *config.Config) *services.DrawFetcher {
	client := dhlottery.NewClient(cfg.Lottery.BaseURL, cfg.Lottery.Timeout)
	return services.NewDrawFetcher(client, cfg.Lottery.SeedRound, cfg.Lottery.MaxProbes)
}
