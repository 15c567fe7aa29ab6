package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/lotto-tracker/internal/config"
	"github.com/ArowuTest/lotto-tracker/internal/repositories/csvstore"
)

func TestOpenRecordRepository_CSV(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Backend = config.BackendCSV
	cfg.Store.Path = filepath.Join(t.TempDir(), "history.csv")

	repo, closeFn, err := OpenRecordRepository(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn(context.Background())

	store, ok := repo.(*csvstore.RecordStore)
	require.True(t, ok)
	assert.Equal(t, cfg.Store.Path, store.Path())
}

func TestOpenRecordRepository_UnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Backend = "redis"

	_, _, err := OpenRecordRepository(context.Background(), cfg)
	assert.Error(t, err)
}
