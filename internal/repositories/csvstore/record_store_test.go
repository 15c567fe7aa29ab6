package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/lotto-tracker/internal/models"
)

func TestRecordStore_LoadMissingFile(t *testing.T) {
	store := NewRecordStore(filepath.Join(t.TempDir(), "lotto_history.csv"))

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRecordStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(filepath.Join(t.TempDir(), "lotto_history.csv"))

	want := []models.DrawRecord{
		{Round: 1163, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: models.NoWinOutcome},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// save(load()) then load() again is stable
	require.NoError(t, store.Save(ctx, got))
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestRecordStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(filepath.Join(t.TempDir(), "lotto_history.csv"))

	first := []models.DrawRecord{
		{Round: 1, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: "a"},
		{Round: 2, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: "b"},
	}
	second := []models.DrawRecord{
		{Round: 3, Numbers: [6]int{10, 11, 12, 13, 14, 15}, Bonus: 16, Outcome: "c"},
	}
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRecordStore_SaveKeepsDuplicateRounds(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(filepath.Join(t.TempDir(), "lotto_history.csv"))

	rec := models.DrawRecord{Round: 1163, Numbers: [6]int{1, 2, 3, 4, 5, 6}, Bonus: 7, Outcome: models.NoWinOutcome}
	require.NoError(t, store.Save(ctx, []models.DrawRecord{rec, rec}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecordStore_SaveCreatesDirectoryAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	store := NewRecordStore(filepath.Join(dir, "history.csv"))

	require.NoError(t, store.Save(context.Background(), []models.DrawRecord{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.csv", entries[0].Name())
}

func TestRecordStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lotto_history.csv")
	require.NoError(t, os.WriteFile(path, []byte("round,bonus\n1,2\n"), 0o644))

	_, err := NewRecordStore(path).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrParse)
}
