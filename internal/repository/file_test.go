package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/streak-guardian/internal/models"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "streak-history.json"))

	record := store.Load(context.Background())

	require.NotNil(t, record)
	assert.Empty(t, record.DailyEntries)
	assert.Nil(t, record.LastUpdatedAt)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streak-history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	record := NewFileStore(path).Load(context.Background())

	require.NotNil(t, record)
	assert.Empty(t, record.DailyEntries)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "streak-history.json")
	store := NewFileStore(path)

	record := NewEmptyRecord()
	Append(record, models.DailyEntry{
		Date:            "2025-03-15",
		StreakDays:      24,
		AverageWPM:      83,
		AverageAccuracy: 96.31,
		TotalTests:      1543,
	}, testNow)

	require.NoError(t, store.Save(ctx, record))

	loaded := store.Load(ctx)
	require.Len(t, loaded.DailyEntries, 1)
	assert.Equal(t, record.DailyEntries[0], loaded.DailyEntries[0])
	require.NotNil(t, loaded.LastUpdatedAt)
	assert.True(t, loaded.LastUpdatedAt.Equal(testNow))
}

func TestFileStore_SaveIsDeterministic(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	record := NewEmptyRecord()
	Append(record, models.DailyEntry{Date: "2025-03-15", StreakDays: 24}, testNow)

	first := NewFileStore(filepath.Join(dir, "a.json"))
	second := NewFileStore(filepath.Join(dir, "b.json"))
	require.NoError(t, first.Save(ctx, record))
	require.NoError(t, second.Save(ctx, record))

	dataA, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	dataB, err := os.ReadFile(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, dataA, dataB)
}

func TestFileStore_SaveFailsOnUnwritablePath(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing", "deep", "streak-history.json"))

	err := store.Save(context.Background(), NewEmptyRecord())

	var persistErr *PersistError
	require.ErrorAs(t, err, &persistErr)
}
