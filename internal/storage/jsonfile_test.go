package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
)

func TestFileStore_LoadMissingFileReturnsEmptyState(t *testing.T) {
	store, err := newFileStore(filepath.Join(t.TempDir(), "meetings.json"))
	require.NoError(t, err)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.RandomTours)
	assert.Empty(t, state.History)
	assert.Zero(t, state.CycleCount)
}

func TestFileStore_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meetings.json")
	store, err := newFileStore(path)
	require.NoError(t, err)

	state := entity.NewState()
	state.RandomTours["2025-9"] = "Marc"
	state.RandomTours["2026-9"] = "Tanguy"
	require.NoError(t, store.Save(state))

	// No leftover temp file after an atomic save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, state.RandomTours, loaded.RandomTours)
	assert.Empty(t, loaded.History)
	assert.Zero(t, loaded.CycleCount)
}

func TestFileStore_LoadExistingLegacyFile(t *testing.T) {
	// The exact shape written by earlier deployments.
	content := `{"history": {}, "random_tours": {"2025-9": "Marc"}, "cycle_count": 0}`
	path := filepath.Join(t.TempDir(), "meetings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store, err := newFileStore(path)
	require.NoError(t, err)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Marc", state.RandomTours["2025-9"])
}

func TestFileStore_LoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meetings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := newFileStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	require.Error(t, err)
}

func TestFileStore_LoadNullMapsAreNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meetings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"history": null, "random_tours": null, "cycle_count": 0}`), 0o600))

	store, err := newFileStore(path)
	require.NoError(t, err)

	state, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, state.RandomTours)
	require.NotNil(t, state.History)
}

func TestFileStore_EmptyPathRejected(t *testing.T) {
	_, err := newFileStore("  ")
	require.Error(t, err)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "postgres"})
	require.Error(t, err)
}

func TestOpen_DefaultsToJSON(t *testing.T) {
	store, err := Open(Config{DataFile: filepath.Join(t.TempDir(), "meetings.json")})
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
