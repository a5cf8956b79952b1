package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_OpensAndCloses(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "meetings.db"))
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestNew_UnreachablePathFails(t *testing.T) {
	// The parent directory does not exist, so the PRAGMA (the first real
	// statement against the file) fails and New must error out cleanly.
	_, err := New(filepath.Join(t.TempDir(), "missing", "sub", "meetings.db"))
	require.Error(t, err)
}
