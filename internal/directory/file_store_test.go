package directory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"centring-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "directory.json"))

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "directory.json"))
	ctx := context.Background()

	in := []models.DirectoryEntry{
		{Name: "Raj", PhoneNo: "9876543210"},
		{Name: "Kumar", PhoneNo: "8765432109"},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStoreSaveNilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(context.Background(), nil))

	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(blob))
}

func TestFileStoreCorruptBlobIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewFileStore(path)
	_, err := store.Load(context.Background())

	var pe *ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
}
