package embedding

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVectors(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.vec")
	require.NoError(t, os.WriteFile(path, []byte(sampleVectors), 0644))
	return path
}

func TestStoreCachesParsedFile(t *testing.T) {
	path := writeVectors(t)

	store, err := NewStore(2)
	require.NoError(t, err)

	first, err := store.Open(path, 0)
	require.NoError(t, err)

	second, err := store.Open(path, 0)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestStoreSeparatesLimits(t *testing.T) {
	path := writeVectors(t)

	store, err := NewStore(4)
	require.NoError(t, err)

	full, err := store.Open(path, 0)
	require.NoError(t, err)

	limited, err := store.Open(path, 2)
	require.NoError(t, err)

	assert.NotSame(t, full, limited)
	assert.Equal(t, 4, full.Len())
	assert.Equal(t, 2, limited.Len())
	assert.Equal(t, 2, store.Len())
}

func TestStoreEvictsOldest(t *testing.T) {
	path := writeVectors(t)

	store, err := NewStore(1)
	require.NoError(t, err)

	_, err = store.Open(path, 1)
	require.NoError(t, err)
	_, err = store.Open(path, 2)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
}

func TestStoreDefaultCapacity(t *testing.T) {
	store, err := NewStore(0)
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestStorePropagatesOpenError(t *testing.T) {
	store, err := NewStore(2)
	require.NoError(t, err)

	_, err = store.Open(filepath.Join(t.TempDir(), "missing.vec"), 0)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}
