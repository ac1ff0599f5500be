package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissingBlob(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("SavedChecklistItems")
	assert.ErrorIs(t, err, ErrNoBlob)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("SavedCategories", []byte(`[{"id":"x"}]`)))
	got, err := s.Get("SavedCategories")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"x"}]`), got)
}

func TestSetReplacesExistingBlob(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", []byte("one")))
	require.NoError(t, s.Set("k", []byte("two")))

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("k", []byte("v")))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"))

	_, err := s.Get("k")
	assert.ErrorIs(t, err, ErrNoBlob)
}

func TestBlobsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("persisted")))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)

	// The database file lives inside the data directory.
	_, err = os.Stat(filepath.Join(dir, DBFileName))
	assert.NoError(t, err)
}

func TestOperationsAfterCloseReturnErrors(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// A straggling debounced write must get an error back, never panic.
	assert.Error(t, s.Set("k", []byte("late")))
	_, err = s.Get("k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoBlob)
}

func TestCloseIsIdempotent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
