package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)
	return s
}

func TestStoreStartsEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.Empty(t, s.List())
}

func TestRecordAssignsID(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	entry := s.Record(Entry{Name: "Acme", OutputDir: "/tmp/out", Success: true})

	require.NotEmpty(t, entry.ID)
	require.False(t, entry.GeneratedAt.IsZero())

	got, err := s.Get(entry.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	entry := s.Record(Entry{
		Name:       "Acme",
		OutputDir:  "/tmp/out",
		Platforms:  []string{"ios", "web"},
		AssetCount: 42,
		Success:    true,
	})
	require.NoError(t, s.Save())

	reloaded, err := NewStore(path)
	require.NoError(t, err)

	entries := reloaded.List()
	require.Len(t, entries, 1)
	require.Equal(t, entry.ID, entries[0].ID)
	require.Equal(t, 42, entries[0].AssetCount)
	require.Equal(t, []string{"ios", "web"}, entries[0].Platforms)
}

func TestSaveIsAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	s.Record(Entry{Name: "Acme"})
	require.NoError(t, s.Save())

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	entry := s.Record(Entry{Name: "Acme"})

	require.NoError(t, s.Remove(entry.ID))
	require.Empty(t, s.List())
	require.Error(t, s.Remove(entry.ID))
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	_, err := s.Get("nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestNewStoreRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path)
	require.Error(t, err)
}
