package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finquery/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderStartsEmpty(t *testing.T) {
	h := NewHolder(newTestStore(t))

	ds := h.Current()
	require.NotNil(t, ds)
	assert.Empty(t, ds.Accounts)
}

func TestHolderReloadSwapsSnapshot(t *testing.T) {
	s := newTestStore(t)
	h := NewHolder(s)

	require.NoError(t, s.Save(sampleDataset()))

	before := h.Current()
	reloaded, err := h.Reload()
	require.NoError(t, err)

	assert.Empty(t, before.Accounts, "old snapshot must stay intact")
	assert.Len(t, reloaded.Accounts, 1)
	assert.Same(t, reloaded, h.Current())
}

func TestHolderReloadErrorKeepsOldSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := NewDatasetStore(
		filepath.Join(dir, "dataset.yaml"),
		filepath.Join(dir, "categories.yaml"),
		&logging.MockLogger{},
	)
	h := NewHolder(s)

	require.NoError(t, s.Save(sampleDataset()))
	_, err := h.Reload()
	require.NoError(t, err)
	good := h.Current()

	// Corrupt the file; the holder must keep serving the last good snapshot.
	require.NoError(t, os.WriteFile(s.DataFile, []byte("accounts: [not, {valid"), 0644))
	_, err = h.Reload()
	require.Error(t, err)
	assert.Same(t, good, h.Current())
}
