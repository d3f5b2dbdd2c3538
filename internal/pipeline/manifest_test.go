package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Manifest:
// - Missing manifest loads as fresh
// - Corrupt manifest loads as fresh instead of failing
// - Save then Load round-trips source entries
// - Each load gets a new run ID
// - Unchanged matches only identical checksums

func TestManifest_MissingLoadsFresh(t *testing.T) {
	t.Parallel()

	m := LoadManifest(t.TempDir())
	assert.NotEmpty(t, m.RunID)
	assert.Empty(t, m.Sources)
}

func TestManifest_CorruptLoadsFresh(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte("{not json"), 0644))

	m := LoadManifest(dir)
	assert.Empty(t, m.Sources)
}

func TestManifest_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	m := NewManifest()
	m.Record("1.21.8", Checksum([]byte("doc body")), 42)
	require.NoError(t, m.Save(dir))

	loaded := LoadManifest(dir)
	entry, ok := loaded.Sources["1.21.8"]
	require.True(t, ok)
	assert.Equal(t, Checksum([]byte("doc body")), entry.Checksum)
	assert.Equal(t, 42, entry.Records)

	// Fresh run ID on every load.
	assert.NotEqual(t, m.RunID, loaded.RunID)
}

func TestManifest_Unchanged(t *testing.T) {
	t.Parallel()

	m := NewManifest()
	sum := Checksum([]byte("body"))
	m.Record("1.21.8", sum, 3)

	assert.True(t, m.Unchanged("1.21.8", sum))
	assert.False(t, m.Unchanged("1.21.8", Checksum([]byte("different"))))
	assert.False(t, m.Unchanged("1.21.9", sum))
}
