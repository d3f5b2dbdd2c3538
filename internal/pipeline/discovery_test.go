package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for SourceDiscovery:
// - Matching files are discovered with file-stem version tags
// - Non-matching files and subdirectories are ignored
// - Results are sorted by version
// - Invalid patterns fail construction

func writeSourceFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("=== E ===\n|meaning=x\n|type=int\n"), 0644))
}

func TestSourceDiscovery_Discover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSourceFile(t, dir, "1.21.8.txt")
	writeSourceFile(t, dir, "1.21.4.txt")
	writeSourceFile(t, dir, "notes.md")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive"), 0755))

	sd, err := NewSourceDiscovery(dir, []string{"*.txt"})
	require.NoError(t, err)

	docs, err := sd.Discover()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "1.21.4", docs[0].Version)
	assert.Equal(t, "1.21.8", docs[1].Version)
	assert.Equal(t, filepath.Join(dir, "1.21.8.txt"), docs[1].Path)
}

func TestSourceDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewSourceDiscovery(t.TempDir(), []string{"[bad"})
	assert.Error(t, err)
}

func TestSourceDiscovery_MissingDirectory(t *testing.T) {
	t.Parallel()

	sd, err := NewSourceDiscovery(filepath.Join(t.TempDir(), "nope"), []string{"*.txt"})
	require.NoError(t, err)

	_, err = sd.Discover()
	assert.Error(t, err)
}
