package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitymeta/wikiparse/internal/config"
)

// Test Plan for Batch:
// - Processes every discovered document and writes its file set
// - Rerun on unchanged input skips every document
// - Force reprocesses unchanged documents
// - A missing source directory fails the batch, not the process
// - Parallel workers produce the same outputs as a single worker

func batchConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(t.TempDir(), "source")
	cfg.Paths.OutputDir = filepath.Join(t.TempDir(), "output")
	cfg.Naming.Strategy = "heuristic"
	require.NoError(t, os.MkdirAll(cfg.Paths.SourceDir, 0755))
	return cfg
}

func writeDoc(t *testing.T, cfg *config.Config, version, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.SourceDir, version+".txt"), []byte(body), 0644))
}

const batchDoc = `=== Light ===
|meaning=Amount of light emitted
|type=int

=== Fire ===
|meaning=Is on fire
|type=Boolean
`

func TestBatch_Process(t *testing.T) {
	t.Parallel()

	cfg := batchConfig(t)
	writeDoc(t, cfg, "1.21.8", batchDoc)
	writeDoc(t, cfg, "1.21.9", batchDoc)

	b, err := NewBatch(cfg, nil)
	require.NoError(t, err)

	stats, err := b.Process(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 4, stats.TotalRecords)

	for _, version := range []string{"1.21.8", "1.21.9"} {
		_, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, version+".json"))
		assert.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(cfg.Paths.OutputDir, manifestFile))
	assert.NoError(t, err)
}

func TestBatch_RerunSkipsUnchanged(t *testing.T) {
	t.Parallel()

	cfg := batchConfig(t)
	writeDoc(t, cfg, "1.21.8", batchDoc)

	b, err := NewBatch(cfg, nil)
	require.NoError(t, err)

	_, err = b.Process(context.Background())
	require.NoError(t, err)

	// Second batch over identical input skips the document.
	b2, err := NewBatch(cfg, nil)
	require.NoError(t, err)
	stats, err := b2.Process(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.TotalRecords)
}

func TestBatch_ForceReprocesses(t *testing.T) {
	t.Parallel()

	cfg := batchConfig(t)
	writeDoc(t, cfg, "1.21.8", batchDoc)

	b, err := NewBatch(cfg, nil)
	require.NoError(t, err)
	_, err = b.Process(context.Background())
	require.NoError(t, err)

	cfg.Batch.Force = true
	b2, err := NewBatch(cfg, nil)
	require.NoError(t, err)
	stats, err := b2.Process(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 2, stats.TotalRecords)
}

func TestBatch_MissingSourceDirFails(t *testing.T) {
	t.Parallel()

	cfg := batchConfig(t)
	require.NoError(t, os.RemoveAll(cfg.Paths.SourceDir))

	b, err := NewBatch(cfg, nil)
	require.NoError(t, err)

	_, err = b.Process(context.Background())
	assert.Error(t, err)
}

func TestBatch_ParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	serial := batchConfig(t)
	serial.Batch.Workers = 1
	parallel := batchConfig(t)
	parallel.Batch.Workers = 4

	for _, cfg := range []*config.Config{serial, parallel} {
		writeDoc(t, cfg, "1.21.4", batchDoc)
		writeDoc(t, cfg, "1.21.8", batchDoc)

		b, err := NewBatch(cfg, nil)
		require.NoError(t, err)
		_, err = b.Process(context.Background())
		require.NoError(t, err)
	}

	for _, version := range []string{"1.21.4", "1.21.8"} {
		a, err := os.ReadFile(filepath.Join(serial.Paths.OutputDir, version+".json"))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(parallel.Paths.OutputDir, version+".json"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
