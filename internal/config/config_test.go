package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for config:
// - Default returns a valid configuration
// - Loader falls back to defaults when no config file exists
// - Config file values override defaults
// - An explicitly named config file is read from its own path
// - A missing explicit config file is an error
// - Environment variables override the config file
// - Validation rejects bad strategies, worker counts and empty paths

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "source", cfg.Paths.SourceDir)
	assert.Equal(t, "output", cfg.Paths.OutputDir)
	assert.Equal(t, "auto", cfg.Naming.Strategy)
	assert.Equal(t, 3, cfg.Naming.MaxKeywords)
	assert.Equal(t, 4, cfg.Batch.Workers)
}

func TestLoader_NoConfigFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_ConfigFileOverridesDefaults(t *testing.T) {
	t.Parallel()

	rootDir := t.TempDir()
	configDir := filepath.Join(rootDir, ".wikiparse")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	configYAML := `
paths:
  source_dir: dumps
naming:
  strategy: heuristic
  max_keywords: 2
batch:
  workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configYAML), 0644))

	cfg, err := NewLoader(rootDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "dumps", cfg.Paths.SourceDir)
	assert.Equal(t, "output", cfg.Paths.OutputDir) // untouched default
	assert.Equal(t, "heuristic", cfg.Naming.Strategy)
	assert.Equal(t, 2, cfg.Naming.MaxKeywords)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoader_ExplicitConfigFile(t *testing.T) {
	t.Parallel()

	// The file lives outside any .wikiparse/ directory; only the explicit
	// path should find it.
	path := filepath.Join(t.TempDir(), "custom.yml")
	configYAML := `
paths:
  source_dir: dumps
naming:
  strategy: heuristic
`
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dumps", cfg.Paths.SourceDir)
	assert.Equal(t, "heuristic", cfg.Naming.Strategy)
}

func TestLoader_MissingExplicitConfigFileFails(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	t.Setenv("WIKIPARSE_NAMING_STRATEGY", "statistical")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, "statistical", cfg.Naming.Strategy)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty source dir", func(c *Config) { c.Paths.SourceDir = "" }},
		{"empty output dir", func(c *Config) { c.Paths.OutputDir = " " }},
		{"no patterns", func(c *Config) { c.Paths.Patterns = nil }},
		{"bad strategy", func(c *Config) { c.Naming.Strategy = "neural" }},
		{"zero keywords", func(c *Config) { c.Naming.MaxKeywords = 0 }},
		{"too many keywords", func(c *Config) { c.Naming.MaxKeywords = 20 }},
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
