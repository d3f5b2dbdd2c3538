package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewLoaderWithFile creates a loader that reads one explicit config file
// instead of searching .wikiparse/ under a root directory. A missing explicit
// file is an error, unlike the searched default.
func NewLoaderWithFile(configFile string) Loader {
	return &loader{
		configFile: configFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (WIKIPARSE_*)
// 2. Config file (.wikiparse/config.yml or .wikiparse/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		configDir := filepath.Join(l.rootDir, ".wikiparse")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("WIKIPARSE")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., WIKIPARSE_NAMING_STRATEGY)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("paths.source_dir")
	v.BindEnv("paths.output_dir")
	v.BindEnv("naming.strategy")
	v.BindEnv("naming.max_keywords")
	v.BindEnv("batch.workers")
	v.BindEnv("batch.force")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing searched config file is acceptable - we'll use defaults
		// + env vars. An explicitly named file surfaces any read error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || l.configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.source_dir", defaults.Paths.SourceDir)
	v.SetDefault("paths.output_dir", defaults.Paths.OutputDir)
	v.SetDefault("paths.patterns", defaults.Paths.Patterns)

	v.SetDefault("naming.strategy", defaults.Naming.Strategy)
	v.SetDefault("naming.max_keywords", defaults.Naming.MaxKeywords)
	v.SetDefault("naming.extra_stopwords", defaults.Naming.ExtraStopwords)

	v.SetDefault("batch.workers", defaults.Batch.Workers)
	v.SetDefault("batch.force", defaults.Batch.Force)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}

// LoadConfigFromFile loads configuration from an explicit config file path.
func LoadConfigFromFile(path string) (*Config, error) {
	return NewLoaderWithFile(path).Load()
}
