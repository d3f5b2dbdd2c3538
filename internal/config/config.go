package config

// Config represents the complete wikiparse configuration.
// It can be loaded from .wikiparse/config.yml with environment variable
// overrides.
type Config struct {
	Paths  PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Naming NamingConfig `yaml:"naming" mapstructure:"naming"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
}

// PathsConfig defines where source documents live and where output goes.
type PathsConfig struct {
	SourceDir string   `yaml:"source_dir" mapstructure:"source_dir"` // directory holding raw markup dumps
	OutputDir string   `yaml:"output_dir" mapstructure:"output_dir"` // directory receiving per-version output files
	Patterns  []string `yaml:"patterns" mapstructure:"patterns"`     // glob patterns selecting source documents
}

// NamingConfig tunes name synthesis.
type NamingConfig struct {
	Strategy       string   `yaml:"strategy" mapstructure:"strategy"`               // "auto", "statistical" or "heuristic"
	MaxKeywords    int      `yaml:"max_keywords" mapstructure:"max_keywords"`       // tokens kept per identifier
	ExtraStopwords []string `yaml:"extra_stopwords" mapstructure:"extra_stopwords"` // additions to the built-in stopword set
}

// BatchConfig controls how a batch of documents is processed.
type BatchConfig struct {
	Workers int  `yaml:"workers" mapstructure:"workers"` // parallel document pipelines
	Force   bool `yaml:"force" mapstructure:"force"`     // reprocess documents with unchanged checksums
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			SourceDir: "source",
			OutputDir: "output",
			Patterns:  []string{"*.txt"},
		},
		Naming: NamingConfig{
			Strategy:    "auto",
			MaxKeywords: 3,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}
