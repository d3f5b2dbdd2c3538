package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySourceDir indicates a missing source directory setting
	ErrEmptySourceDir = errors.New("empty source directory")

	// ErrEmptyOutputDir indicates a missing output directory setting
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrEmptyPatterns indicates no source document patterns configured
	ErrEmptyPatterns = errors.New("empty source patterns")

	// ErrInvalidStrategy indicates an unsupported naming strategy
	ErrInvalidStrategy = errors.New("invalid naming strategy")

	// ErrInvalidMaxKeywords indicates an out-of-range keyword count
	ErrInvalidMaxKeywords = errors.New("invalid max keywords")

	// ErrInvalidWorkers indicates an invalid worker count
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}
	if err := validateNaming(&cfg.Naming); err != nil {
		errs = append(errs, err)
	}
	if err := validateBatch(&cfg.Batch); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(paths *PathsConfig) error {
	if strings.TrimSpace(paths.SourceDir) == "" {
		return ErrEmptySourceDir
	}
	if strings.TrimSpace(paths.OutputDir) == "" {
		return ErrEmptyOutputDir
	}
	if len(paths.Patterns) == 0 {
		return ErrEmptyPatterns
	}
	return nil
}

func validateNaming(naming *NamingConfig) error {
	switch naming.Strategy {
	case "auto", "statistical", "heuristic":
	default:
		return fmt.Errorf("%w: %q (must be auto, statistical or heuristic)", ErrInvalidStrategy, naming.Strategy)
	}
	if naming.MaxKeywords < 1 || naming.MaxKeywords > 8 {
		return fmt.Errorf("%w: %d (must be 1-8)", ErrInvalidMaxKeywords, naming.MaxKeywords)
	}
	return nil
}

func validateBatch(batch *BatchConfig) error {
	if batch.Workers < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidWorkers, batch.Workers)
	}
	return nil
}

// joinErrors combines multiple validation errors into one.
func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(msgs, "; "))
}
