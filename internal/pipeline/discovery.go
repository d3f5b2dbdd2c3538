package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// SourceDoc is one discovered source document. Version is the file stem
// (e.g. "1.21.8" from "1.21.8.txt") and tags every output file.
type SourceDoc struct {
	Path    string
	Version string
}

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// SourceDiscovery finds source documents in a directory by glob patterns.
type SourceDiscovery struct {
	sourceDir string
	patterns  []compiledPattern
}

// NewSourceDiscovery compiles the patterns up front so a bad pattern fails
// the run before any document is touched.
func NewSourceDiscovery(sourceDir string, patterns []string) (*SourceDiscovery, error) {
	sd := &SourceDiscovery{sourceDir: sourceDir}

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		sd.patterns = append(sd.patterns, compiledPattern{pattern: pattern, glob: g})
	}

	return sd, nil
}

// Discover returns matching documents sorted by version so batch order is
// stable across runs.
func (sd *SourceDiscovery) Discover() ([]SourceDoc, error) {
	entries, err := os.ReadDir(sd.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	var docs []SourceDoc
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !sd.Matches(entry.Name()) {
			continue
		}
		name := entry.Name()
		docs = append(docs, SourceDoc{
			Path:    filepath.Join(sd.sourceDir, name),
			Version: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Version < docs[j].Version
	})
	return docs, nil
}

// Matches reports whether a file name matches any source pattern.
func (sd *SourceDiscovery) Matches(name string) bool {
	for _, cp := range sd.patterns {
		if cp.glob.Match(name) {
			return true
		}
	}
	return false
}
