package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/entitymeta/wikiparse/internal/naming"
)

// Writer emits the per-version output file set. All files are written
// atomically (temp → rename) so a crashed run never leaves a half-written
// view behind. The render functions are pure views over the record slice;
// regenerating any file from the same records is idempotent.
type Writer struct {
	outputDir string
	tempDir   string
}

// NewWriter creates a writer rooted at outputDir.
func NewWriter(outputDir string) (*Writer, error) {
	tempDir := filepath.Join(outputDir, ".tmp")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean up stale temp files from a previous crashed run.
	if err := os.RemoveAll(tempDir); err != nil {
		return nil, fmt.Errorf("failed to clean temp directory: %w", err)
	}
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &Writer{
		outputDir: outputDir,
		tempDir:   tempDir,
	}, nil
}

// WriteAll writes the complete file set for one version:
// <v>.json, <v>-meanings.txt, <v>-meaning_to_name.txt,
// <v>-meaning_compare.txt and <v>-types.txt.
func (w *Writer) WriteAll(version string, records []EntityRecord) error {
	jsonData, err := RenderJSON(records)
	if err != nil {
		return fmt.Errorf("failed to render records: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{version + ".json", jsonData},
		{version + "-meanings.txt", []byte(RenderMeanings(records))},
		{version + "-meaning_to_name.txt", []byte(RenderMeaningToName(records))},
		{version + "-meaning_compare.txt", []byte(RenderCompareReport(records))},
		{version + "-types.txt", []byte(RenderTypes(records))},
	}

	for _, f := range files {
		if err := w.writeFile(f.name, f.data); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes data atomically under the output directory.
func (w *Writer) writeFile(filename string, data []byte) error {
	tempPath := filepath.Join(w.tempDir, filename)
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	finalPath := filepath.Join(w.outputDir, filename)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// RenderJSON renders records as an indented JSON array in ordinal order.
func RenderJSON(records []EntityRecord) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// RenderMeanings renders one meaning per line, ordinal order. Records without
// a meaning contribute an empty line so line counts stay aligned with the
// JSON array.
func RenderMeanings(records []EntityRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Meaning())
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderMeaningToName renders "meaning -> name" pairs, ordinal order.
func RenderMeaningToName(records []EntityRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Meaning())
		b.WriteString(" -> ")
		b.WriteString(r.Name)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderCompareReport renders the audit listing for records whose name was
// not derived statistically. This is the primary review surface for degraded
// or guessed names.
func RenderCompareReport(records []EntityRecord) string {
	var b strings.Builder
	for _, r := range records {
		if r.NameSource == naming.SourceStatistical {
			continue
		}
		b.WriteString(r.Meaning())
		b.WriteString(" -> ")
		b.WriteString(r.Name)
		b.WriteString(" [")
		b.WriteString(string(r.NameSource))
		b.WriteString("]\n")
	}
	return b.String()
}

// RenderTypes renders each distinct observed type once, first-seen order.
func RenderTypes(records []EntityRecord) string {
	seen := make(map[string]struct{})
	var b strings.Builder
	for _, r := range records {
		t := r.Type()
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.String()
}
