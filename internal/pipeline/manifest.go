package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// manifestFile is the fixed name of the run manifest in the output directory.
const manifestFile = "manifest.json"

// Manifest records, per source document, the checksum and record count of the
// last successful run. A rerun skips documents whose checksum is unchanged
// unless forced; everything else about a run is stateless.
type Manifest struct {
	RunID       string                   `json:"run_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Sources     map[string]ManifestEntry `json:"sources"`
}

// ManifestEntry is the per-document state carried between runs.
type ManifestEntry struct {
	Checksum string `json:"checksum"`
	Records  int    `json:"records"`
}

// NewManifest returns an empty manifest with a fresh run ID.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Sources: make(map[string]ManifestEntry),
	}
}

// LoadManifest reads the manifest from outputDir. A missing file yields a
// fresh manifest, not an error; a corrupt one is replaced the same way since
// the worst case is reprocessing every document.
func LoadManifest(outputDir string) *Manifest {
	data, err := os.ReadFile(filepath.Join(outputDir, manifestFile))
	if err != nil {
		return NewManifest()
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return NewManifest()
	}
	if m.Sources == nil {
		m.Sources = make(map[string]ManifestEntry)
	}
	// Each run gets its own ID regardless of what was stored.
	m.RunID = uuid.NewString()
	return &m
}

// Save writes the manifest atomically to outputDir.
func (m *Manifest) Save(outputDir string) error {
	m.GeneratedAt = time.Now().UTC()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	tempPath := filepath.Join(outputDir, manifestFile+".tmp")
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	finalPath := filepath.Join(outputDir, manifestFile)
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename manifest: %w", err)
	}
	return nil
}

// Unchanged reports whether version was already processed from input with
// this exact checksum.
func (m *Manifest) Unchanged(version, checksum string) bool {
	entry, ok := m.Sources[version]
	return ok && entry.Checksum == checksum
}

// Record stores the outcome for version.
func (m *Manifest) Record(version, checksum string, records int) {
	m.Sources[version] = ManifestEntry{Checksum: checksum, Records: records}
}

// Checksum returns the hex sha256 of a source document's bytes.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
