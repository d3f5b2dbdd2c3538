package pipeline

import (
	"fmt"
	"log"
	"regexp"

	"github.com/entitymeta/wikiparse/internal/config"
	"github.com/entitymeta/wikiparse/internal/naming"
	"github.com/entitymeta/wikiparse/internal/wikitext"
)

// Pipeline runs the full per-document pass: split → extract → synthesize →
// assemble. One Pipeline may process many documents; each Run owns a fresh
// name registry, so concurrent Runs on different documents are safe.
type Pipeline struct {
	ranker      naming.KeywordRanker
	maxKeywords int
}

// New builds a pipeline from configuration. Ranker selection happens exactly
// once here; if the statistical ranker is unavailable and the strategy allows
// degradation, that is logged once per run, not per record.
func New(cfg *config.Config) (*Pipeline, error) {
	ranker, degraded, err := naming.SelectRanker(cfg.Naming.Strategy, cfg.Naming.MaxKeywords, cfg.Naming.ExtraStopwords)
	if err != nil {
		return nil, fmt.Errorf("failed to select keyword ranker: %w", err)
	}
	if degraded {
		log.Println("Statistical keyword ranking unavailable, using rule-based naming")
	}

	return &Pipeline{
		ranker:      ranker,
		maxKeywords: cfg.Naming.MaxKeywords,
	}, nil
}

// RankerSource exposes the active ranker's provenance tag.
func (p *Pipeline) RankerSource() naming.Source {
	return p.ranker.Source()
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Run processes one document and returns its records in ordinal order.
//
// Stages execute strictly in sequence: name uniqueness and ordinal assignment
// both need whole-document context, so no stage starts before its
// predecessor finished. Per-record problems (malformed blocks, missing
// fields) become flags on the record, never errors.
func (p *Pipeline) Run(doc Document) []EntityRecord {
	if v := detectVersion(doc.Text); v != "" && doc.Version != "" && v != doc.Version {
		// The file-stem tag wins; the in-document header is advisory.
		log.Printf("Document %s declares version %s in its header", doc.Version, v)
	}

	blocks := wikitext.NewSplitter().Split(doc.Text)

	registry := naming.NewRegistry()
	synth := naming.NewSynthesizer(p.ranker, registry)

	records := make([]EntityRecord, 0, len(blocks))
	for _, block := range blocks {
		fields := wikitext.ExtractFields(block)

		meaning, _ := fields.Get("meaning")
		candidate := synth.Name(meaning, block.Ordinal)

		records = append(records, EntityRecord{
			Ordinal:    block.Ordinal,
			Fields:     fields,
			Name:       candidate.Name,
			NameSource: candidate.Source,
			Complete:   !block.Malformed && wikitext.IsComplete(fields),
		})
	}

	return records
}

// detectVersion finds a version string in the document's leading lines.
func detectVersion(text string) string {
	const headerWindow = 512
	if len(text) > headerWindow {
		text = text[:headerWindow]
	}
	return versionPattern.FindString(text)
}
