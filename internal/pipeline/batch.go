package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/entitymeta/wikiparse/internal/config"
	"github.com/entitymeta/wikiparse/internal/naming"
)

// Batch processes every discovered source document through its own pipeline
// run. Documents are independent: each run owns its registry and output file
// set, so a bounded worker pool needs no locking beyond the shared manifest.
type Batch struct {
	cfg       *config.Config
	pipeline  *Pipeline
	discovery *SourceDiscovery
	writer    *Writer
	progress  ProgressReporter
}

// NewBatch wires up a batch runner. progress may be nil for silent operation.
func NewBatch(cfg *config.Config, progress ProgressReporter) (*Batch, error) {
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	p, err := New(cfg)
	if err != nil {
		return nil, err
	}

	discovery, err := NewSourceDiscovery(cfg.Paths.SourceDir, cfg.Paths.Patterns)
	if err != nil {
		return nil, err
	}

	writer, err := NewWriter(cfg.Paths.OutputDir)
	if err != nil {
		return nil, err
	}

	return &Batch{
		cfg:       cfg,
		pipeline:  p,
		discovery: discovery,
		writer:    writer,
		progress:  progress,
	}, nil
}

// Process runs the batch. A document that fails on I/O is counted and
// skipped; it never aborts the other documents. The returned error is
// reserved for batch-level failures (discovery, manifest persistence).
func (b *Batch) Process(ctx context.Context) (*BatchStats, error) {
	start := time.Now()

	docs, err := b.discovery.Discover()
	if err != nil {
		return nil, err
	}
	b.progress.OnDiscoveryComplete(len(docs))

	manifest := LoadManifest(b.cfg.Paths.OutputDir)

	var (
		mu    sync.Mutex
		stats BatchStats
		wg    sync.WaitGroup
	)
	sem := make(chan struct{}, b.cfg.Batch.Workers)

	for _, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}

		go func(doc SourceDoc) {
			defer wg.Done()
			defer func() { <-sem }()

			b.progress.OnDocumentStart(doc.Version)
			docStats, checksum, records, err := b.processDocument(doc, manifest)

			mu.Lock()
			defer mu.Unlock()
			stats.Documents++
			switch {
			case err != nil:
				stats.Failed++
			case docStats.Skipped:
				stats.Skipped++
			default:
				stats.TotalRecords += docStats.Records
				manifest.Record(doc.Version, checksum, records)
			}
			b.progress.OnDocumentDone(docStats, err)
		}(doc)
	}
	wg.Wait()

	if err := manifest.Save(b.cfg.Paths.OutputDir); err != nil {
		return nil, err
	}

	stats.ProcessingTime = time.Since(start)
	b.progress.OnComplete(&stats)
	return &stats, nil
}

// ProcessOne runs a single document by path, bypassing discovery. Used by
// watch mode when one source file changes.
func (b *Batch) ProcessOne(doc SourceDoc) (DocumentStats, error) {
	manifest := LoadManifest(b.cfg.Paths.OutputDir)

	docStats, checksum, records, err := b.processDocument(doc, manifest)
	if err != nil {
		return docStats, err
	}
	if !docStats.Skipped {
		manifest.Record(doc.Version, checksum, records)
		if err := manifest.Save(b.cfg.Paths.OutputDir); err != nil {
			return docStats, err
		}
	}
	return docStats, nil
}

// processDocument runs one document end to end and writes its output files.
func (b *Batch) processDocument(doc SourceDoc, manifest *Manifest) (DocumentStats, string, int, error) {
	docStats := DocumentStats{Version: doc.Version}

	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return docStats, "", 0, fmt.Errorf("failed to read %s: %w", doc.Path, err)
	}

	checksum := Checksum(data)
	if !b.cfg.Batch.Force && manifest.Unchanged(doc.Version, checksum) {
		docStats.Skipped = true
		return docStats, checksum, 0, nil
	}

	records := b.pipeline.Run(Document{Version: doc.Version, Text: string(data)})

	if err := b.writer.WriteAll(doc.Version, records); err != nil {
		return docStats, "", 0, fmt.Errorf("failed to write output for %s: %w", doc.Version, err)
	}

	docStats.Records = len(records)
	for _, r := range records {
		if !r.Complete {
			docStats.Incomplete++
		}
		if r.NameSource == naming.SourceFallback {
			docStats.Fallbacks++
		}
	}
	return docStats, checksum, len(records), nil
}
