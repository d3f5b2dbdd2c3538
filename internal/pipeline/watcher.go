package pipeline

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SourceWatcher watches the source directory and reprocesses a document when
// its file changes. Events are debounced so an editor's save dance (write,
// truncate, rename) triggers one run, not three.
type SourceWatcher struct {
	batch        *Batch
	sourceDir    string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// NewSourceWatcher creates a watcher over the batch's source directory.
func NewSourceWatcher(batch *Batch) (*SourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &SourceWatcher{
		batch:        batch,
		sourceDir:    batch.cfg.Paths.SourceDir,
		watcher:      watcher,
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := watcher.Add(sw.sourceDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return sw, nil
}

// Start begins watching for file changes.
func (sw *SourceWatcher) Start(ctx context.Context) {
	go sw.watch(ctx)
}

// Stop stops the watcher and waits for the event loop to finish.
func (sw *SourceWatcher) Stop() {
	sw.stopOnce.Do(func() {
		close(sw.stopCh)
		<-sw.doneCh
		sw.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (sw *SourceWatcher) watch(ctx context.Context) {
	defer close(sw.doneCh)

	var debounceTimer *time.Timer
	processCh := make(chan struct{}, 1)
	changed := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-sw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !sw.shouldProcessEvent(event) {
				continue
			}
			changed[event.Name] = true

			// Reset debounce timer - properly stop and drain.
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(sw.debounceTime, func() {
				select {
				case processCh <- struct{}{}:
				default:
				}
			})

		case <-processCh:
			sw.reprocess(changed)
			changed = make(map[string]bool)

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Source watcher error: %v", err)
		}
	}
}

// reprocess runs the pipeline for each changed source file.
func (sw *SourceWatcher) reprocess(changed map[string]bool) {
	for path := range changed {
		name := filepath.Base(path)
		doc := SourceDoc{
			Path:    path,
			Version: strings.TrimSuffix(name, filepath.Ext(name)),
		}

		start := time.Now()
		stats, err := sw.batch.ProcessOne(doc)
		if err != nil {
			log.Printf("Error reprocessing %s: %v", doc.Version, err)
			continue
		}
		if stats.Skipped {
			continue
		}
		log.Printf("Reprocessed %s in %v (%d records, %d incomplete)",
			doc.Version, time.Since(start), stats.Records, stats.Incomplete)
	}
}

// shouldProcessEvent checks if an event should trigger reprocessing.
func (sw *SourceWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return sw.batch.discovery.Matches(filepath.Base(event.Name))
}
