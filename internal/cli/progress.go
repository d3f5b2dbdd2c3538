package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/entitymeta/wikiparse/internal/pipeline"
)

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet     bool
	bar       *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(documents int) {
	if c.quiet {
		return
	}
	log.Printf("Processing %d source document(s)\n", documents)

	c.bar = progressbar.NewOptions(documents,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("docs/s"),
	)
}

func (c *CLIProgressReporter) OnDocumentStart(version string) {
	// The bar advances on completion; nothing to show at start.
}

func (c *CLIProgressReporter) OnDocumentDone(stats pipeline.DocumentStats, err error) {
	if c.quiet {
		return
	}
	if c.bar != nil {
		c.bar.Add(1)
	}
	if err != nil {
		log.Printf("Failed to process %s: %v", stats.Version, err)
		return
	}
	if stats.Skipped {
		return
	}
	if verbose {
		log.Printf("%s: %d records, %d incomplete, %d fallback names",
			stats.Version, stats.Records, stats.Incomplete, stats.Fallbacks)
	}
}

func (c *CLIProgressReporter) OnComplete(stats *pipeline.BatchStats) {
	if c.quiet {
		return
	}
	fmt.Println()
	log.Printf("Extraction complete: %d records from %d document(s) in %.2fs (%d skipped, %d failed)",
		stats.TotalRecords, stats.Documents, stats.ProcessingTime.Seconds(), stats.Skipped, stats.Failed)
}
