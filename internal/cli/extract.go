package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/entitymeta/wikiparse/internal/pipeline"
)

var (
	quietFlag  bool
	watchFlag  bool
	forceFlag  bool
	sourceFlag string
	outputFlag string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract entity records from wiki-markup dumps",
	Long: `Extract processes every source document (one .txt dump per data
version) and writes the per-version output file set.

For each version the extractor:
  - Splits the raw markup into entity blocks
  - Extracts field values with markup decoration stripped
  - Synthesizes a unique, readable identifier from each meaning field
  - Writes <version>.json plus the meaning, mapping, comparison and
    type listings

Examples:
  # Process every document in the configured source directory
  wikiparse extract

  # Reprocess even if checksums are unchanged
  wikiparse extract --force

  # Watch the source directory and reprocess on change
  wikiparse extract --watch
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	extractCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the source directory and reprocess changed documents")
	extractCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Reprocess documents even when their checksum is unchanged")
	extractCmd.Flags().StringVar(&sourceFlag, "source", "", "Override the configured source directory")
	extractCmd.Flags().StringVar(&outputFlag, "output", "", "Override the configured output directory")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling extraction...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags override file and environment configuration.
	if sourceFlag != "" {
		cfg.Paths.SourceDir = sourceFlag
	}
	if outputFlag != "" {
		cfg.Paths.OutputDir = outputFlag
	}
	if forceFlag {
		cfg.Batch.Force = true
	}

	progress := NewCLIProgressReporter(quietFlag)

	batch, err := pipeline.NewBatch(cfg, progress)
	if err != nil {
		return fmt.Errorf("failed to create batch runner: %w", err)
	}

	stats, err := batch.Process(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("extraction cancelled")
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	if stats.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d document(s) failed to process\n", stats.Failed)
	}

	if watchFlag {
		watcher, err := pipeline.NewSourceWatcher(batch)
		if err != nil {
			return fmt.Errorf("failed to start watch mode: %w", err)
		}
		defer watcher.Stop()

		watcher.Start(ctx)
		if !quietFlag {
			fmt.Println("Watching for source changes (Ctrl+C to stop)...")
		}
		<-ctx.Done()
	}

	return nil
}
