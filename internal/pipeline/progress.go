package pipeline

// ProgressReporter provides callbacks for reporting batch progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnDiscoveryComplete is called once discovery finishes.
	OnDiscoveryComplete(documents int)

	// OnDocumentStart is called before a document is processed.
	OnDocumentStart(version string)

	// OnDocumentDone is called after each document, including skips and
	// failures.
	OnDocumentDone(stats DocumentStats, err error)

	// OnComplete is called when the batch finishes.
	OnComplete(stats *BatchStats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryComplete(documents int)             {}
func (n *NoOpProgressReporter) OnDocumentStart(version string)                {}
func (n *NoOpProgressReporter) OnDocumentDone(stats DocumentStats, err error) {}
func (n *NoOpProgressReporter) OnComplete(stats *BatchStats)                  {}
