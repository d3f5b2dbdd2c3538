package naming

import (
	"regexp"
	"strings"
)

// Source tags how a synthesized name was derived.
type Source string

const (
	SourceStatistical Source = "statistical"
	SourceHeuristic   Source = "heuristic"
	SourceFallback    Source = "fallback"
)

// KeywordRanker selects the identifier-worthy words from a meaning text.
// Implementations are chosen once per run, not per call; the synthesizer's
// contract is identical regardless of which implementation is active.
type KeywordRanker interface {
	// Rank returns the most relevant word tokens for text, already
	// lowercased, best first. An empty result means the text carried no
	// usable content.
	Rank(text string) []string

	// Source is the provenance tag recorded on names built from this
	// ranker's output.
	Source() Source
}

// DefaultMaxWords is the number of leading content words the rule-based
// ranker keeps. The exact count is a tuning parameter, not a contract; it is
// configurable through naming.max_keywords.
const DefaultMaxWords = 3

var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9]*`)

// HeuristicRanker is the deterministic rule-based ranker: first N content
// words in original order, stopwords skipped, duplicates folded.
type HeuristicRanker struct {
	maxWords  int
	stopwords map[string]struct{}
}

// NewHeuristicRanker creates a rule-based ranker. maxWords <= 0 selects
// DefaultMaxWords; extraStopwords extend the built-in set.
func NewHeuristicRanker(maxWords int, extraStopwords []string) *HeuristicRanker {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	stops := make(map[string]struct{}, len(fallbackStopwords)+len(extraStopwords))
	for _, w := range fallbackStopwords {
		stops[w] = struct{}{}
	}
	for _, w := range extraStopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &HeuristicRanker{maxWords: maxWords, stopwords: stops}
}

// Rank implements KeywordRanker.
func (r *HeuristicRanker) Rank(text string) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range wordPattern.FindAllString(text, -1) {
		lw := strings.ToLower(w)
		if len(lw) < 2 {
			continue
		}
		if _, stop := r.stopwords[lw]; stop {
			continue
		}
		if _, dup := seen[lw]; dup {
			continue
		}
		seen[lw] = struct{}{}
		words = append(words, lw)
		if len(words) == r.maxWords {
			break
		}
	}
	return words
}

// Source implements KeywordRanker.
func (r *HeuristicRanker) Source() Source {
	return SourceHeuristic
}
