package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// Synthesizer converts meaning text into unique, readable identifiers.
// The ranker is fixed at construction; provenance on every candidate reflects
// which strategy actually produced the name.
type Synthesizer struct {
	ranker   KeywordRanker
	registry *Registry
}

// Candidate is a synthesized identifier with its provenance.
type Candidate struct {
	Name   string
	Source Source
}

// NewSynthesizer creates a synthesizer bound to one document's registry.
func NewSynthesizer(ranker KeywordRanker, registry *Registry) *Synthesizer {
	return &Synthesizer{ranker: ranker, registry: registry}
}

var (
	// Trailing clarifications never belong in an identifier: parentheticals,
	// bracketed asides, and everything after a sentence-splitting mark.
	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)
	bracketedPattern     = regexp.MustCompile(`\s*\[[^\]]*\]`)
	bracedPattern        = regexp.MustCompile(`\s*\{[^}]*\}`)
	tailPattern          = regexp.MustCompile(`[;:?]\s*.*$`)
	sentenceTailPattern  = regexp.MustCompile(`\.\s+.*$`)
	dashTailPattern      = regexp.MustCompile(`\s+-\s+.*$`)
	quotePattern         = regexp.MustCompile("['\"`]")

	identUnsafePattern = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Name derives a unique identifier for meaning. ordinal is the record's
// source position, used for the fallback name when the meaning yields nothing.
func (s *Synthesizer) Name(meaning string, ordinal int) Candidate {
	keywords := s.ranker.Rank(cleanMeaning(meaning))

	base := sanitizeIdentifier(strings.Join(keywords, "_"))
	if base == "" {
		return Candidate{
			Name:   s.registry.Reserve(fmt.Sprintf("unknown_%04d", ordinal)),
			Source: SourceFallback,
		}
	}

	return Candidate{
		Name:   s.registry.Reserve(base),
		Source: s.ranker.Source(),
	}
}

// cleanMeaning strips the parts of a meaning that describe rather than name:
// quoted text markers, parenthetical asides, and secondary clauses.
func cleanMeaning(text string) string {
	text = quotePattern.ReplaceAllString(text, "")
	text = parentheticalPattern.ReplaceAllString(text, "")
	text = bracketedPattern.ReplaceAllString(text, "")
	text = bracedPattern.ReplaceAllString(text, "")
	text = tailPattern.ReplaceAllString(text, "")
	text = sentenceTailPattern.ReplaceAllString(text, "")
	text = dashTailPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// sanitizeIdentifier forces s into the identifier-safe character set:
// lowercase letters, digits, underscore, not starting with a digit.
func sanitizeIdentifier(s string) string {
	s = strings.ToLower(s)
	s = identUnsafePattern.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return ""
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}
