package naming

import (
	"fmt"
	"sort"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
	"github.com/blevesearch/bleve/v2/analysis/token/stop"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
)

// StatisticalRanker ranks tokens with bleve's analysis chain: unicode
// tokenization, lowercasing, English stop-token removal, and porter stemming
// for duplicate folding. Scoring favors frequent and early tokens; the
// selected tokens are returned in their original text order so the joined
// identifier still reads naturally.
type StatisticalRanker struct {
	maxKeywords int
	tokenizer   analysis.Tokenizer
	lowercase   *lowercase.LowerCaseFilter
	stop        *stop.StopTokensFilter
	stemmer     *porter.PorterStemmer
}

// NewStatisticalRanker builds the bleve-backed ranker. maxKeywords <= 0
// selects DefaultMaxWords. Construction fails only if the English stopword
// token map cannot be loaded; callers degrade to the heuristic ranker then.
func NewStatisticalRanker(maxKeywords int) (*StatisticalRanker, error) {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxWords
	}

	tokenMap := analysis.NewTokenMap()
	if err := tokenMap.LoadBytes(en.EnglishStopWords); err != nil {
		return nil, fmt.Errorf("failed to load english stopwords: %w", err)
	}

	return &StatisticalRanker{
		maxKeywords: maxKeywords,
		tokenizer:   unicode.NewUnicodeTokenizer(),
		lowercase:   lowercase.NewLowerCaseFilter(),
		stop:        stop.NewStopTokensFilter(tokenMap),
		stemmer:     porter.NewPorterStemmer(),
	}, nil
}

// scoredToken is one candidate keyword with its aggregate relevance.
type scoredToken struct {
	term     string
	position int // earliest occurrence, 1-based
	score    float64
}

// Rank implements KeywordRanker.
func (r *StatisticalRanker) Rank(text string) []string {
	stream := r.tokenizer.Tokenize([]byte(text))
	stream = r.lowercase.Filter(stream)
	stream = r.stop.Filter(stream)

	// Fold tokens by stem so "tick"/"ticks" count as one keyword; the
	// surface form of the earliest occurrence is what gets emitted.
	surface := make(map[string]*scoredToken)
	stemmed := r.stemmer.Filter(copyStream(stream))

	for i, tok := range stream {
		term := string(tok.Term)
		if len(term) < 2 || !isWordToken(term) {
			continue
		}
		stem := term
		if i < len(stemmed) {
			stem = string(stemmed[i].Term)
		}

		if st, ok := surface[stem]; ok {
			st.score += 1.0
			continue
		}
		surface[stem] = &scoredToken{
			term:     term,
			position: tok.Position,
			// Base occurrence weight plus an early-position bonus.
			score: 1.0 + 1.0/float64(tok.Position),
		}
	}

	if len(surface) == 0 {
		return nil
	}

	ranked := make([]*scoredToken, 0, len(surface))
	for _, st := range surface {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].position < ranked[j].position
	})
	if len(ranked) > r.maxKeywords {
		ranked = ranked[:r.maxKeywords]
	}

	// Restore original text order for the final identifier.
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].position < ranked[j].position
	})

	out := make([]string, len(ranked))
	for i, st := range ranked {
		out[i] = st.term
	}
	return out
}

// Source implements KeywordRanker.
func (r *StatisticalRanker) Source() Source {
	return SourceStatistical
}

// copyStream deep-copies a token stream so the stemmer's in-place term
// rewrites do not clobber the surface forms.
func copyStream(stream analysis.TokenStream) analysis.TokenStream {
	out := make(analysis.TokenStream, len(stream))
	for i, tok := range stream {
		term := make([]byte, len(tok.Term))
		copy(term, tok.Term)
		c := *tok
		c.Term = term
		out[i] = &c
	}
	return out
}

// isWordToken reports whether term starts with a letter, filtering the
// numeric and punctuation tokens the unicode tokenizer also emits.
func isWordToken(term string) bool {
	c := term[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
