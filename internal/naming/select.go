package naming

import "fmt"

// Ranker strategy names accepted in configuration.
const (
	StrategyAuto        = "auto"
	StrategyStatistical = "statistical"
	StrategyHeuristic   = "heuristic"
)

// SelectRanker resolves a configured strategy to a concrete ranker, once per
// run. Under StrategyAuto a statistical ranker is preferred and the heuristic
// one is the degraded path; the second return value reports whether
// degradation happened so the caller can log it a single time.
func SelectRanker(strategy string, maxWords int, extraStopwords []string) (KeywordRanker, bool, error) {
	switch strategy {
	case StrategyStatistical:
		r, err := NewStatisticalRanker(maxWords)
		if err != nil {
			return nil, false, fmt.Errorf("statistical ranker unavailable: %w", err)
		}
		return r, false, nil
	case StrategyHeuristic:
		return NewHeuristicRanker(maxWords, extraStopwords), false, nil
	case StrategyAuto, "":
		if r, err := NewStatisticalRanker(maxWords); err == nil {
			return r, false, nil
		}
		return NewHeuristicRanker(maxWords, extraStopwords), true, nil
	default:
		return nil, false, fmt.Errorf("unknown ranker strategy %q", strategy)
	}
}
