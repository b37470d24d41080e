package grid

import (
	"fmt"
	"strings"
)

// ScoreRule decides how many points a merge is worth.
type ScoreRule uint8

const (
	// ScoreExponential adds 2^r for every merge producing rank r.
	ScoreExponential ScoreRule = iota
	// ScoreRank adds the merged rank r itself.
	ScoreRank
	// ScoreNone never scores.
	ScoreNone
)

// Points returns the score for one merge that produced a tile of rank merged.
func (s ScoreRule) Points(merged Rank) int {
	switch s {
	case ScoreRank:
		return int(merged)
	case ScoreNone:
		return 0
	default:
		return merged.Value()
	}
}

// String returns the config name of the rule.
func (s ScoreRule) String() string {
	switch s {
	case ScoreRank:
		return "rank"
	case ScoreNone:
		return "none"
	default:
		return "exponential"
	}
}

// ParseScoreRule parses a config name. The empty string selects ScoreExponential.
func ParseScoreRule(name string) (ScoreRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "exponential", "exp":
		return ScoreExponential, nil
	case "rank", "linear":
		return ScoreRank, nil
	case "none":
		return ScoreNone, nil
	}
	return ScoreExponential, fmt.Errorf("%w: %q", ErrInvalidScoreRule, name)
}
