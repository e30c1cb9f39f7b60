package strategy

import (
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

// Evaluate combines the scoring rules into a bounded score, a categorical
// action, and an ordered rationale list. It is stateless and deterministic:
// identical inputs always produce identical output. Rules whose indicators
// are undefined are skipped, never defaulted.
func Evaluate(snap model.IndicatorSnapshot, rules config.Rules) (model.Action, int, []string) {
	results := []ruleResult{
		scoreTrend(snap, rules),
		scoreMomentum(snap, rules),
		scoreLiquidity(snap, rules),
		scoreVolume(snap, rules),
	}

	score := 0
	var reasons []string
	for _, r := range results {
		if r.points == 0 {
			continue
		}
		score += r.points
		reasons = append(reasons, r.reason)
	}

	return model.ActionForScore(score, rules.MinSignalScore), score, reasons
}
