// Package backtest replays the scoring engine bar by bar over stored
// history. It measures one-bar-ahead directional accuracy only, not a
// simulated P&L curve, so it stays decoupled from sizing assumptions.
package backtest

import (
	"fmt"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/strategy"
)

// Summary aggregates the outcome of a backtest run.
type Summary struct {
	Trades  int     `json:"trades"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}

// Run walks the history forward: at index i only candles [0..i] are
// visible to indicator computation and scoring. An actionable signal
// counts as a trade; it wins when the next bar's close moves in the
// predicted direction relative to the current close. The last bar has no
// following bar and is not evaluated.
//
// History must be ordered ascending by timestamp; anything else is a
// caller bug and the only condition reported as an error.
func Run(history []model.Candle, rules config.Rules) (Summary, error) {
	var sum Summary
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp < history[i-1].Timestamp {
			return Summary{}, fmt.Errorf("history not ordered ascending at index %d", i)
		}
	}

	for i := 1; i+1 < len(history); i++ {
		snap := strategy.BuildSnapshot(history[:i+1], nil, rules, 0)
		action, _, _ := strategy.Evaluate(snap, rules)
		if action == model.ActionHold {
			continue
		}
		sum.Trades++
		closeNow := history[i].Close
		closeNext := history[i+1].Close
		won := (action == model.ActionBuy && closeNext >= closeNow) ||
			(action == model.ActionSell && closeNext <= closeNow)
		if won {
			sum.Wins++
		} else {
			sum.Losses++
		}
	}

	if sum.Trades > 0 {
		sum.WinRate = float64(sum.Wins) / float64(sum.Trades)
	}
	return sum, nil
}
