package model

// Action is the categorical decision derived from a signal score.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// ActionForScore maps a signed score to an action against the configured
// minimum. BUY iff score >= min, SELL iff score <= -min, HOLD otherwise.
func ActionForScore(score, minScore int) Action {
	switch {
	case score >= minScore:
		return ActionBuy
	case score <= -minScore:
		return ActionSell
	default:
		return ActionHold
	}
}

// Signal is the output of one scoring evaluation. Recomputing a signal for
// the same (pair, timeframe, timestamp) replaces the stored one.
type Signal struct {
	Pair      string   `json:"pair"`
	Timeframe string   `json:"timeframe"`
	Timestamp int64    `json:"timestamp"`
	Action    Action   `json:"action"`
	Score     int      `json:"score"`
	Reasons   []string `json:"reasons"`
	LastPrice float64  `json:"last_price"`
}
