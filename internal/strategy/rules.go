package strategy

import (
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

// ruleResult is the contribution of a single scoring rule: at most one
// point in either direction plus a short rationale. A rule whose required
// indicator is undefined does not fire at all.
type ruleResult struct {
	points int
	reason string
}

// scoreTrend compares the fast and slow SMAs.
func scoreTrend(snap model.IndicatorSnapshot, _ config.Rules) ruleResult {
	if !snap.FastSMA.Valid || !snap.SlowSMA.Valid {
		return ruleResult{}
	}
	switch {
	case snap.FastSMA.Float64 > snap.SlowSMA.Float64:
		return ruleResult{points: 1, reason: "SMA: fast above slow, uptrend"}
	case snap.FastSMA.Float64 < snap.SlowSMA.Float64:
		return ruleResult{points: -1, reason: "SMA: fast below slow, downtrend"}
	default:
		return ruleResult{}
	}
}

// scoreMomentum checks the RSI against the configured bands. The bullish
// band is checked first; when the bands share a boundary value the bullish
// reading wins, matching the rule evaluation order.
func scoreMomentum(snap model.IndicatorSnapshot, rules config.Rules) ruleResult {
	if !snap.RSI.Valid {
		return ruleResult{}
	}
	rsi := snap.RSI.Float64
	switch {
	case rsi >= rules.RSIBuyMin && rsi <= rules.RSIBuyMax:
		return ruleResult{points: 1, reason: "RSI: bullish momentum"}
	case rsi >= rules.RSISellMin && rsi <= rules.RSISellMax:
		return ruleResult{points: -1, reason: "RSI: bearish momentum"}
	default:
		return ruleResult{}
	}
}

// scoreLiquidity checks the order-book imbalance against the buy/sell
// thresholds.
func scoreLiquidity(snap model.IndicatorSnapshot, rules config.Rules) ruleResult {
	if !snap.OrderBookImbalance.Valid {
		return ruleResult{}
	}
	imb := snap.OrderBookImbalance.Float64
	switch {
	case imb >= rules.OrderbookImbalanceBuy:
		return ruleResult{points: 1, reason: "Order book: bid-side pressure"}
	case imb <= rules.OrderbookImbalanceSell:
		return ruleResult{points: -1, reason: "Order book: ask-side pressure"}
	default:
		return ruleResult{}
	}
}

// scoreVolume adds a directionless confirmation point on a volume spike.
func scoreVolume(snap model.IndicatorSnapshot, _ config.Rules) ruleResult {
	if !snap.VolumeSpike {
		return ruleResult{}
	}
	return ruleResult{points: 1, reason: "Volume: spike above recent average"}
}
