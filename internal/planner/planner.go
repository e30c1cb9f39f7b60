// Package planner turns an actionable signal into a risk-bounded trade
// plan. All money math uses decimal arithmetic; sizing failures degrade to
// a zero-size plan with an explanatory reason instead of an error, so
// callers can always act on the returned plan.
package planner

import (
	"github.com/shopspring/decimal"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Plan sizes a position for the given signal. The stop distance is
// ATR * atr_multiplier_sl; the position is sized so a stop-loss hit loses
// at most risk_per_trade_pct of the balance, capped at max_position_pct of
// the balance. Stop-loss and take-profit offset the last price by the ATR
// multipliers, mirrored for SELL.
func Plan(sig *model.Signal, atr model.Value, risk config.RiskConfig, availableQuote decimal.Decimal) *model.TradePlan {
	plan := &model.TradePlan{
		Pair:           sig.Pair,
		Action:         sig.Action,
		Score:          sig.Score,
		OrderSizeQuote: decimal.Zero,
		Reasons:        append([]string(nil), sig.Reasons...),
	}

	if sig.Action == model.ActionHold {
		plan.Reasons = append(plan.Reasons, "sizing skipped: action is HOLD")
		return plan
	}
	if !atr.Valid || atr.Float64 <= 0 {
		plan.Reasons = append(plan.Reasons, "sizing skipped: ATR unavailable")
		return plan
	}
	if !availableQuote.IsPositive() {
		plan.Reasons = append(plan.Reasons, "sizing skipped: no available balance")
		return plan
	}

	atrD := decimal.NewFromFloat(atr.Float64)
	lastPrice := decimal.NewFromFloat(sig.LastPrice)
	stopDistance := atrD.Mul(decimal.NewFromFloat(risk.ATRMultiplierSL))
	if !stopDistance.IsPositive() {
		plan.Reasons = append(plan.Reasons, "sizing skipped: non-positive stop distance")
		return plan
	}

	riskAmount := availableQuote.Mul(decimal.NewFromFloat(risk.RiskPerTradePct)).Div(hundred)
	maxPosition := availableQuote.Mul(decimal.NewFromFloat(risk.MaxPositionPct)).Div(hundred)
	plan.OrderSizeQuote = decimal.Min(riskAmount.Div(stopDistance).Mul(lastPrice), maxPosition)

	tpDistance := atrD.Mul(decimal.NewFromFloat(risk.ATRMultiplierTP))
	var stopLoss, takeProfit decimal.Decimal
	if sig.Action == model.ActionBuy {
		stopLoss = lastPrice.Sub(stopDistance)
		takeProfit = lastPrice.Add(tpDistance)
	} else {
		stopLoss = lastPrice.Add(stopDistance)
		takeProfit = lastPrice.Sub(tpDistance)
	}
	plan.StopLoss = &stopLoss
	plan.TakeProfit = &takeProfit
	return plan
}
