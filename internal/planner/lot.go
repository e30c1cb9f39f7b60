package planner

import (
	"github.com/shopspring/decimal"

	"TradeSentinel/internal/model"
)

// QuantizeQty rounds a base-asset quantity down to the exchange step size.
// A non-positive step returns the quantity unchanged.
func QuantizeQty(qty, stepSize decimal.Decimal) decimal.Decimal {
	if !stepSize.IsPositive() {
		return qty
	}
	return qty.Div(stepSize).Floor().Mul(stepSize)
}

// ApplyLotSize quantizes a quantity against the pair's lot rules and
// reports whether the result is still tradable (at or above the minimum
// quantity). The planner itself produces ideal sizes; this helper is for
// the order-placement collaborator finalizing a plan.
func ApplyLotSize(qty decimal.Decimal, lot model.LotSize) (decimal.Decimal, bool) {
	quantized := QuantizeQty(qty, lot.StepSize)
	if quantized.LessThan(lot.MinQty) || !quantized.IsPositive() {
		return quantized, false
	}
	return quantized, true
}
