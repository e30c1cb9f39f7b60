package calculator

import (
	"math"

	"TradeSentinel/internal/model"
)

// CalculateATR computes the average true range series: the true range of
// each bar (max of high-low, |high-prevClose|, |low-prevClose|) averaged
// over the last `period` bars. The first bar has no previous close, so the
// series is defined from index `period` onward.
func CalculateATR(highs, lows, closes []float64, period int) []model.Value {
	n := len(closes)
	out := make([]model.Value, n)
	if period <= 0 || n < 2 || len(highs) < n || len(lows) < n {
		return out
	}

	trs := make([]float64, n)
	for i := 1; i < n; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		trs[i] = math.Max(hl, math.Max(hc, lc))
	}

	var sum float64
	for i := 1; i < n; i++ {
		sum += trs[i]
		if i > period {
			sum -= trs[i-period]
		}
		if i >= period {
			out[i] = model.Defined(sum / float64(period))
		}
	}
	return out
}
