package calculator

import "TradeSentinel/internal/model"

// CalculateSMA computes the simple moving average series over the given
// window. Entries before the window fills are undefined. The output has
// the same length as the input.
func CalculateSMA(values []float64, window int) []model.Value {
	out := make([]model.Value, len(values))
	if window <= 0 {
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = model.Defined(sum / float64(window))
		}
	}
	return out
}

// CalculateEMA computes the exponential moving average series with
// smoothing 2/(period+1), seeded from the first value. The EMA is defined
// from the first bar onward: every entry is a weighted average of all
// values seen so far, so there is no warm-up window to wait for.
func CalculateEMA(values []float64, period int) []model.Value {
	out := make([]model.Value, len(values))
	if period <= 0 || len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(period+1)
	ema := values[0]
	out[0] = model.Defined(ema)
	for i := 1; i < len(values); i++ {
		ema = values[i]*alpha + ema*(1-alpha)
		out[i] = model.Defined(ema)
	}
	return out
}
