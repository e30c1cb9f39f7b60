package calculator

import (
	"math"

	"TradeSentinel/internal/model"
)

// BollingerSeries holds the three Bollinger band lines.
type BollingerSeries struct {
	Upper  []model.Value
	Middle []model.Value
	Lower  []model.Value
}

// CalculateBollinger computes Bollinger bands: middle is the SMA over the
// window, upper/lower offset it by k sample standard deviations over the
// same window. Bands are undefined before the window fills, and for
// windows below 2 (a single sample has no deviation).
func CalculateBollinger(closes []float64, window int, k float64) BollingerSeries {
	n := len(closes)
	res := BollingerSeries{
		Upper:  make([]model.Value, n),
		Middle: make([]model.Value, n),
		Lower:  make([]model.Value, n),
	}
	if window < 2 {
		return res
	}
	res.Middle = CalculateSMA(closes, window)

	for i := window - 1; i < n; i++ {
		mean := res.Middle[i].Float64
		var sq float64
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(window-1))
		res.Upper[i] = model.Defined(mean + k*std)
		res.Lower[i] = model.Defined(mean - k*std)
	}
	return res
}
