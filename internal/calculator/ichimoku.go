package calculator

import "TradeSentinel/internal/model"

// Standard Ichimoku parameters.
const (
	tenkanWindow  = 9
	kijunWindow   = 26
	senkouBWindow = 52
	cloudShift    = 26
)

// IchimokuSeries holds the Ichimoku component lines.
type IchimokuSeries struct {
	Tenkan  []model.Value
	Kijun   []model.Value
	SenkouA []model.Value
	SenkouB []model.Value
	Chikou  []model.Value
}

// CalculateIchimoku computes the Ichimoku lines: tenkan and kijun are
// high/low midpoints over 9 and 26 bars, senkou A/B are the cloud lines
// shifted forward 26 bars, chikou is the close shifted back 26 bars.
// Entries where a window has not filled, or where a shift runs past the
// series bounds, are undefined.
func CalculateIchimoku(highs, lows, closes []float64) IchimokuSeries {
	n := len(closes)
	res := IchimokuSeries{
		Tenkan:  midpoint(highs, lows, tenkanWindow),
		Kijun:   midpoint(highs, lows, kijunWindow),
		SenkouA: make([]model.Value, n),
		SenkouB: make([]model.Value, n),
		Chikou:  make([]model.Value, n),
	}

	senkouB := midpoint(highs, lows, senkouBWindow)
	for i := cloudShift; i < n; i++ {
		if res.Tenkan[i-cloudShift].Valid && res.Kijun[i-cloudShift].Valid {
			res.SenkouA[i] = model.Defined((res.Tenkan[i-cloudShift].Float64 + res.Kijun[i-cloudShift].Float64) / 2)
		}
		res.SenkouB[i] = senkouB[i-cloudShift]
	}
	for i := 0; i+cloudShift < n; i++ {
		res.Chikou[i] = model.Defined(closes[i+cloudShift])
	}
	return res
}

// midpoint returns the series of (highest high + lowest low) / 2 over a
// trailing window.
func midpoint(highs, lows []float64, window int) []model.Value {
	n := len(highs)
	if len(lows) < n {
		n = len(lows)
	}
	out := make([]model.Value, n)
	if window <= 0 {
		return out
	}
	for i := window - 1; i < n; i++ {
		hi := highs[i-window+1]
		lo := lows[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if highs[j] > hi {
				hi = highs[j]
			}
			if lows[j] < lo {
				lo = lows[j]
			}
		}
		out[i] = model.Defined((hi + lo) / 2)
	}
	return out
}
