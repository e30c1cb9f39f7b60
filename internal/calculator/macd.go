package calculator

import "TradeSentinel/internal/model"

// MACDSeries holds the three MACD output lines.
type MACDSeries struct {
	Line      []model.Value
	Signal    []model.Value
	Histogram []model.Value
}

// CalculateMACD computes the MACD line (fast EMA minus slow EMA), its
// signal line (EMA of the MACD line), and the histogram (line minus
// signal). Because the EMAs are seeded from the first bar, all three
// series are defined from the first bar onward.
func CalculateMACD(closes []float64, fast, slow, signalPeriod int) MACDSeries {
	n := len(closes)
	res := MACDSeries{
		Line:      make([]model.Value, n),
		Signal:    make([]model.Value, n),
		Histogram: make([]model.Value, n),
	}
	if n == 0 || fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return res
	}

	fastEMA := CalculateEMA(closes, fast)
	slowEMA := CalculateEMA(closes, slow)

	line := make([]float64, n)
	for i := 0; i < n; i++ {
		line[i] = fastEMA[i].Float64 - slowEMA[i].Float64
		res.Line[i] = model.Defined(line[i])
	}

	signal := CalculateEMA(line, signalPeriod)
	for i := 0; i < n; i++ {
		res.Signal[i] = signal[i]
		res.Histogram[i] = model.Defined(line[i] - signal[i].Float64)
	}
	return res
}
