package model

// Candle is a single closed OHLCV bar. Candles are immutable once stored:
// the identity key (Source, Pair, Timeframe, Timestamp) is unique and
// re-ingesting an existing key is a no-op.
type Candle struct {
	Source    string  `json:"source"`
	Pair      string  `json:"pair"`
	Timeframe string  `json:"timeframe"`
	Timestamp int64   `json:"timestamp"` // bar open time, epoch milliseconds
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Closes extracts the close series from a candle slice.
func Closes(bars []Candle) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high series from a candle slice.
func Highs(bars []Candle) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low series from a candle slice.
func Lows(bars []Candle) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the volume series from a candle slice.
func Volumes(bars []Candle) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}
