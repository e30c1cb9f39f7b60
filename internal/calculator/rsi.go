package calculator

import "TradeSentinel/internal/model"

// CalculateRSI computes the relative strength index series over the given
// period, using the simple average of gains and losses across the last
// `period` price changes. Entries with fewer than `period` changes behind
// them are undefined.
//
// When the average loss is zero the RSI is 100. When only the average gain
// is zero the formula yields 0 naturally; that asymmetry is observable
// behavior and is kept as is.
func CalculateRSI(closes []float64, period int) []model.Value {
	out := make([]model.Value, len(closes))
	if period <= 0 || len(closes) < 2 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta >= 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		if avgLoss == 0 {
			out[i] = model.Defined(100.0)
			continue
		}
		rs := avgGain / avgLoss
		out[i] = model.Defined(100.0 - 100.0/(1.0+rs))
	}
	return out
}
