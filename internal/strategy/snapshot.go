package strategy

import (
	"TradeSentinel/internal/calculator"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

// MACD parameters follow the common 12/26/9 convention.
const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9

	bollingerWindow = 20
	bollingerK      = 2.0
)

// BuildSnapshot derives the latest indicator values from a candle window
// and an optional order-book depth snapshot. Passing atrPeriod <= 0 skips
// the ATR (callers that only score direction do not need it). The input
// candles must be ordered ascending; only the latest value of each series
// is kept.
func BuildSnapshot(candles []model.Candle, book *model.OrderBook, rules config.Rules, atrPeriod int) model.IndicatorSnapshot {
	var snap model.IndicatorSnapshot
	if len(candles) == 0 {
		return snap
	}

	closes := model.Closes(candles)
	highs := model.Highs(candles)
	lows := model.Lows(candles)
	volumes := model.Volumes(candles)
	last := len(closes) - 1

	snap.LastPrice = closes[last]
	snap.FastSMA = calculator.CalculateSMA(closes, rules.FastSMA)[last]
	snap.SlowSMA = calculator.CalculateSMA(closes, rules.SlowSMA)[last]
	snap.RSI = calculator.CalculateRSI(closes, rules.RSIPeriod)[last]

	macd := calculator.CalculateMACD(closes, macdFast, macdSlow, macdSignal)
	snap.MACD = macd.Line[last]
	snap.MACDSignal = macd.Signal[last]

	bb := calculator.CalculateBollinger(closes, bollingerWindow, bollingerK)
	snap.BBUpper = bb.Upper[last]
	snap.BBLower = bb.Lower[last]

	ichimoku := calculator.CalculateIchimoku(highs, lows, closes)
	snap.Tenkan = ichimoku.Tenkan[last]
	snap.Kijun = ichimoku.Kijun[last]

	if atrPeriod > 0 {
		snap.ATR = calculator.CalculateATR(highs, lows, closes, atrPeriod)[last]
	}

	snap.VolumeSpike = calculator.IsVolumeSpike(volumes, rules.VolumeSpikeMultiplier)

	if book != nil {
		snap.OrderBookImbalance = model.Defined(calculator.OrderBookImbalance(book.BidVolume(), book.AskVolume()))
	}
	return snap
}
