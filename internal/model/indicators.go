package model

// IndicatorSnapshot holds the latest value of every derived indicator for
// one (pair, timeframe) window. Snapshots are ephemeral: recomputed on
// demand from candles, never persisted.
type IndicatorSnapshot struct {
	LastPrice  float64
	FastSMA    Value
	SlowSMA    Value
	RSI        Value
	MACD       Value
	MACDSignal Value
	BBUpper    Value
	BBLower    Value
	Tenkan     Value
	Kijun      Value
	ATR        Value

	// OrderBookImbalance is undefined when no depth snapshot was supplied.
	OrderBookImbalance Value
	VolumeSpike        bool
}
