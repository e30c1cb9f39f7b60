package collector

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/store"
	"TradeSentinel/internal/strategy"
)

// Collector orchestrates data fetching, validation, storage, and signal
// evaluation for one exchange.
type Collector struct {
	Fetcher    Fetcher
	Store      store.Store
	KlineLimit int
	DepthLimit int
	log        zerolog.Logger
}

// New creates a Collector.
func New(fetcher Fetcher, st store.Store, klineLimit, depthLimit int, logger zerolog.Logger) *Collector {
	return &Collector{
		Fetcher:    fetcher,
		Store:      st,
		KlineLimit: klineLimit,
		DepthLimit: depthLimit,
		log:        logger.With().Str("component", "collector").Logger(),
	}
}

// Sync fetches the latest candles for a pair/timeframe, validates them,
// and stores the valid ones. Returns the number of rows inserted and the
// number dropped by validation. Duplicate rows are ignored by the store
// and count as neither.
func (c *Collector) Sync(pair, timeframe string) (inserted, dropped int, err error) {
	rows, err := c.Fetcher.FetchKlines(pair, timeframe, c.KlineLimit)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch klines %s/%s: %w", pair, timeframe, err)
	}

	valid, dropped := ValidateCandles(rows)
	inserted, err = c.Store.InsertCandles(valid)
	if err != nil {
		return 0, dropped, fmt.Errorf("store candles %s/%s: %w", pair, timeframe, err)
	}

	metrics.CandlesInserted.Add(float64(inserted))
	metrics.CandlesDropped.Add(float64(dropped))
	c.log.Debug().Str("pair", pair).Str("timeframe", timeframe).
		Int("inserted", inserted).Int("dropped", dropped).Msg("sync complete")
	return inserted, dropped, nil
}

// Evaluate loads stored history for a pair/timeframe, fetches a fresh
// order-book snapshot, and scores the latest bar. Returns a nil signal
// when no history is stored yet (signal unavailable, not an error). A
// failed depth fetch degrades to scoring without the liquidity rule.
func (c *Collector) Evaluate(pair, timeframe string, rules config.Rules, atrPeriod int) (*model.Signal, model.IndicatorSnapshot, error) {
	candles, err := c.Store.LoadCandles(pair, timeframe)
	if err != nil {
		return nil, model.IndicatorSnapshot{}, fmt.Errorf("load candles %s/%s: %w", pair, timeframe, err)
	}
	if len(candles) == 0 {
		return nil, model.IndicatorSnapshot{}, nil
	}

	book, err := c.Fetcher.FetchOrderBook(pair, c.DepthLimit)
	if err != nil {
		c.log.Warn().Err(err).Str("pair", pair).Msg("depth fetch failed, scoring without order book")
		book = nil
	}

	snap := strategy.BuildSnapshot(candles, book, rules, atrPeriod)
	action, score, reasons := strategy.Evaluate(snap, rules)
	metrics.SignalsEvaluated.WithLabelValues(string(action)).Inc()

	sig := &model.Signal{
		Pair:      pair,
		Timeframe: timeframe,
		Timestamp: candles[len(candles)-1].Timestamp,
		Action:    action,
		Score:     score,
		Reasons:   reasons,
		LastPrice: snap.LastPrice,
	}
	return sig, snap, nil
}

// ValidateCandles drops malformed rows before they can reach the store:
// non-positive timestamps, non-finite or negative values, and bars whose
// high/low do not bound the open/close. Returns the valid rows and the
// dropped count.
func ValidateCandles(rows []model.Candle) ([]model.Candle, int) {
	valid := make([]model.Candle, 0, len(rows))
	dropped := 0
	for _, c := range rows {
		if !candleWellFormed(c) {
			dropped++
			continue
		}
		valid = append(valid, c)
	}
	return valid, dropped
}

func candleWellFormed(c model.Candle) bool {
	if c.Timestamp <= 0 || c.Pair == "" || c.Timeframe == "" {
		return false
	}
	for _, v := range []float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	if c.High < c.Open || c.High < c.Close {
		return false
	}
	if c.Low > c.Open || c.Low > c.Close {
		return false
	}
	return c.High >= c.Low
}
