package collector

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/store"
)

func goodCandle(i int) model.Candle {
	return model.Candle{
		Source:    "mock",
		Pair:      "BTCUSDT",
		Timeframe: "1h",
		Timestamp: int64(i+1) * 3_600_000,
		Open:      100,
		High:      101,
		Low:       99,
		Close:     100.5,
		Volume:    10,
	}
}

func goodCandles(n int) []model.Candle {
	out := make([]model.Candle, n)
	for i := range out {
		out[i] = goodCandle(i)
	}
	return out
}

func newTestCollector(t *testing.T, fetcher Fetcher) *Collector {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(fetcher, st, 200, 100, zerolog.Nop())
}

func TestValidateCandles(t *testing.T) {
	nan := goodCandle(1)
	nan.Close = math.NaN()

	negative := goodCandle(2)
	negative.Volume = -1

	badHigh := goodCandle(3)
	badHigh.High = badHigh.Open - 1

	badLow := goodCandle(4)
	badLow.Low = badLow.Close + 1

	zeroTS := goodCandle(5)
	zeroTS.Timestamp = 0

	noPair := goodCandle(6)
	noPair.Pair = ""

	rows := []model.Candle{goodCandle(0), nan, negative, badHigh, badLow, zeroTS, noPair, goodCandle(7)}
	valid, dropped := ValidateCandles(rows)
	assert.Len(t, valid, 2)
	assert.Equal(t, 6, dropped)
	assert.Equal(t, goodCandle(0), valid[0])
	assert.Equal(t, goodCandle(7), valid[1])
}

func TestSync_StoresValidRowsOnly(t *testing.T) {
	bad := goodCandle(3)
	bad.High = math.Inf(1)

	fetcher := &MockFetcher{Klines: append(goodCandles(3), bad)}
	c := newTestCollector(t, fetcher)

	inserted, dropped, err := c.Sync("BTCUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Equal(t, 1, dropped)

	// Re-sync of the same window: duplicates are ignored, not errors.
	inserted, dropped, err = c.Sync("BTCUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
	assert.Equal(t, 1, dropped)
}

func TestSync_FetchError(t *testing.T) {
	c := newTestCollector(t, &MockFetcher{Err: errors.New("exchange down")})
	_, _, err := c.Sync("BTCUSDT", "1h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange down")
}

func TestEvaluate_NoHistoryReturnsNilSignal(t *testing.T) {
	c := newTestCollector(t, &MockFetcher{})
	sig, _, err := c.Evaluate("BTCUSDT", "1h", config.DefaultRules(), 14)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

func TestEvaluate_ScoresStoredHistory(t *testing.T) {
	fetcher := &MockFetcher{
		Klines: goodCandles(5),
		Book: &model.OrderBook{
			Bids: []model.PriceLevel{{Price: 100, Quantity: 30}},
			Asks: []model.PriceLevel{{Price: 101, Quantity: 10}},
		},
	}
	c := newTestCollector(t, fetcher)
	_, _, err := c.Sync("BTCUSDT", "1h")
	require.NoError(t, err)

	sig, snap, err := c.Evaluate("BTCUSDT", "1h", config.DefaultRules(), 2)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, "BTCUSDT", sig.Pair)
	assert.Equal(t, goodCandle(4).Timestamp, sig.Timestamp)
	assert.Equal(t, 100.5, sig.LastPrice)
	assert.True(t, snap.OrderBookImbalance.Valid)
	assert.InDelta(t, 0.5, snap.OrderBookImbalance.Float64, 1e-9)
	assert.True(t, snap.ATR.Valid)
}

func TestEvaluate_DegradesWithoutOrderBook(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.InsertCandles(goodCandles(5))
	require.NoError(t, err)

	// Depth fetch fails; klines are already stored so Evaluate still works.
	c := New(&MockFetcher{Err: errors.New("depth unavailable")}, st, 200, 100, zerolog.Nop())
	sig, snap, err := c.Evaluate("BTCUSDT", "1h", config.DefaultRules(), 0)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.False(t, snap.OrderBookImbalance.Valid)
}
