package backtest

import (
	"testing"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

func history(closes []float64) []model.Candle {
	out := make([]model.Candle, len(closes))
	for i, c := range closes {
		out[i] = model.Candle{
			Source:    "test",
			Pair:      "BTCUSDT",
			Timeframe: "1h",
			Timestamp: int64(i+1) * 3_600_000,
			Open:      c,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			Volume:    10,
		}
	}
	return out
}

func rising(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func falling(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n - i)
	}
	return out
}

// With min score 1, a strictly rising series trades BUY on every bar where
// both SMAs are defined (slow window 21 fills at index 20) and wins them
// all, since each next close is higher.
func TestRun_RisingSeriesAllWins(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinSignalScore = 1

	sum, err := Run(history(rising(30)), rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trades != 9 || sum.Wins != 9 || sum.Losses != 0 {
		t.Errorf("got %+v, want 9 trades all won", sum)
	}
	if sum.WinRate != 1 {
		t.Errorf("win rate = %v, want 1", sum.WinRate)
	}
}

func TestRun_FallingSeriesSellsAndWins(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinSignalScore = 1

	sum, err := Run(history(falling(30)), rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trades != 9 || sum.Wins != 9 {
		t.Errorf("got %+v, want 9 trades all won", sum)
	}
}

// A single trend point never reaches the default minimum score of 2, so the
// same fixture produces no trades at defaults.
func TestRun_DefaultThresholdHolds(t *testing.T) {
	sum, err := Run(history(rising(30)), config.DefaultRules())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trades != 0 {
		t.Errorf("got %d trades, want 0", sum.Trades)
	}
}

// Mutating the final bar must only affect the outcome of the final trade:
// decisions at earlier bars never see data past their own index.
func TestRun_NoLookAhead(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinSignalScore = 1

	bars := history(rising(30))
	bars[29].Close = 0
	bars[29].Low = -0.5
	bars[29].High = 0.5

	sum, err := Run(bars, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Trades != 9 || sum.Wins != 8 || sum.Losses != 1 {
		t.Errorf("got %+v, want 9 trades with exactly the last one lost", sum)
	}
}

func TestRun_UnorderedHistoryErrors(t *testing.T) {
	bars := history(rising(5))
	bars[2].Timestamp = bars[1].Timestamp - 1

	if _, err := Run(bars, config.DefaultRules()); err == nil {
		t.Fatal("expected an error for unordered history")
	}
}

func TestRun_ShortHistory(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		sum, err := Run(history(rising(n)), config.DefaultRules())
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if sum != (Summary{}) {
			t.Errorf("n=%d: got %+v, want zero summary", n, sum)
		}
	}
}
