package strategy

import (
	"reflect"
	"testing"

	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
)

func candlesFrom(closes []float64, volume float64) []model.Candle {
	out := make([]model.Candle, len(closes))
	for i, c := range closes {
		out[i] = model.Candle{
			Source:    "test",
			Pair:      "BTCUSDT",
			Timeframe: "1h",
			Timestamp: int64(i+1) * 3_600_000,
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    volume,
		}
	}
	return out
}

func bullishSnapshot() model.IndicatorSnapshot {
	return model.IndicatorSnapshot{
		LastPrice:          100,
		FastSMA:            model.Defined(2),
		SlowSMA:            model.Defined(1),
		RSI:                model.Defined(60),
		OrderBookImbalance: model.Defined(0.5),
		VolumeSpike:        true,
	}
}

func TestEvaluate_AllRulesFire(t *testing.T) {
	action, score, reasons := Evaluate(bullishSnapshot(), config.DefaultRules())
	if action != model.ActionBuy {
		t.Errorf("action = %s, want BUY", action)
	}
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
	want := []string{
		"SMA: fast above slow, uptrend",
		"RSI: bullish momentum",
		"Order book: bid-side pressure",
		"Volume: spike above recent average",
	}
	if !reflect.DeepEqual(reasons, want) {
		t.Errorf("reasons = %v, want %v", reasons, want)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	snap := bullishSnapshot()
	rules := config.DefaultRules()
	a1, s1, r1 := Evaluate(snap, rules)
	a2, s2, r2 := Evaluate(snap, rules)
	if a1 != a2 || s1 != s2 || !reflect.DeepEqual(r1, r2) {
		t.Error("identical inputs must produce identical output")
	}
}

func TestEvaluate_UndefinedIndicatorsSkipRules(t *testing.T) {
	snap := model.IndicatorSnapshot{LastPrice: 100}
	action, score, reasons := Evaluate(snap, config.DefaultRules())
	if action != model.ActionHold || score != 0 || len(reasons) != 0 {
		t.Errorf("got (%s, %d, %v), want (HOLD, 0, [])", action, score, reasons)
	}
}

func TestEvaluate_ShortHistoryHolds(t *testing.T) {
	candles := candlesFrom([]float64{1, 1.1, 1.2, 1.1}, 10)
	snap := BuildSnapshot(candles, nil, config.DefaultRules(), 0)
	action, score, reasons := Evaluate(snap, config.DefaultRules())
	if action != model.ActionHold || score != 0 {
		t.Errorf("got (%s, %d), want (HOLD, 0)", action, score)
	}
	if len(reasons) != 0 {
		t.Errorf("no rule should fire on four bars, got %v", reasons)
	}
}

func TestEvaluate_BearishSnapshot(t *testing.T) {
	snap := model.IndicatorSnapshot{
		LastPrice:          100,
		FastSMA:            model.Defined(1),
		SlowSMA:            model.Defined(2),
		RSI:                model.Defined(40),
		OrderBookImbalance: model.Defined(-0.5),
	}
	action, score, _ := Evaluate(snap, config.DefaultRules())
	if action != model.ActionSell || score != -3 {
		t.Errorf("got (%s, %d), want (SELL, -3)", action, score)
	}
}

func TestEvaluate_SharedRSIBoundaryIsBullish(t *testing.T) {
	// Default bands overlap at 50; the bullish band is checked first.
	snap := model.IndicatorSnapshot{RSI: model.Defined(50)}
	_, score, reasons := Evaluate(snap, config.DefaultRules())
	if score != 1 || len(reasons) != 1 || reasons[0] != "RSI: bullish momentum" {
		t.Errorf("got (%d, %v), want bullish point", score, reasons)
	}
}

func TestActionForScore_Thresholds(t *testing.T) {
	tests := []struct {
		score int
		want  model.Action
	}{
		{-4, model.ActionSell},
		{-2, model.ActionSell},
		{-1, model.ActionHold},
		{0, model.ActionHold},
		{1, model.ActionHold},
		{2, model.ActionBuy},
		{4, model.ActionBuy},
	}
	for _, tt := range tests {
		if got := model.ActionForScore(tt.score, 2); got != tt.want {
			t.Errorf("score %d: got %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestBuildSnapshot_NilBookLeavesImbalanceUndefined(t *testing.T) {
	candles := candlesFrom([]float64{1, 2, 3}, 10)
	snap := BuildSnapshot(candles, nil, config.DefaultRules(), 0)
	if snap.OrderBookImbalance.Valid {
		t.Error("imbalance should stay undefined without a depth snapshot")
	}
}

func TestBuildSnapshot_BookImbalance(t *testing.T) {
	candles := candlesFrom([]float64{1, 2, 3}, 10)
	book := &model.OrderBook{
		Bids: []model.PriceLevel{{Price: 1, Quantity: 30}},
		Asks: []model.PriceLevel{{Price: 1, Quantity: 10}},
	}
	snap := BuildSnapshot(candles, book, config.DefaultRules(), 0)
	if !snap.OrderBookImbalance.Valid || snap.OrderBookImbalance.Float64 != 0.5 {
		t.Errorf("imbalance = %+v, want 0.5", snap.OrderBookImbalance)
	}
}

func TestBuildSnapshot_ATRSkippedWhenPeriodNonPositive(t *testing.T) {
	candles := candlesFrom([]float64{1, 2, 3, 4, 5}, 10)
	snap := BuildSnapshot(candles, nil, config.DefaultRules(), 0)
	if snap.ATR.Valid {
		t.Error("ATR should be skipped for non-positive period")
	}
	snap = BuildSnapshot(candles, nil, config.DefaultRules(), 2)
	if !snap.ATR.Valid {
		t.Error("ATR should be computed for period 2 over five bars")
	}
}
