package config

import "fmt"

// Rules holds the scoring-rule thresholds. All fields have documented
// defaults; overrides are applied once at load time, never merged at
// evaluation time.
type Rules struct {
	FastSMA                int     `yaml:"fast_sma"`
	SlowSMA                int     `yaml:"slow_sma"`
	RSIPeriod              int     `yaml:"rsi_period"`
	RSIBuyMin              float64 `yaml:"rsi_buy_min"`
	RSIBuyMax              float64 `yaml:"rsi_buy_max"`
	RSISellMin             float64 `yaml:"rsi_sell_min"`
	RSISellMax             float64 `yaml:"rsi_sell_max"`
	OrderbookImbalanceBuy  float64 `yaml:"orderbook_imbalance_buy"`
	OrderbookImbalanceSell float64 `yaml:"orderbook_imbalance_sell"`
	VolumeSpikeMultiplier  float64 `yaml:"volume_spike_multiplier"`
	MinSignalScore         int     `yaml:"min_signal_score"`
}

// DefaultRules returns the documented rule defaults.
func DefaultRules() Rules {
	return Rules{
		FastSMA:                9,
		SlowSMA:                21,
		RSIPeriod:              14,
		RSIBuyMin:              50,
		RSIBuyMax:              70,
		RSISellMin:             30,
		RSISellMax:             50,
		OrderbookImbalanceBuy:  0.1,
		OrderbookImbalanceSell: -0.1,
		VolumeSpikeMultiplier:  1.5,
		MinSignalScore:         2,
	}
}

// RiskConfig holds the position-sizing parameters. Immutable during a run.
type RiskConfig struct {
	RiskPerTradePct float64 `yaml:"risk_per_trade_pct"`
	MaxPositionPct  float64 `yaml:"max_position_pct"`
	ATRPeriod       int     `yaml:"atr_period"`
	ATRMultiplierSL float64 `yaml:"atr_multiplier_sl"`
	ATRMultiplierTP float64 `yaml:"atr_multiplier_tp"`
	MinSignalScore  int     `yaml:"min_signal_score"`
}

// DefaultRiskConfig returns the documented risk defaults.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		RiskPerTradePct: 1.0,
		MaxPositionPct:  10.0,
		ATRPeriod:       14,
		ATRMultiplierSL: 1.5,
		ATRMultiplierTP: 3.0,
		MinSignalScore:  2,
	}
}

// ApplyOverrides applies a flat key/value map of recognized keys onto the
// rules and risk config. Unrecognized keys are reported as an error so a
// typo in a config file does not silently fall back to a default.
func ApplyOverrides(rules *Rules, risk *RiskConfig, overrides map[string]float64) error {
	for key, v := range overrides {
		switch key {
		case "FAST_SMA":
			rules.FastSMA = int(v)
		case "SLOW_SMA":
			rules.SlowSMA = int(v)
		case "RSI_PERIOD":
			rules.RSIPeriod = int(v)
		case "RSI_BUY_MIN":
			rules.RSIBuyMin = v
		case "RSI_BUY_MAX":
			rules.RSIBuyMax = v
		case "RSI_SELL_MIN":
			rules.RSISellMin = v
		case "RSI_SELL_MAX":
			rules.RSISellMax = v
		case "ORDERBOOK_IMBALANCE_BUY":
			rules.OrderbookImbalanceBuy = v
		case "ORDERBOOK_IMBALANCE_SELL":
			rules.OrderbookImbalanceSell = v
		case "VOLUME_SPIKE_MULTIPLIER":
			rules.VolumeSpikeMultiplier = v
		case "MIN_SIGNAL_SCORE":
			rules.MinSignalScore = int(v)
			risk.MinSignalScore = int(v)
		case "RISK_PER_TRADE_PCT":
			risk.RiskPerTradePct = v
		case "MAX_POSITION_PCT":
			risk.MaxPositionPct = v
		case "ATR_PERIOD":
			risk.ATRPeriod = int(v)
		case "ATR_MULTIPLIER_SL":
			risk.ATRMultiplierSL = v
		case "ATR_MULTIPLIER_TP":
			risk.ATRMultiplierTP = v
		default:
			return fmt.Errorf("unrecognized override key %q", key)
		}
	}
	return nil
}
