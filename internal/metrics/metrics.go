// Package metrics exposes the engine's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CandlesInserted counts candle rows accepted by the store.
	CandlesInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradesentinel_candles_inserted_total",
		Help: "Number of candle rows inserted into the store.",
	})

	// CandlesDropped counts malformed rows rejected during validation.
	CandlesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradesentinel_candles_dropped_total",
		Help: "Number of malformed candle rows dropped before the store.",
	})

	// SignalsEvaluated counts scoring evaluations by resulting action.
	SignalsEvaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradesentinel_signals_evaluated_total",
		Help: "Number of signal evaluations, labelled by action.",
	}, []string{"action"})

	// BacktestsRun counts backtest executions.
	BacktestsRun = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tradesentinel_backtests_run_total",
		Help: "Number of backtest runs.",
	})
)
