package store

import "TradeSentinel/internal/model"

// Store is the durable ledger for candles and the latest signal per bar.
// Candle inserts are idempotent: rows whose identity key already exists
// are silently ignored. Signal saves replace on conflict, so the latest
// recomputation wins.
type Store interface {
	InsertCandles(rows []model.Candle) (int, error)
	LoadCandles(pair, timeframe string) ([]model.Candle, error)
	SaveSignal(sig *model.Signal) error
	LatestSignal(pair, timeframe string) (*model.Signal, error)
	Close() error
}
