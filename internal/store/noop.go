package store

import "TradeSentinel/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) InsertCandles(_ []model.Candle) (int, error) { return 0, nil }

func (n *NoopStore) LoadCandles(_, _ string) ([]model.Candle, error) { return nil, nil }

func (n *NoopStore) SaveSignal(_ *model.Signal) error { return nil }

func (n *NoopStore) LatestSignal(_, _ string) (*model.Signal, error) { return nil, nil }

func (n *NoopStore) Close() error { return nil }
