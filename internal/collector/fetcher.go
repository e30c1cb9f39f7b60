package collector

import "TradeSentinel/internal/model"

// Fetcher retrieves raw market data from an exchange. Implementations own
// all network I/O and timeout policy; the engine core only ever sees
// already-resolved in-memory sequences.
type Fetcher interface {
	FetchKlines(pair, timeframe string, limit int) ([]model.Candle, error)
	FetchOrderBook(pair string, limit int) (*model.OrderBook, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Klines []model.Candle
	Book   *model.OrderBook
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchKlines(_, _ string, _ int) ([]model.Candle, error) {
	return m.Klines, m.Err
}

func (m *MockFetcher) FetchOrderBook(_ string, _ int) (*model.OrderBook, error) {
	return m.Book, m.Err
}
