package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"TradeSentinel/internal/model"
)

// BinanceFetcher reads public market data from the Binance spot REST API.
// No credentials are used; all endpoints are read-only.
type BinanceFetcher struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewBinanceFetcher creates a fetcher with optional proxy support.
func NewBinanceFetcher(baseURL, proxyURL string, logger zerolog.Logger) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BinanceFetcher{
		baseURL: baseURL,
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		log: logger.With().Str("component", "binance").Logger(),
	}
}

func (b *BinanceFetcher) Name() string { return "binance" }

// FetchKlines fetches closed candles for a pair/timeframe. Rows the
// exchange returns in an unexpected shape are skipped with a warning;
// semantic validation happens later in the collector.
func (b *BinanceFetcher) FetchKlines(pair, timeframe string, limit int) ([]model.Candle, error) {
	endpoint := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		b.baseURL, url.QueryEscape(pair), url.QueryEscape(timeframe), limit)

	body, err := b.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch klines: %w", err)
	}

	var raw [][]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode klines: %w", err)
	}

	candles := make([]model.Candle, 0, len(raw))
	for _, row := range raw {
		c, err := parseKline(row, pair, timeframe)
		if err != nil {
			b.log.Warn().Err(err).Str("pair", pair).Msg("skipping malformed kline row")
			continue
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// parseKline converts one Binance kline row
// [openTime, "open", "high", "low", "close", "volume", ...] to a Candle.
func parseKline(row []any, pair, timeframe string) (model.Candle, error) {
	if len(row) < 6 {
		return model.Candle{}, fmt.Errorf("kline row has %d fields, want at least 6", len(row))
	}
	ts, ok := row[0].(float64)
	if !ok {
		return model.Candle{}, fmt.Errorf("kline open time is not numeric")
	}

	fields := make([]float64, 5)
	for i := 1; i <= 5; i++ {
		s, ok := row[i].(string)
		if !ok {
			return model.Candle{}, fmt.Errorf("kline field %d is not a string", i)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Candle{}, fmt.Errorf("parse kline field %d: %w", i, err)
		}
		fields[i-1] = v
	}

	return model.Candle{
		Source:    "binance",
		Pair:      pair,
		Timeframe: timeframe,
		Timestamp: int64(ts),
		Open:      fields[0],
		High:      fields[1],
		Low:       fields[2],
		Close:     fields[3],
		Volume:    fields[4],
	}, nil
}

// FetchOrderBook fetches aggregated depth for a pair.
func (b *BinanceFetcher) FetchOrderBook(pair string, limit int) (*model.OrderBook, error) {
	endpoint := fmt.Sprintf("%s/api/v3/depth?symbol=%s&limit=%d",
		b.baseURL, url.QueryEscape(pair), limit)

	body, err := b.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch depth: %w", err)
	}

	var raw struct {
		Bids [][2]string `json:"bids"`
		Asks [][2]string `json:"asks"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode depth: %w", err)
	}

	book := &model.OrderBook{Pair: pair}
	book.Bids = parseLevels(raw.Bids)
	book.Asks = parseLevels(raw.Asks)
	return book, nil
}

func parseLevels(raw [][2]string) []model.PriceLevel {
	levels := make([]model.PriceLevel, 0, len(raw))
	for _, lvl := range raw {
		price, err1 := strconv.ParseFloat(lvl[0], 64)
		qty, err2 := strconv.ParseFloat(lvl[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		levels = append(levels, model.PriceLevel{Price: price, Quantity: qty})
	}
	return levels
}

func (b *BinanceFetcher) get(endpoint string) ([]byte, error) {
	resp, err := b.client.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
