package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TradeSentinel/internal/account"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/store"
)

func storedCandles(n int) []model.Candle {
	out := make([]model.Candle, n)
	for i := range out {
		c := 100 + float64(i)
		out[i] = model.Candle{
			Source:    "mock",
			Pair:      "BTCUSDT",
			Timeframe: "1m",
			Timestamp: int64(i+1) * 60_000,
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c + 0.5,
			Volume:    10,
		}
	}
	return out
}

func newTestServer(t *testing.T, seed []model.Candle) *Server {
	t.Helper()
	dir := t.TempDir()

	st, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	if len(seed) > 0 {
		_, err = st.InsertCandles(seed)
		require.NoError(t, err)
	}

	cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
	require.NoError(t, err)

	acct, err := account.NewManager(filepath.Join(dir, "state.json"), cfg.Account.InitialBalance)
	require.NoError(t, err)

	col := collector.New(&collector.MockFetcher{}, st, cfg.Exchange.KlineLimit, cfg.Exchange.DepthLimit, zerolog.Nop())
	return NewServer(st, col, acct, cfg, zerolog.Nop())
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleCandles(t *testing.T) {
	s := newTestServer(t, storedCandles(5))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/candles/btcusdt?timeframe=1m", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pair    string         `json:"pair"`
		Candles []model.Candle `json:"candles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BTCUSDT", body.Pair, "pair path param is uppercased")
	assert.Len(t, body.Candles, 5)
}

func TestHandleCandles_Limit(t *testing.T) {
	s := newTestServer(t, storedCandles(5))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/candles/BTCUSDT?limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Candles []model.Candle `json:"candles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Candles, 2)
	assert.Equal(t, int64(4*60_000), body.Candles[0].Timestamp, "limit keeps the newest rows")

	rec = doRequest(t, s, http.MethodGet, "/api/v1/candles/BTCUSDT?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSignal(t *testing.T) {
	s := newTestServer(t, storedCandles(5))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/signal/BTCUSDT", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sig model.Signal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sig))
	assert.Equal(t, "BTCUSDT", sig.Pair)
	assert.Equal(t, model.ActionHold, sig.Action, "five bars cannot fill any indicator window")
}

func TestHandleSignal_NoHistory(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodGet, "/api/v1/signal/BTCUSDT", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleLatestSignal_NoneStored(t *testing.T) {
	rec := doRequest(t, newTestServer(t, storedCandles(5)), http.MethodGet, "/api/v1/signal/BTCUSDT/latest", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePlan(t *testing.T) {
	s := newTestServer(t, storedCandles(30))

	rec := doRequest(t, s, http.MethodGet, "/api/v1/plan/BTCUSDT", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var plan model.TradePlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, "BTCUSDT", plan.Pair)

	rec = doRequest(t, s, http.MethodGet, "/api/v1/plan/BTCUSDT?balance=-5", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBacktest(t *testing.T) {
	s := newTestServer(t, storedCandles(30))

	body, _ := json.Marshal(map[string]string{"pair": "btcusdt", "timeframe": "1m"})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/backtest", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Pair    string `json:"pair"`
		Summary struct {
			Trades  int     `json:"trades"`
			WinRate float64 `json:"win_rate"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BTCUSDT", resp.Pair)
}

func TestHandleBacktest_MissingFields(t *testing.T) {
	s := newTestServer(t, nil)
	body, _ := json.Marshal(map[string]string{"pair": "BTCUSDT"})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/backtest", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	rec := doRequest(t, newTestServer(t, nil), http.MethodOptions, "/api/v1/candles/BTCUSDT", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
