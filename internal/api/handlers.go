package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"TradeSentinel/internal/backtest"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/planner"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "tradesentinel",
		"version": serviceVersion,
	})
}

func (s *Server) pairParam(c *gin.Context) (pair, timeframe string) {
	pair = strings.ToUpper(c.Param("pair"))
	timeframe = c.DefaultQuery("timeframe", s.cfg.Exchange.Timeframes[0])
	return pair, timeframe
}

// handleCandles returns stored candles, ascending, optionally limited to
// the most recent N.
func (s *Server) handleCandles(c *gin.Context) {
	pair, timeframe := s.pairParam(c)

	candles, err := s.store.LoadCandles(pair, timeframe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		if limit < len(candles) {
			candles = candles[len(candles)-limit:]
		}
	}

	c.JSON(http.StatusOK, gin.H{"pair": pair, "timeframe": timeframe, "candles": candles})
}

// handleSignal evaluates a fresh signal from stored history.
func (s *Server) handleSignal(c *gin.Context) {
	pair, timeframe := s.pairParam(c)

	sig, _, err := s.collector.Evaluate(pair, timeframe, s.cfg.Rules, s.cfg.Risk.ATRPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sig == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history stored for pair/timeframe"})
		return
	}
	c.JSON(http.StatusOK, sig)
}

// handleLatestSignal returns the most recent persisted signal.
func (s *Server) handleLatestSignal(c *gin.Context) {
	pair, timeframe := s.pairParam(c)

	sig, err := s.store.LatestSignal(pair, timeframe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sig == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no signal stored for pair/timeframe"})
		return
	}
	c.JSON(http.StatusOK, sig)
}

// handlePlan evaluates a signal and sizes it. The balance query parameter
// overrides the tracked account balance.
func (s *Server) handlePlan(c *gin.Context) {
	pair, timeframe := s.pairParam(c)

	sig, snap, err := s.collector.Evaluate(pair, timeframe, s.cfg.Rules, s.cfg.Risk.ATRPeriod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sig == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history stored for pair/timeframe"})
		return
	}

	balance := decimal.NewFromFloat(s.account.Balance())
	if balStr := c.Query("balance"); balStr != "" {
		bal, err := decimal.NewFromString(balStr)
		if err != nil || bal.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "balance must be a non-negative number"})
			return
		}
		balance = bal
	}

	c.JSON(http.StatusOK, planner.Plan(sig, snap.ATR, s.cfg.Risk, balance))
}

type backtestRequest struct {
	Pair      string `json:"pair" binding:"required"`
	Timeframe string `json:"timeframe" binding:"required"`
}

// handleBacktest replays stored history through the scoring engine.
func (s *Server) handleBacktest(c *gin.Context) {
	var req backtestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := s.store.LoadCandles(strings.ToUpper(req.Pair), req.Timeframe)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sum, err := backtest.Run(history, s.cfg.Rules)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.BacktestsRun.Inc()

	c.JSON(http.StatusOK, gin.H{
		"pair":      strings.ToUpper(req.Pair),
		"timeframe": req.Timeframe,
		"summary":   sum,
	})
}
