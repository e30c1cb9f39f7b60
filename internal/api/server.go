// Package api exposes the engine over HTTP for dashboards and reporting
// collaborators. The API is read/compute only: it never places orders.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"TradeSentinel/internal/account"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/store"
)

const serviceVersion = "1.0.0"

// Server handles HTTP requests using the Gin framework.
type Server struct {
	engine    *gin.Engine
	srv       *http.Server
	store     store.Store
	collector *collector.Collector
	account   *account.Manager
	cfg       *config.Config
	log       zerolog.Logger
}

// NewServer wires routes and middleware.
func NewServer(st store.Store, col *collector.Collector, acct *account.Manager, cfg *config.Config, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	s := &Server{
		engine:    engine,
		store:     st,
		collector: col,
		account:   acct,
		cfg:       cfg,
		log:       logger.With().Str("component", "api").Logger(),
	}

	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(corsMiddleware())
	engine.Use(s.accessLogMiddleware())

	engine.GET("/health", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/candles/:pair", s.handleCandles)
		v1.GET("/signal/:pair", s.handleSignal)
		v1.GET("/signal/:pair/latest", s.handleLatestSignal)
		v1.GET("/plan/:pair", s.handlePlan)
		v1.POST("/backtest", s.handleBacktest)
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("http server listening")
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
