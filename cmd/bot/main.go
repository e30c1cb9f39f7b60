package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TradeSentinel/internal/account"
	"TradeSentinel/internal/api"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/logging"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/scheduler"
	"TradeSentinel/internal/store"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fallbackLog := logging.New("info")
		fallbackLog.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(cfg.LogLevel)
	log.Info().Msg("TradeSentinel starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite store failed, using noop")
			st = store.NewNoopStore()
		} else {
			st = ss
			defer ss.Close()
		}
	} else {
		st = store.NewNoopStore()
	}

	// Init fetcher and collector
	fetcher := collector.NewBinanceFetcher(cfg.Exchange.BaseURL, cfg.Proxy, log)
	log.Info().Str("source", fetcher.Name()).Strs("pairs", cfg.Exchange.Pairs).Msg("data source ready")
	col := collector.New(fetcher, st, cfg.Exchange.KlineLimit, cfg.Exchange.DepthLimit, log)

	// Init paper account
	acct, err := account.NewManager(cfg.Account.StateFile, cfg.Account.InitialBalance)
	if err != nil {
		log.Fatal().Err(err).Msg("init account manager")
	}

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	} else {
		log.Warn().Msg("telegram not configured, notifications disabled")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, st, acct, tn, cfg, log)
	if err := sched.RegisterAll(); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	// Start HTTP API
	srv := api.NewServer(st, col, acct, cfg, log)
	go func() {
		if err := srv.Run(cfg.Server.ListenAddr); err != nil {
			log.Error().Err(err).Msg("http server")
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, evaluating now")
		go sched.RunEvaluateNow()
	}

	log.Info().Msg("TradeSentinel is running")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	cancel()
	log.Info().Msg("TradeSentinel stopped")
}
