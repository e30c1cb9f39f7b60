package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"TradeSentinel/internal/account"
	"TradeSentinel/internal/backtest"
	"TradeSentinel/internal/collector"
	"TradeSentinel/internal/config"
	"TradeSentinel/internal/metrics"
	"TradeSentinel/internal/model"
	"TradeSentinel/internal/notifier"
	"TradeSentinel/internal/planner"
	"TradeSentinel/internal/store"
)

// Scheduler runs the periodic evaluation and reporting tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Store     store.Store
	Account   *account.Manager
	Notifier  *notifier.TelegramNotifier
	Cfg       *config.Config
	Ctx       context.Context
	log       zerolog.Logger
}

// NewScheduler creates a Scheduler. Notifier may be nil when Telegram is
// not configured; notifications are then skipped.
func NewScheduler(ctx context.Context, col *collector.Collector, st store.Store, acct *account.Manager,
	tn *notifier.TelegramNotifier, cfg *config.Config, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Store:     st,
		Account:   acct,
		Notifier:  tn,
		Cfg:       cfg,
		Ctx:       ctx,
		log:       logger.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterAll registers the evaluation and report tasks.
func (s *Scheduler) RegisterAll() error {
	if _, err := s.Cron.AddFunc(s.Cfg.Schedule.EvaluateCron, s.evaluateTask); err != nil {
		return fmt.Errorf("register evaluate task: %w", err)
	}
	if _, err := s.Cron.AddFunc(s.Cfg.Schedule.ReportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunEvaluateNow executes the evaluation task immediately (manual trigger
// or RUN_ON_START).
func (s *Scheduler) RunEvaluateNow() {
	s.evaluateTask()
}

// evaluateTask syncs and scores every configured pair/timeframe. Signals
// are persisted; actionable ones are sized and sent out.
func (s *Scheduler) evaluateTask() {
	for _, pair := range s.Cfg.Exchange.Pairs {
		for _, timeframe := range s.Cfg.Exchange.Timeframes {
			s.evaluateOne(pair, timeframe)
		}
	}
}

func (s *Scheduler) evaluateOne(pair, timeframe string) {
	inserted, dropped, err := s.Collector.Sync(pair, timeframe)
	if err != nil {
		s.log.Error().Err(err).Str("pair", pair).Str("timeframe", timeframe).Msg("sync failed")
		return
	}
	if dropped > 0 {
		s.log.Warn().Str("pair", pair).Int("dropped", dropped).Msg("malformed candles dropped")
	}

	sig, snap, err := s.Collector.Evaluate(pair, timeframe, s.Cfg.Rules, s.Cfg.Risk.ATRPeriod)
	if err != nil {
		s.log.Error().Err(err).Str("pair", pair).Str("timeframe", timeframe).Msg("evaluate failed")
		return
	}
	if sig == nil {
		s.log.Warn().Str("pair", pair).Str("timeframe", timeframe).Msg("no history yet, signal unavailable")
		return
	}

	if err := s.Store.SaveSignal(sig); err != nil {
		s.log.Error().Err(err).Str("pair", pair).Msg("save signal failed")
	}

	s.log.Info().Str("pair", pair).Str("timeframe", timeframe).
		Str("action", string(sig.Action)).Int("score", sig.Score).
		Int("inserted", inserted).Msg("evaluated")

	if sig.Action == model.ActionHold {
		return
	}

	balance := decimal.NewFromFloat(s.Account.Balance())
	plan := planner.Plan(sig, snap.ATR, s.Cfg.Risk, balance)
	s.trySend(notifier.FormatSignal(sig) + "\n" + notifier.FormatTradePlan(plan))
}

// reportTask backtests stored history for every configured pair/timeframe
// and sends a summary.
func (s *Scheduler) reportTask() {
	for _, pair := range s.Cfg.Exchange.Pairs {
		for _, timeframe := range s.Cfg.Exchange.Timeframes {
			history, err := s.Store.LoadCandles(pair, timeframe)
			if err != nil {
				s.log.Error().Err(err).Str("pair", pair).Msg("load history failed")
				continue
			}
			sum, err := backtest.Run(history, s.Cfg.Rules)
			if err != nil {
				s.log.Error().Err(err).Str("pair", pair).Msg("backtest failed")
				continue
			}
			metrics.BacktestsRun.Inc()
			s.trySend(notifier.FormatBacktest(pair, timeframe, sum))
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	pair := s.Cfg.Exchange.Pairs[0]
	timeframe := s.Cfg.Exchange.Timeframes[0]
	if len(fields) > 1 {
		pair = strings.ToUpper(fields[1])
	}
	if len(fields) > 2 {
		timeframe = fields[2]
	}

	switch fields[0] {
	case "/signal":
		sig, _, err := s.Collector.Evaluate(pair, timeframe, s.Cfg.Rules, s.Cfg.Risk.ATRPeriod)
		if err != nil {
			return fmt.Sprintf("evaluate failed: %v", err)
		}
		if sig == nil {
			return fmt.Sprintf("no history stored for %s %s yet", pair, timeframe)
		}
		return notifier.FormatSignal(sig)

	case "/plan":
		sig, snap, err := s.Collector.Evaluate(pair, timeframe, s.Cfg.Rules, s.Cfg.Risk.ATRPeriod)
		if err != nil {
			return fmt.Sprintf("evaluate failed: %v", err)
		}
		if sig == nil {
			return fmt.Sprintf("no history stored for %s %s yet", pair, timeframe)
		}
		balance := decimal.NewFromFloat(s.Account.Balance())
		return notifier.FormatTradePlan(planner.Plan(sig, snap.ATR, s.Cfg.Risk, balance))

	case "/backtest":
		history, err := s.Store.LoadCandles(pair, timeframe)
		if err != nil {
			return fmt.Sprintf("load history failed: %v", err)
		}
		sum, err := backtest.Run(history, s.Cfg.Rules)
		if err != nil {
			return fmt.Sprintf("backtest failed: %v", err)
		}
		metrics.BacktestsRun.Inc()
		return notifier.FormatBacktest(pair, timeframe, sum)

	case "/balance":
		if len(fields) > 1 {
			amount, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return "usage: /balance [amount]"
			}
			if err := s.Account.SetBalance(amount); err != nil {
				return err.Error()
			}
		}
		return fmt.Sprintf("available quote balance: %.2f", s.Account.Balance())

	default:
		return helpText
	}
}

const helpText = "Commands:\n" +
	"• /signal [pair] [timeframe]\n" +
	"• /plan [pair] [timeframe]\n" +
	"• /backtest [pair] [timeframe]\n" +
	"• /balance [amount]"

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.log.Error().Err(err).Msg("send notification")
	}
}
