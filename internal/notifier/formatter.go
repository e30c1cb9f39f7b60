package notifier

import (
	"fmt"
	"strings"
	"time"

	"TradeSentinel/internal/backtest"
	"TradeSentinel/internal/model"
)

func actionEmoji(action model.Action) string {
	switch action {
	case model.ActionBuy:
		return "🟢"
	case model.ActionSell:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatSignal formats a signal into a Telegram HTML message.
func FormatSignal(sig *model.Signal) string {
	var b strings.Builder
	ts := time.UnixMilli(sig.Timestamp).UTC().Format("2006-01-02 15:04")

	b.WriteString(fmt.Sprintf("%s <b>%s %s</b> | %s %s\n", actionEmoji(sig.Action),
		sig.Pair, sig.Timeframe, sig.Action, ts))
	b.WriteString(fmt.Sprintf("Price: %.4f | Score: %+d\n", sig.LastPrice, sig.Score))

	if len(sig.Reasons) > 0 {
		b.WriteString("\n<b>Rationale:</b>\n")
		for _, r := range sig.Reasons {
			b.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}
	return b.String()
}

// FormatTradePlan formats a trade plan into a Telegram HTML message.
func FormatTradePlan(plan *model.TradePlan) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s <b>Trade plan</b> %s %s\n", actionEmoji(plan.Action), plan.Pair, plan.Action))
	b.WriteString(fmt.Sprintf("Size: %s quote\n", plan.OrderSizeQuote.StringFixed(2)))
	if plan.StopLoss != nil {
		b.WriteString(fmt.Sprintf("Stop loss: %s\n", plan.StopLoss.String()))
	}
	if plan.TakeProfit != nil {
		b.WriteString(fmt.Sprintf("Take profit: %s\n", plan.TakeProfit.String()))
	}
	if len(plan.Reasons) > 0 {
		b.WriteString("\n")
		for _, r := range plan.Reasons {
			b.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}
	return b.String()
}

// FormatBacktest formats a backtest summary into a Telegram HTML message.
func FormatBacktest(pair, timeframe string, sum backtest.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Backtest</b> %s %s\n\n", pair, timeframe))
	b.WriteString(fmt.Sprintf("Trades: %d\n", sum.Trades))
	b.WriteString(fmt.Sprintf("Wins: %d | Losses: %d\n", sum.Wins, sum.Losses))
	b.WriteString(fmt.Sprintf("Win rate: %.1f%%\n", sum.WinRate*100))
	return b.String()
}
