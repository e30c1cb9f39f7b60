package model

import "github.com/shopspring/decimal"

// TradePlan is the risk-bounded sizing for an actionable signal.
// OrderSizeQuote is the ideal position value in quote currency; the
// order-placement collaborator quantizes it against exchange lot rules.
// StopLoss/TakeProfit are nil when sizing was skipped.
type TradePlan struct {
	Pair           string           `json:"pair"`
	Action         Action           `json:"action"`
	Score          int              `json:"score"`
	OrderSizeQuote decimal.Decimal  `json:"order_size_quote"`
	StopLoss       *decimal.Decimal `json:"stop_loss"`
	TakeProfit     *decimal.Decimal `json:"take_profit"`
	Reasons        []string         `json:"reasons"`
}

// LotSize carries the exchange quantization rules for one tradable pair.
type LotSize struct {
	StepSize decimal.Decimal `json:"step_size"`
	MinQty   decimal.Decimal `json:"min_qty"`
}
