package model

import "time"

// AccountState is the locally tracked paper balance in quote currency.
// No exchange credentials are involved; the balance feeds the trade
// planner and is adjusted by the operator.
type AccountState struct {
	QuoteBalance float64   `json:"quote_balance"`
	UpdatedAt    time.Time `json:"updated_at"`
}
