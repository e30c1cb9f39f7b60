package model

// Value is a float that may be undefined. Indicator series use it to mark
// entries where the lookback window has not filled yet, so the scorer can
// skip a rule cleanly instead of reading a silently biased zero.
type Value struct {
	Float64 float64
	Valid   bool
}

// Defined wraps a float in a valid Value.
func Defined(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Undefined is the zero Value.
var Undefined = Value{}
