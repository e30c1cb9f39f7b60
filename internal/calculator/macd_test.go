package calculator

import (
	"math"
	"testing"
)

func TestCalculateMACD_FlatSeriesIsZero(t *testing.T) {
	out := CalculateMACD([]float64{5, 5, 5, 5}, 12, 26, 9)
	for i := range out.Line {
		if !out.Line[i].Valid || !out.Signal[i].Valid || !out.Histogram[i].Valid {
			t.Fatalf("entry %d: all MACD lines should be defined from the first bar", i)
		}
		if out.Line[i].Float64 != 0 || out.Signal[i].Float64 != 0 || out.Histogram[i].Float64 != 0 {
			t.Errorf("entry %d: expected zeros on a flat series", i)
		}
	}
}

func TestCalculateMACD_HistogramIsLineMinusSignal(t *testing.T) {
	closes := []float64{1, 3, 2, 5, 4, 8, 6, 9}
	out := CalculateMACD(closes, 3, 6, 2)
	for i := range closes {
		got := out.Histogram[i].Float64
		want := out.Line[i].Float64 - out.Signal[i].Float64
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("entry %d: histogram %.6f != line-signal %.6f", i, got, want)
		}
	}
}

func TestCalculateMACD_RisingSeriesHasPositiveLine(t *testing.T) {
	out := CalculateMACD(seq(1, 30), 3, 10, 5)
	last := out.Line[29]
	if !last.Valid || last.Float64 <= 0 {
		t.Errorf("fast EMA should sit above slow EMA on a rising series, got %+v", last)
	}
}
