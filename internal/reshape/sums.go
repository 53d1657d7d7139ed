package reshape

import (
	"math"

	"github.com/pricingdesk/pricing-console/internal/dataset"
)

// SumColumn totals one column of a frame. Missing columns and unparseable
// cells contribute 0 rather than failing.
func SumColumn(f *dataset.Frame, col string) float64 {
	if f == nil || !f.HasColumn(col) {
		return 0
	}
	var total float64
	for _, row := range f.Rows {
		total += row.Float(col)
	}
	return total
}

// SumColumns totals a fixed list of columns across a frame.
func SumColumns(f *dataset.Frame, cols []string) float64 {
	var total float64
	for _, col := range cols {
		total += SumColumn(f, col)
	}
	return total
}

// DivideSums divides the rounded sum of one column by another, 0 when the
// denominator sums to 0.
func DivideSums(f *dataset.Frame, numCol, denCol string) float64 {
	num := round2(SumColumn(f, numCol))
	den := round2(SumColumn(f, denCol))
	if den == 0 {
		return 0
	}
	return round2(num / den)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
