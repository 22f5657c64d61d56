package generator

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places. Every rounded
// amount in the pipeline goes through this helper so float64 accumulation
// stays honest at the rounding points.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
