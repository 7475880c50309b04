package entities

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary value with exactly two fraction digits,
// e.g. 10 -> "10.00". Halfway values round away from zero (10.005 -> "10.01").
// Every amount sent to the gateway goes through this single formatter.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
