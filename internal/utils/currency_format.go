package utils

import "github.com/shopspring/decimal"

// FormatWithPrecision formats an amount with exactly precision fractional digits.
// Example: amount -1.5 with precision 2 returns "-1.50"
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
