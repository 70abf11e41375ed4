package utils

import "github.com/shopspring/decimal"

// Display formatting only: stored amounts are never mutated here. The base
// currency is shown with 2 decimal places, the secondary currency with 0.
const (
	BaseCurrencyPrecision      = 2
	SecondaryCurrencyPrecision = 0
)

// FormatBaseAmount formats a base-currency amount for display.
// Example: 12.3456 -> "12.35"
func FormatBaseAmount(amount decimal.Decimal) string {
	return amount.StringFixed(BaseCurrencyPrecision)
}

// FormatSecondaryAmount converts a base-currency amount into the secondary
// currency using the supplied scalar rate and formats it for display.
// Example: 100 at rate 61.5 -> "6150"
func FormatSecondaryAmount(amount, rate decimal.Decimal) string {
	return amount.Mul(rate).StringFixed(SecondaryCurrencyPrecision)
}

// FormatWithPrecision formats an amount with the given number of decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
