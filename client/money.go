package client

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with exactly two decimal places,
// e.g. 1750.5 → "1750.50". Display formatting lives here and nowhere else;
// the API always works with raw numbers.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatMoney renders an amount with its currency code, e.g. "1750.50 EUR".
// An empty currency falls back to EUR.
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = "EUR"
	}
	return FormatAmount(amount) + " " + currency
}
