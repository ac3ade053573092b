package domain

import "github.com/shopspring/decimal"

// FormatMoney renders an amount as "$" followed by the value with two
// decimals. Negative values keep the sign after the dollar: "$-4.50".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatSignedAmount renders a transaction amount the way the list shows it,
// such as "+ $4.50" or "- $4.50".
func FormatSignedAmount(t Transaction) string {
	return t.Sign() + " " + FormatMoney(t.Amount)
}
