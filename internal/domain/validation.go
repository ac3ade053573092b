package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the longest leading decimal literal of a string.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// maxExponent bounds the exponent read before any digits are expanded. Every
// finite float64 is reachable well inside it.
const maxExponent = 1000

// ParseAmount reads a decimal from user or stored text. Leading whitespace is
// skipped and the longest numeric prefix is used, so "12.5abc" reads as 12.5.
// It reports false when no number can be read or the value overflows float64.
// Values too small for float64 read as zero.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	m := numericPrefix.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}

	sign := ""
	if m[0][0] == '-' {
		sign = "-"
	}
	mantissa := strings.TrimSuffix(m[1], ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}

	if m[2] != "" {
		exp, err := strconv.Atoi(m[2][1:])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			switch {
			case strings.Trim(mantissa, "0.") == "":
				return decimal.Zero, true
			case strings.HasPrefix(m[2][1:], "-"):
				return decimal.Zero, true
			default:
				return decimal.Zero, false
			}
		}
	}

	d, err := decimal.NewFromString(sign + mantissa + m[2])
	if err != nil {
		return decimal.Zero, false
	}

	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}

	return d, true
}

// TransactionInput holds the raw form values of a new transaction.
type TransactionInput struct {
	Description string
	Amount      string
	Type        string
}

// NewTransaction validates input and builds a Transaction. The description is
// trimmed; the amount must parse and be greater than zero.
func NewTransaction(input TransactionInput) (Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, ErrEmptyDescription)
	}

	amount, ok := ParseAmount(input.Amount)
	if !ok || !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %w", ErrInvalidTransaction, ErrInvalidAmount)
	}

	return Transaction{
		Description: description,
		Amount:      amount,
		Type:        TransactionType(input.Type),
	}, nil
}
