package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single recorded income or expense event.
// Transactions are append-only: they carry no identifier and are never
// changed after being stored.
type Transaction struct {
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
}

// IsIncome reports whether the transaction adds to the balance.
// Any type other than income counts as an expense.
func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// SignedAmount returns the amount as a balance delta.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Sign returns "+" for income and "-" for expense.
func (t Transaction) Sign() string {
	if t.IsIncome() {
		return "+"
	}
	return "-"
}

// Class returns the display class of the amount.
func (t Transaction) Class() string {
	if t.IsIncome() {
		return string(TransactionTypeIncome)
	}
	return string(TransactionTypeExpense)
}

// ApplyTo returns the balance after this transaction.
func (t Transaction) ApplyTo(balance decimal.Decimal) decimal.Decimal {
	return balance.Add(t.SignedAmount())
}

// transactionJSON writes the amount as a bare JSON number.
type transactionJSON struct {
	Description string          `json:"description"`
	Amount      json.Number     `json:"amount"`
	Type        TransactionType `json:"type"`
}

type transactionDecodeJSON struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
}

// MarshalJSON implements json.Marshaler.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(transactionJSON{
		Description: t.Description,
		Amount:      json.Number(t.Amount.String()),
		Type:        t.Type,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Amounts may be numbers or
// quoted decimals.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw transactionDecodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Description = raw.Description
	t.Amount = raw.Amount
	t.Type = raw.Type
	return nil
}
