package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []domain.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionResponse{
			Description: t.Description,
			Amount:      t.Amount,
			Type:        string(t.Type),
		}
	}
	return result
}

// CardResponse represents a card in API responses.
type CardResponse struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// CardsFromDomain converts domain cards to responses.
func CardsFromDomain(cards []domain.Card) []CardResponse {
	result := make([]CardResponse, len(cards))
	for i, c := range cards {
		result[i] = CardResponse{Number: c.Number, Label: c.Label()}
	}
	return result
}

// SummaryResponse represents the expense summary.
type SummaryResponse struct {
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
	Lines        []string        `json:"lines"`
}

// SummaryFromDomain converts a summary and the running balance to a response.
func SummaryFromDomain(balance decimal.Decimal, s domain.Summary) *SummaryResponse {
	return &SummaryResponse{
		Balance:      balance,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Net:          s.Net,
		Lines:        s.Lines(),
	}
}

// ReconciliationResponse represents a balance check.
type ReconciliationResponse struct {
	Recorded    decimal.Decimal `json:"recorded"`
	Derived     decimal.Decimal `json:"derived"`
	Difference  decimal.Decimal `json:"difference"`
	Reconciled  bool            `json:"reconciled"`
	LastChecked time.Time       `json:"last_checked"`
}

// ReconciliationFromDomain converts a reconciliation to a response.
func ReconciliationFromDomain(r *domain.Reconciliation) *ReconciliationResponse {
	return &ReconciliationResponse{
		Recorded:    r.Recorded,
		Derived:     r.Derived,
		Difference:  r.Difference,
		Reconciled:  r.Reconciled,
		LastChecked: r.LastChecked,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
