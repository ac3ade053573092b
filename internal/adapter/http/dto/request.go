package dto

import "github.com/iho/pocketledger/internal/domain"

// CreateTransactionRequest represents a request to add a transaction.
// Amount is text so it is parsed the same way as the page form.
type CreateTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
}

// Fields returns the request as transaction input.
func (r *CreateTransactionRequest) Fields() domain.TransactionInput {
	return domain.TransactionInput{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        r.Type,
	}
}

// Reset clears the request after it has been applied.
func (r *CreateTransactionRequest) Reset() { *r = CreateTransactionRequest{} }

// CreateCardRequest represents a request to add a card.
type CreateCardRequest struct {
	Number string `json:"number"`
}
