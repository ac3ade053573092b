package domain

import "errors"

var (
	// Input errors
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrEmptyDescription   = errors.New("description cannot be empty")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
)

// InvalidTransactionMessage is shown to the user when a transaction is rejected.
const InvalidTransactionMessage = "Please enter a valid description and amount."
