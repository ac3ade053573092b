package usecase

// Record keys.
const (
	BalanceKey      = "balance"
	TransactionsKey = "transactions"
	CardsKey        = "cards"
)

// CardPrompt is the question asked when adding a card.
const CardPrompt = "Enter card number:"
