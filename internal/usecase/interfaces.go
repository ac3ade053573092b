package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// RecordStore is a string-keyed store of textual records.
type RecordStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// TextSink displays a single line of text.
type TextSink interface {
	SetText(text string)
}

// ListSink displays an ordered list of rows.
type ListSink interface {
	Clear()
	Append(row Row)
}

// ChartRenderer builds a chart from a spec. Each call replaces the chart
// built by the previous call, disposing of it first.
type ChartRenderer interface {
	Render(ctx context.Context, spec domain.ChartSpec) error
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// Prompter asks the user for a line of text. ok is false when the user
// cancels.
type Prompter interface {
	Prompt(ctx context.Context, message string) (value string, ok bool, err error)
}

// TransactionForm is the input surface of a new transaction.
type TransactionForm interface {
	Fields() domain.TransactionInput
	Reset()
}

// Recorder receives ledger activity for metrics.
type Recorder interface {
	TransactionAdded(kind domain.TransactionType, amount decimal.Decimal)
	TransactionRejected()
	CardAdded()
	BalanceChanged(balance decimal.Decimal)
}
