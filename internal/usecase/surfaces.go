package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// Span is a piece of text in a row, optionally tagged with a display class.
type Span struct {
	Class string
	Text  string
}

// Row is one entry of a list surface.
type Row struct {
	Class string
	Spans []Span
}

// Text returns the row's spans joined by two spaces.
func (r Row) Text() string {
	parts := make([]string, len(r.Spans))
	for i, s := range r.Spans {
		parts[i] = s.Text
	}
	return strings.Join(parts, "  ")
}

// Surfaces groups the render targets of the ledger. A nil field marks a
// surface that is not present; rendering into it does nothing.
type Surfaces struct {
	Balance      TextSink
	Transactions ListSink
	Cards        ListSink
	Summary      ListSink
	Chart        ChartRenderer
}

func transactionRow(t domain.Transaction) Row {
	return Row{
		Class: "transaction",
		Spans: []Span{
			{Text: t.Description},
			{Class: t.Class(), Text: domain.FormatSignedAmount(t)},
		},
	}
}

func cardRow(c domain.Card) Row {
	return Row{
		Class: "transaction",
		Spans: []Span{{Text: c.Label()}},
	}
}

func summaryRow(line string) Row {
	return Row{Spans: []Span{{Text: line}}}
}

type noopAlerter struct{}

func (noopAlerter) Alert(context.Context, string) {}

type noopPrompter struct{}

func (noopPrompter) Prompt(context.Context, string) (string, bool, error) { return "", false, nil }

type noopRecorder struct{}

func (noopRecorder) TransactionAdded(domain.TransactionType, decimal.Decimal) {}
func (noopRecorder) TransactionRejected()                                    {}
func (noopRecorder) CardAdded()                                              {}
func (noopRecorder) BalanceChanged(decimal.Decimal)                          {}
