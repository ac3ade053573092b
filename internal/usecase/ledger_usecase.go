package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// LedgerConfig holds the collaborators of a LedgerUseCase.
// Only Store is required.
type LedgerConfig struct {
	Store    RecordStore
	Surfaces Surfaces
	Alerter  Alerter
	Prompter Prompter
	Recorder Recorder
	Logger   zerolog.Logger
}

// LedgerUseCase handles balance, transactions and cards, and renders them
// into its surfaces.
//
// The balance is a running total kept next to the transaction log. It is
// updated on every added transaction and never recomputed from the log; use
// Reconcile to detect drift.
type LedgerUseCase struct {
	store    RecordStore
	surfaces Surfaces
	alerter  Alerter
	prompter Prompter
	recorder Recorder
	logger   zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(cfg LedgerConfig) *LedgerUseCase {
	uc := &LedgerUseCase{
		store:    cfg.Store,
		surfaces: cfg.Surfaces,
		alerter:  cfg.Alerter,
		prompter: cfg.Prompter,
		recorder: cfg.Recorder,
		logger:   cfg.Logger,
	}

	if uc.alerter == nil {
		uc.alerter = noopAlerter{}
	}
	if uc.prompter == nil {
		uc.prompter = noopPrompter{}
	}
	if uc.recorder == nil {
		uc.recorder = noopRecorder{}
	}

	return uc
}

// Load renders every surface from the stored records.
func (uc *LedgerUseCase) Load(ctx context.Context) error {
	steps := []func(context.Context) error{
		uc.RenderBalance,
		uc.RenderTransactions,
		uc.RenderCards,
		uc.RenderSummary,
	}

	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Balance returns the stored running balance.
func (uc *LedgerUseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	return ReadBalance(ctx, uc.store)
}

// Transactions returns the stored transactions in insertion order.
func (uc *LedgerUseCase) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return ReadRecord(ctx, uc.store, TransactionsKey, []domain.Transaction{})
}

// Cards returns the stored cards in insertion order.
func (uc *LedgerUseCase) Cards(ctx context.Context) ([]domain.Card, error) {
	return ReadRecord(ctx, uc.store, CardsKey, []domain.Card{})
}

// Summary totals the stored transactions.
func (uc *LedgerUseCase) Summary(ctx context.Context) (domain.Summary, error) {
	transactions, err := uc.Transactions(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(transactions), nil
}

// RenderBalance writes the formatted balance into the balance surface.
func (uc *LedgerUseCase) RenderBalance(ctx context.Context) error {
	sink := uc.surfaces.Balance
	if sink == nil {
		return nil
	}

	balance, err := uc.Balance(ctx)
	if err != nil {
		return err
	}

	sink.SetText(domain.FormatMoney(balance))
	return nil
}

// RenderTransactions rebuilds the transaction list surface.
func (uc *LedgerUseCase) RenderTransactions(ctx context.Context) error {
	sink := uc.surfaces.Transactions
	if sink == nil {
		return nil
	}

	transactions, err := uc.Transactions(ctx)
	if err != nil {
		return err
	}

	sink.Clear()
	for _, t := range transactions {
		sink.Append(transactionRow(t))
	}

	return nil
}

// RenderCards rebuilds the card list surface.
func (uc *LedgerUseCase) RenderCards(ctx context.Context) error {
	sink := uc.surfaces.Cards
	if sink == nil {
		return nil
	}

	cards, err := uc.Cards(ctx)
	if err != nil {
		return err
	}

	sink.Clear()
	for _, c := range cards {
		sink.Append(cardRow(c))
	}

	return nil
}

// RenderSummary writes the income/expense totals and rebuilds the chart.
func (uc *LedgerUseCase) RenderSummary(ctx context.Context) error {
	if uc.surfaces.Summary == nil && uc.surfaces.Chart == nil {
		return nil
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		return err
	}

	if sink := uc.surfaces.Summary; sink != nil {
		sink.Clear()
		for _, line := range summary.Lines() {
			sink.Append(summaryRow(line))
		}
	}

	if chart := uc.surfaces.Chart; chart != nil {
		if err := chart.Render(ctx, domain.ExpenseChart(summary)); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	}

	return nil
}

// AddTransaction validates the form, appends the transaction, updates the
// balance and re-renders. Invalid input is alerted and returned as
// domain.ErrInvalidTransaction with nothing written.
func (uc *LedgerUseCase) AddTransaction(ctx context.Context, form TransactionForm) error {
	transaction, err := domain.NewTransaction(form.Fields())
	if err != nil {
		uc.logger.Warn().Err(err).Msg("transaction rejected")
		uc.recorder.TransactionRejected()
		uc.alerter.Alert(ctx, domain.InvalidTransactionMessage)
		return err
	}

	transactions, err := uc.Transactions(ctx)
	if err != nil {
		return err
	}
	transactions = append(transactions, transaction)
	if err := WriteRecord(ctx, uc.store, TransactionsKey, transactions); err != nil {
		return err
	}

	balance, err := uc.Balance(ctx)
	if err != nil {
		return err
	}
	balance = transaction.ApplyTo(balance)
	if err := WriteBalance(ctx, uc.store, balance); err != nil {
		return err
	}

	uc.recorder.TransactionAdded(transaction.Type, transaction.Amount)
	uc.recorder.BalanceChanged(balance)
	uc.logger.Info().
		Str("type", string(transaction.Type)).
		Str("amount", transaction.Amount.String()).
		Str("balance", balance.StringFixed(2)).
		Msg("transaction added")

	if err := uc.RenderBalance(ctx); err != nil {
		return err
	}
	if err := uc.RenderTransactions(ctx); err != nil {
		return err
	}

	form.Reset()

	return uc.RenderSummary(ctx)
}

// AddCard prompts for a card number and appends it. A cancelled or empty
// answer adds nothing.
func (uc *LedgerUseCase) AddCard(ctx context.Context) error {
	number, ok, err := uc.prompter.Prompt(ctx, CardPrompt)
	if err != nil {
		return fmt.Errorf("failed to read card number: %w", err)
	}
	if !ok || number == "" {
		return nil
	}

	cards, err := uc.Cards(ctx)
	if err != nil {
		return err
	}
	cards = append(cards, domain.Card{Number: number})
	if err := WriteRecord(ctx, uc.store, CardsKey, cards); err != nil {
		return err
	}

	uc.recorder.CardAdded()
	uc.logger.Info().Int("cards", len(cards)).Msg("card added")

	return uc.RenderCards(ctx)
}

// Reconcile compares the running balance with the net of the transaction
// log. It reports drift without correcting it.
func (uc *LedgerUseCase) Reconcile(ctx context.Context) (*domain.Reconciliation, error) {
	balance, err := uc.Balance(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}

	result := domain.Reconcile(balance, summary, time.Now().UTC())
	if !result.Reconciled {
		uc.logger.Warn().
			Str("recorded", result.Recorded.StringFixed(2)).
			Str("derived", result.Derived.StringFixed(2)).
			Msg("balance drift detected")
	}

	return result, nil
}

// IsInvalidInput reports whether err is a rejected transaction.
func IsInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidTransaction)
}
