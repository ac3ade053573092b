package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)
	m.CardAdded()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecorder(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.TransactionAdded(domain.TransactionTypeIncome, decimal.NewFromInt(1000))
	m.TransactionAdded(domain.TransactionTypeExpense, decimal.NewFromInt(400))
	m.TransactionAdded("other", decimal.NewFromInt(1))
	m.TransactionRejected()
	m.BalanceChanged(decimal.RequireFromString("599.5"))

	if got := testutil.ToFloat64(m.TransactionsAdded.WithLabelValues("income")); got != 1 {
		t.Fatalf("expected 1 income transaction, got %v", got)
	}
	if got := testutil.ToFloat64(m.TransactionsAdded.WithLabelValues("expense")); got != 2 {
		t.Fatalf("expected 2 expense transactions, got %v", got)
	}
	if got := testutil.ToFloat64(m.TransactionsRejected); got != 1 {
		t.Fatalf("expected 1 rejected transaction, got %v", got)
	}
	if got := testutil.ToFloat64(m.Balance); got != 599.5 {
		t.Fatalf("expected balance 599.5, got %v", got)
	}
}
