package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// Metrics holds the ledger's Prometheus metrics. It implements
// usecase.Recorder.
type Metrics struct {
	TransactionsAdded    *prometheus.CounterVec
	TransactionsRejected prometheus.Counter
	TransactionAmount    *prometheus.HistogramVec
	CardsAdded           prometheus.Counter
	Balance              prometheus.Gauge
}

// New creates the ledger metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pocketledger_transactions_added_total",
				Help: "Total number of transactions added by type",
			},
			[]string{"type"},
		),
		TransactionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "pocketledger_transactions_rejected_total",
			Help: "Total number of transactions rejected by validation",
		}),
		TransactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pocketledger_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"type"},
		),
		CardsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "pocketledger_cards_added_total",
			Help: "Total number of cards added",
		}),
		Balance: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pocketledger_balance",
			Help: "Running balance after the last transaction",
		}),
	}
}

// TransactionAdded counts an added transaction.
func (m *Metrics) TransactionAdded(kind domain.TransactionType, amount decimal.Decimal) {
	label := string(domain.TransactionTypeExpense)
	if kind == domain.TransactionTypeIncome {
		label = string(domain.TransactionTypeIncome)
	}

	m.TransactionsAdded.WithLabelValues(label).Inc()
	m.TransactionAmount.WithLabelValues(label).Observe(amount.InexactFloat64())
}

// TransactionRejected counts a rejected transaction.
func (m *Metrics) TransactionRejected() {
	m.TransactionsRejected.Inc()
}

// CardAdded counts an added card.
func (m *Metrics) CardAdded() {
	m.CardsAdded.Inc()
}

// BalanceChanged sets the balance gauge.
func (m *Metrics) BalanceChanged(balance decimal.Decimal) {
	m.Balance.Set(balance.InexactFloat64())
}
