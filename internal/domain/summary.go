package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the income and expense totals derived from the transaction log.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net_balance"`
}

// Summarize totals transactions by type in a single pass.
func Summarize(transactions []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
}

// Lines returns the summary as display lines.
func (s Summary) Lines() []string {
	return []string{
		"Total Income: " + FormatMoney(s.TotalIncome),
		"Total Expense: " + FormatMoney(s.TotalExpense),
		"Net Balance: " + FormatMoney(s.Net),
	}
}

// Reconciliation compares the stored running balance with the net of the log.
type Reconciliation struct {
	Recorded    decimal.Decimal `json:"recorded_balance"`
	Derived     decimal.Decimal `json:"derived_balance"`
	Difference  decimal.Decimal `json:"difference"`
	Reconciled  bool            `json:"reconciled"`
	LastChecked time.Time       `json:"last_checked"`
}

// Reconcile builds a Reconciliation for the recorded balance against a summary.
// Both figures are compared at display precision, since the stored balance is
// rounded to two decimals on every write.
func Reconcile(recorded decimal.Decimal, s Summary, now time.Time) *Reconciliation {
	derived := s.Net.Round(2)
	diff := recorded.Round(2).Sub(derived)

	return &Reconciliation{
		Recorded:    recorded,
		Derived:     derived,
		Difference:  diff,
		Reconciled:  diff.IsZero(),
		LastChecked: now,
	}
}
