package domain

import "github.com/shopspring/decimal"

// Chart colors.
const (
	IncomeFill    = "rgba(76, 175, 80, 0.5)"
	IncomeBorder  = "rgba(76, 175, 80, 1)"
	ExpenseFill   = "rgba(255, 87, 34, 0.5)"
	ExpenseBorder = "rgba(255, 87, 34, 1)"
)

// ChartSpec describes a chart to construct. It mirrors the construction
// contract of common charting libraries: type, labels, datasets and a few
// axis options.
type ChartSpec struct {
	Type        string
	Labels      []string
	Datasets    []Dataset
	Responsive  bool
	BeginAtZero bool
	// TickPrefix is prepended to every y-axis tick label.
	TickPrefix string
}

// Dataset is one series of a chart.
type Dataset struct {
	Label           string
	Data            []decimal.Decimal
	BackgroundColor []string
	BorderColor     []string
	BorderWidth     int
}

// FormatTick formats a y-axis value the way the chart labels it.
func (c ChartSpec) FormatTick(v decimal.Decimal) string {
	return c.TickPrefix + v.String()
}

// ExpenseChart returns the two-bar income/expense chart for a summary.
func ExpenseChart(s Summary) ChartSpec {
	return ChartSpec{
		Type:   "bar",
		Labels: []string{"Income", "Expense"},
		Datasets: []Dataset{
			{
				Label:           "Amount",
				Data:            []decimal.Decimal{s.TotalIncome, s.TotalExpense},
				BackgroundColor: []string{IncomeFill, ExpenseFill},
				BorderColor:     []string{IncomeBorder, ExpenseBorder},
				BorderWidth:     1,
			},
		},
		Responsive:  true,
		BeginAtZero: true,
		TickPrefix:  "$",
	}
}
