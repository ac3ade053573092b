package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").ParseFS(templateFS, "templates/page.html"))

// Page holds every surface of the ledger page for one request.
type Page struct {
	Balance      TextBox
	Transactions List
	Cards        List
	Summary      List
	Chart        Chart
	Alerts       Alerts
	Form         Form
}

// NewPage creates an empty page.
func NewPage() *Page {
	return &Page{}
}

// Surfaces returns the page's render targets.
func (p *Page) Surfaces() usecase.Surfaces {
	return usecase.Surfaces{
		Balance:      &p.Balance,
		Transactions: &p.Transactions,
		Cards:        &p.Cards,
		Summary:      &p.Summary,
		Chart:        &p.Chart,
	}
}

type pageData struct {
	*Page
	IncomeType  domain.TransactionType
	ExpenseType domain.TransactionType
	CardPrompt  string
	ChartConfig template.JS
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	cfg, err := p.Chart.ConfigJSON()
	if err != nil {
		return err
	}

	return pageTemplate.Execute(w, pageData{
		Page:        p,
		IncomeType:  domain.TransactionTypeIncome,
		ExpenseType: domain.TransactionTypeExpense,
		CardPrompt:  usecase.CardPrompt,
		ChartConfig: template.JS(cfg),
	})
}
