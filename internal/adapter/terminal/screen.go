package terminal

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/iho/pocketledger/internal/usecase"
)

// Output styles besides the glamour style names.
const (
	StyleRaw  = "raw"
	StyleAuto = "auto"
)

// Part names a group of surfaces on the screen.
type Part int

const (
	PartBalance Part = iota
	PartTransactions
	PartCards
	PartSummary
)

// Screen holds every terminal surface of the ledger.
type Screen struct {
	Balance      Line
	Transactions Section
	Cards        Section
	Summary      Section
	Chart        BarChart
}

// NewScreen creates an empty screen.
func NewScreen() *Screen {
	return &Screen{
		Balance:      Line{Title: "Balance"},
		Transactions: Section{Title: "Transactions"},
		Cards:        Section{Title: "Cards"},
		Summary:      Section{Title: "Expense Summary"},
	}
}

// Surfaces returns the render targets of the given parts, or of every part
// when none is given. Surfaces of other parts are left absent.
func (s *Screen) Surfaces(parts ...Part) usecase.Surfaces {
	if len(parts) == 0 {
		parts = []Part{PartBalance, PartTransactions, PartCards, PartSummary}
	}

	var out usecase.Surfaces
	for _, p := range parts {
		switch p {
		case PartBalance:
			out.Balance = &s.Balance
		case PartTransactions:
			out.Transactions = &s.Transactions
		case PartCards:
			out.Cards = &s.Cards
		case PartSummary:
			out.Summary = &s.Summary
			out.Chart = &s.Chart
		}
	}
	return out
}

const screenTemplate = `{{- if .Balance.Rendered}}# {{.Balance.Title}}: {{md .Balance.Text}}
{{end}}
{{- range .Sections}}{{if .Rendered}}
## {{.Title}}

{{range .Rows}}- {{row .}}
{{else}}_empty_
{{end}}{{end}}{{end}}
{{- with .Chart.Lines}}
` + "```text" + `
{{range .}}{{.}}
{{end}}` + "```" + `
{{end}}`

var screenTmpl = template.Must(template.New("screen").Funcs(template.FuncMap{
	"md":  escapeMarkdown,
	"row": func(r usecase.Row) string { return escapeMarkdown(r.Text()) },
}).Parse(screenTemplate))

// Markdown returns the rendered surfaces as a markdown document. Surfaces that
// were never rendered are omitted.
func (s *Screen) Markdown() (string, error) {
	var buf bytes.Buffer
	err := screenTmpl.Execute(&buf, struct {
		*Screen
		Sections []Section
	}{
		Screen:   s,
		Sections: []Section{s.Transactions, s.Cards, s.Summary},
	})
	return buf.String(), err
}

// Print writes the screen to w. StyleRaw writes the markdown itself; any other
// style is passed to glamour, StyleAuto picking one for the terminal.
func (s *Screen) Print(w io.Writer, style string) error {
	md, err := s.Markdown()
	if err != nil {
		return err
	}

	if style == StyleRaw {
		_, err = io.WriteString(w, md)
		return err
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == StyleAuto || style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return err
	}

	out, err := r.Render(md)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// Rendered reports whether the line was written.
func (l Line) Rendered() bool { return l.set }

// Rendered reports whether the section was written.
func (s Section) Rendered() bool { return s.set }

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
	`[`, `\[`, `]`, `\]`, `#`, `\#`, `<`, `\<`, `>`, `\>`, `|`, `\|`,
)

// orderedMarker matches a leading ordered-list marker such as "1." or "2)".
var orderedMarker = regexp.MustCompile(`^(\d+)([.)])`)

func escapeMarkdown(s string) string {
	s = markdownEscaper.Replace(s)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = `\` + s
	}
	return orderedMarker.ReplaceAllString(s, `$1\$2`)
}
