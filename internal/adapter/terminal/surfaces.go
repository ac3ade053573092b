// Package terminal renders the ledger as a markdown screen and reads prompts
// from a line-oriented input.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// Line is a usecase.TextSink for a single titled value.
type Line struct {
	Title string
	Text  string
	set   bool
}

func (l *Line) SetText(text string) {
	l.Text = text
	l.set = true
}

// Section is a usecase.ListSink for a titled list.
type Section struct {
	Title string
	Rows  []usecase.Row
	set   bool
}

func (s *Section) Clear() {
	s.Rows = nil
	s.set = true
}

func (s *Section) Append(row usecase.Row) { s.Rows = append(s.Rows, row) }

// BarChart is a usecase.ChartRenderer drawing horizontal text bars. Rendering
// replaces the previous chart.
type BarChart struct {
	// Width is the length of the longest bar.
	Width int

	spec   *domain.ChartSpec
	builds int
}

func (c *BarChart) Render(_ context.Context, spec domain.ChartSpec) error {
	if len(spec.Labels) == 0 {
		return fmt.Errorf("chart %q has no labels", spec.Type)
	}
	c.spec = &spec
	c.builds++
	return nil
}

// Builds returns how many charts were constructed.
func (c *BarChart) Builds() int { return c.builds }

// Lines returns the bars of the current chart, one per label of the first
// dataset.
func (c *BarChart) Lines() []string {
	if c.spec == nil || len(c.spec.Datasets) == 0 {
		return nil
	}

	width := c.Width
	if width <= 0 {
		width = 30
	}

	data := c.spec.Datasets[0].Data
	peak := decimal.Zero
	labelWidth := 0
	for i, label := range c.spec.Labels {
		if i < len(data) && data[i].Abs().GreaterThan(peak) {
			peak = data[i].Abs()
		}
		labelWidth = max(labelWidth, len(label))
	}

	lines := make([]string, 0, len(c.spec.Labels))
	for i, label := range c.spec.Labels {
		value := decimal.Zero
		if i < len(data) {
			value = data[i]
		}

		bar := 0
		if peak.IsPositive() {
			bar = int(value.Abs().Mul(decimal.NewFromInt(int64(width))).Div(peak).Round(0).IntPart())
		}

		lines = append(lines, fmt.Sprintf("%-*s |%s %s",
			labelWidth, label, strings.Repeat("#", bar), c.spec.TickPrefix+value.StringFixed(2)))
	}
	return lines
}

// Writer is a usecase.Alerter printing messages to a stream.
type Writer struct {
	Out io.Writer
}

func (w Writer) Alert(_ context.Context, message string) {
	fmt.Fprintln(w.Out, message)
}

// LinePrompter is a usecase.Prompter reading one line per prompt. End of input
// counts as a cancelled prompt.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter asking on out and reading from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Prompt(ctx context.Context, message string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fmt.Fprint(p.out, message+" ")

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}

	return strings.TrimSpace(line), true, nil
}

// Answer is a usecase.Prompter replying with a value given up front.
type Answer string

func (a Answer) Prompt(context.Context, string) (string, bool, error) {
	return string(a), true, nil
}

// Form is a transaction form filled from command flags.
type Form struct {
	Description string
	Amount      string
	Type        string
}

func (f *Form) Fields() domain.TransactionInput {
	return domain.TransactionInput{
		Description: f.Description,
		Amount:      f.Amount,
		Type:        f.Type,
	}
}

func (f *Form) Reset() { *f = Form{} }
