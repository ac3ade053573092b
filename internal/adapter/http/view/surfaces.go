// Package view holds the HTML render surfaces of the ledger page.
package view

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// TextBox is a usecase.TextSink holding one line of text.
type TextBox struct {
	Text string
}

func (b *TextBox) SetText(text string) { b.Text = text }

// List is a usecase.ListSink holding rendered rows.
type List struct {
	Rows []usecase.Row
}

func (l *List) Clear()                 { l.Rows = nil }
func (l *List) Append(row usecase.Row) { l.Rows = append(l.Rows, row) }

// Alerts is a usecase.Alerter collecting messages to show on page load.
type Alerts struct {
	Messages []string
}

func (a *Alerts) Alert(_ context.Context, message string) {
	a.Messages = append(a.Messages, message)
}

// Form is the submitted transaction form.
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

// Reset clears the fields so the page renders an empty form.
func (f *Form) Reset() { *f = Form{} }

// Answer is a usecase.Prompter that replies with a value collected by the
// browser's prompt before the request was sent.
type Answer struct {
	Value string
	Given bool
}

func (a Answer) Prompt(context.Context, string) (string, bool, error) {
	return a.Value, a.Given, nil
}

// Chart is a usecase.ChartRenderer producing a Chart.js configuration.
// Only the last rendered chart is kept; the page script destroys any chart
// already bound to the canvas before constructing the new one.
type Chart struct {
	config *chartConfig
	prefix string
	builds int
}

type chartConfig struct {
	Type    string       `json:"type"`
	Data    chartData    `json:"data"`
	Options chartOptions `json:"options"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

type chartOptions struct {
	Responsive bool        `json:"responsive"`
	Scales     chartScales `json:"scales"`
}

type chartScales struct {
	Y chartAxis `json:"y"`
}

type chartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

func (c *Chart) Render(_ context.Context, spec domain.ChartSpec) error {
	if len(spec.Labels) == 0 {
		return fmt.Errorf("chart %q has no labels", spec.Type)
	}

	c.config = nil

	cfg := &chartConfig{
		Type: spec.Type,
		Data: chartData{Labels: spec.Labels},
		Options: chartOptions{
			Responsive: spec.Responsive,
			Scales:     chartScales{Y: chartAxis{BeginAtZero: spec.BeginAtZero}},
		},
	}
	for _, ds := range spec.Datasets {
		values := make([]float64, len(ds.Data))
		for i, d := range ds.Data {
			values[i] = d.InexactFloat64()
		}
		cfg.Data.Datasets = append(cfg.Data.Datasets, chartDataset{
			Label:           ds.Label,
			Data:            values,
			BackgroundColor: ds.BackgroundColor,
			BorderColor:     ds.BorderColor,
			BorderWidth:     ds.BorderWidth,
		})
	}

	c.config = cfg
	c.prefix = spec.TickPrefix
	c.builds++
	return nil
}

// Ready reports whether a chart has been rendered.
func (c *Chart) Ready() bool { return c.config != nil }

// Builds returns how many charts were constructed.
func (c *Chart) Builds() int { return c.builds }

// TickPrefix returns the y-axis tick prefix of the current chart.
func (c *Chart) TickPrefix() string { return c.prefix }

// ConfigJSON returns the current Chart.js configuration.
func (c *Chart) ConfigJSON() ([]byte, error) {
	if c.config == nil {
		return []byte("null"), nil
	}
	return json.Marshal(c.config)
}
