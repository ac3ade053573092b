package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		value  string
		answer bool
	}{
		{"answer", "4111111111111111\n", "4111111111111111", true},
		{"answer without newline", "4111", "4111", true},
		{"blank line", "\n", "", true},
		{"end of input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			value, ok, err := p.Prompt(context.Background(), "Enter card number:")
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.answer, ok)
			assert.Equal(t, "Enter card number: ", out.String())
		})
	}
}

func TestLinePrompterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := NewLinePrompter(strings.NewReader("1\n"), &bytes.Buffer{}).Prompt(ctx, "?")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}

func TestWriterAlert(t *testing.T) {
	var out bytes.Buffer
	Writer{Out: &out}.Alert(context.Background(), "Please enter a valid description and amount.")
	assert.Equal(t, "Please enter a valid description and amount.\n", out.String())
}

func TestFormReset(t *testing.T) {
	f := &Form{Description: "Tea", Amount: "2", Type: "expense"}
	assert.Equal(t, "Tea", f.Fields().Description)

	f.Reset()
	assert.Equal(t, Form{}, *f)
}
