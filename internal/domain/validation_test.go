package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"4.5", "4.5", true},
		{"  12", "12", true},
		{"12.5abc", "12.5", true},
		{"12.", "12", true},
		{".5", "0.5", true},
		{"-5", "-5", true},
		{"+3", "3", true},
		{"1e3", "1000", true},
		{"1e", "1", true},
		{"1e308", "1e308", true},
		{"1e400", "0", false},
		{"1e999999999", "0", false},
		{"-1e400", "0", false},
		{"1e-400", "0", true},
		{"1e-999999999", "0", true},
		{"0e999999999", "0", true},
		{"", "0", false},
		{"abc", "0", false},
		{"-", "0", false},
	}

	for _, tt := range tests {
		got, ok := ParseAmount(tt.input)
		if ok != tt.wantOK {
			t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNewTransaction(t *testing.T) {
	t.Parallel()

	t.Run("valid input is trimmed", func(t *testing.T) {
		tx, err := NewTransaction(TransactionInput{Description: "  Coffee ", Amount: "4.5", Type: "expense"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tx.Description != "Coffee" {
			t.Fatalf("expected trimmed description, got %q", tx.Description)
		}
		if !tx.Amount.Equal(decimal.RequireFromString("4.5")) {
			t.Fatalf("expected amount 4.5, got %s", tx.Amount)
		}
		if tx.IsIncome() {
			t.Fatalf("expected expense")
		}
	})

	rejected := []struct {
		name  string
		input TransactionInput
		cause error
	}{
		{"empty description", TransactionInput{Description: "   ", Amount: "10", Type: "income"}, ErrEmptyDescription},
		{"zero amount", TransactionInput{Description: "Tea", Amount: "0", Type: "expense"}, ErrInvalidAmount},
		{"negative amount", TransactionInput{Description: "Tea", Amount: "-5", Type: "expense"}, ErrInvalidAmount},
		{"non-numeric amount", TransactionInput{Description: "Tea", Amount: "five", Type: "expense"}, ErrInvalidAmount},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(tt.input)
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Fatalf("expected ErrInvalidTransaction, got %v", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("expected %v, got %v", tt.cause, err)
			}
		})
	}
}
