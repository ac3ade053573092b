package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketledger/internal/domain"
)

// ReadRecord returns the JSON record stored under key, or def when the key is
// absent, the stored text does not decode into T, or the decoded value is
// falsy (null, false, 0 or ""). Only store failures are returned as errors.
func ReadRecord[T any](ctx context.Context, store RecordStore, key string, def T) (T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return def, nil
	}

	var probe any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil || isFalsy(probe) {
		return def, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def, nil
	}

	return v, nil
}

// WriteRecord stores v under key as JSON.
func WriteRecord(ctx context.Context, store RecordStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// ReadBalance returns the stored balance. The record is plain decimal text;
// anything that does not start with a number reads as zero.
func ReadBalance(ctx context.Context, store RecordStore) (decimal.Decimal, error) {
	raw, found, err := store.Get(ctx, BalanceKey)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read %s: %w", BalanceKey, err)
	}
	if !found {
		return decimal.Zero, nil
	}

	balance, ok := domain.ParseAmount(raw)
	if !ok {
		return decimal.Zero, nil
	}

	return balance, nil
}

// WriteBalance stores the balance with two decimals.
func WriteBalance(ctx context.Context, store RecordStore, balance decimal.Decimal) error {
	if err := store.Set(ctx, BalanceKey, balance.StringFixed(2)); err != nil {
		return fmt.Errorf("failed to write %s: %w", BalanceKey, err)
	}
	return nil
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	}
	return false
}
