package memory

import (
	"context"
	"testing"
)

func TestRecordStore(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()

	if _, found, _ := store.Get(ctx, "balance"); found {
		t.Fatalf("expected empty store")
	}

	if err := store.Set(ctx, "balance", "1.00"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "balance", "2.00"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, found, err := store.Get(ctx, "balance")
	if err != nil || !found || value != "2.00" {
		t.Fatalf("expected 2.00, got %q found=%v err=%v", value, found, err)
	}
}
