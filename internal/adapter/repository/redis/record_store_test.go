package redis

import (
	"context"
	"strings"
	"testing"
)

func TestRecordStoreSetAndGet(t *testing.T) {
	store, mr := newTestStore(t, "")
	ctx := context.Background()

	if err := store.Set(ctx, "balance", "600.00"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found, err := store.Get(ctx, "balance")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found || val != "600.00" {
		t.Fatalf("expected 600.00, got found=%v val=%q", found, val)
	}

	raw, err := mr.Get(DefaultPrefix + "balance")
	if err != nil || raw != "600.00" {
		t.Fatalf("expected prefixed key in redis, got %q err=%v", raw, err)
	}
	if mr.TTL(DefaultPrefix+"balance") != 0 {
		t.Fatalf("expected record without expiry")
	}
}

func TestRecordStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t, "test:")

	val, found, err := store.Get(context.Background(), "cards")
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if found || val != "" {
		t.Fatalf("expected missing record, got found=%v val=%q", found, val)
	}
}

func TestRecordStoreOverwrites(t *testing.T) {
	store, _ := newTestStore(t, "test:")
	ctx := context.Background()

	_ = store.Set(ctx, "cards", `[{"number":"1"}]`)
	if err := store.Set(ctx, "cards", `[{"number":"1"},{"number":"2"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, _, _ := store.Get(ctx, "cards")
	if val != `[{"number":"1"},{"number":"2"}]` {
		t.Fatalf("expected overwritten value, got %q", val)
	}
}

func TestRecordStoreServerDown(t *testing.T) {
	store, mr := newTestStore(t, "")
	mr.Close()
	if _, _, err := store.Get(context.Background(), "balance"); err == nil {
		t.Fatalf("expected error when server is down")
	}
}

func TestRecordStoreSetServerDown(t *testing.T) {
	store, mr := newTestStore(t, "")
	mr.Close()
	err := store.Set(context.Background(), "balance", "1.00")
	if err == nil {
		t.Fatalf("expected error when server is down")
	}
	if !strings.Contains(err.Error(), "failed to set record balance") {
		t.Fatalf("unexpected error: %v", err)
	}
}
