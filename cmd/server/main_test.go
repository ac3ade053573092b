package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/storage"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		StoreDriver:      config.DriverMemory,
		HTTPPort:         "9000",
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: 2 * time.Second,
		HTTPIdleTimeout:  3 * time.Second,
	}

	store, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open memory store: %v", err)
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	server := newServer(cfg, store, reg, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), zerolog.Nop())

	if server.Addr != ":9000" {
		t.Fatalf("expected addr :9000, got %s", server.Addr)
	}
	if server.IdleTimeout != 3*time.Second {
		t.Fatalf("expected idle timeout from config, got %s", server.IdleTimeout)
	}

	form := url.Values{"description": {"Coffee"}, "amount": {"4.5"}, "transaction-type": {"expense"}}
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `pocketledger_transactions_added_total{type="expense"} 1`) {
		t.Fatalf("expected ledger metrics to be exported, got:\n%s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"store":"memory"`) {
		t.Fatalf("expected ready memory store, got %d %s", rec.Code, rec.Body.String())
	}
}
