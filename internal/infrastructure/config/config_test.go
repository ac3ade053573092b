package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iho/pocketledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StoreDriver != config.DriverSQLite {
		t.Fatalf("expected default driver sqlite, got %q", cfg.StoreDriver)
	}

	if cfg.SQLitePath == "" {
		t.Fatalf("expected default sqlite path to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.RedisKeyPrefix != "pocketledger:" {
		t.Fatalf("expected default redis prefix, got %q", cfg.RedisKeyPrefix)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StoreDriver != config.DriverRedis {
		t.Fatalf("expected redis driver, got %s", cfg.StoreDriver)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.LogFormat != "console" {
		t.Fatalf("expected console log format, got %s", cfg.LogFormat)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STORE_DRIVER=memory\nHTTP_PORT=7000\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// Variables already set win over the file.
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("STORE_DRIVER", "")
	os.Unsetenv("STORE_DRIVER")

	if err := config.LoadDotenv(path); err != nil {
		t.Fatalf("unexpected error loading env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.StoreDriver != config.DriverMemory {
		t.Fatalf("expected driver from env file, got %q", cfg.StoreDriver)
	}

	if cfg.HTTPPort != "9999" {
		t.Fatalf("expected environment to override env file, got %s", cfg.HTTPPort)
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	if err := config.LoadDotenv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}
