package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %s, want 8080", cfg.HTTPPort)
	}
	if cfg.DefaultCurrency != "XOF" {
		t.Errorf("DefaultCurrency = %s, want XOF", cfg.DefaultCurrency)
	}
	if cfg.IdempotencyTTL != 24*time.Hour {
		t.Errorf("IdempotencyTTL = %s, want 24h", cfg.IdempotencyTTL)
	}
	if cfg.DatabaseMaxConns != 25 || cfg.DatabaseMinConns != 5 {
		t.Errorf("pool sizes = (%d, %d), want (25, 5)", cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IDEMPOTENCY_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %s, want 9090", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.IdempotencyTTL != time.Hour {
		t.Errorf("IdempotencyTTL = %s, want 1h", cfg.IdempotencyTTL)
	}
}
