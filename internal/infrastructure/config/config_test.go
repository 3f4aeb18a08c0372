package config_test

import (
	"testing"
	"time"

	"github.com/iho/payengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("OPS_ADDR", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}

	if cfg.AllowRedispute {
		t.Fatal("expected redispute to be disabled by default")
	}

	if cfg.OpsAddr != "" {
		t.Fatalf("expected ops endpoint disabled by default, got %q", cfg.OpsAddr)
	}

	if cfg.OpsShutdownTimeout != 5*time.Second {
		t.Fatalf("expected default ops shutdown timeout 5s, got %s", cfg.OpsShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ALLOW_REDISPUTE", "true")
	t.Setenv("OPS_ADDR", ":9100")
	t.Setenv("OPS_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Fatalf("expected log format override, got %s", cfg.LogFormat)
	}

	if !cfg.AllowRedispute {
		t.Fatal("expected redispute override to be enabled")
	}

	if cfg.OpsAddr != ":9100" {
		t.Fatalf("expected ops addr override, got %s", cfg.OpsAddr)
	}

	if cfg.OpsShutdownTimeout != 30*time.Second {
		t.Fatalf("expected ops shutdown timeout override, got %s", cfg.OpsShutdownTimeout)
	}
}
