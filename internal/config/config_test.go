package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bettergovph/open-monitoring/internal/config"
	"github.com/bettergovph/open-monitoring/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "MAX_BODY_BYTES",
		"RATE_LIMIT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:8000" {
		t.Fatalf("expected listen addr 0.0.0.0:8000, got %s", cfg.ListenAddr)
	}
	if cfg.ReadTimeout != 0 || cfg.WriteTimeout != 0 {
		t.Fatalf("expected no request timeouts, got read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected shutdown timeout 30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != 0 {
		t.Fatalf("expected rate limiting disabled, got %d", cfg.RateLimit)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected CORS origins [*], got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://bettergov.ph, https://visualizations.bettergov.ph")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != 50 {
		t.Fatalf("expected 50, got %d", cfg.RateLimit)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://visualizations.bettergov.ph" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %s", cfg.LogLevel)
	}
}

func TestLoad_ListenAddrIgnoresEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9999")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != config.ListenAddr {
		t.Fatalf("expected %s, got %s", config.ListenAddr, cfg.ListenAddr)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"negative rate limit", "RATE_LIMIT", "-1"},
		{"zero body size", "MAX_BODY_BYTES", "0"},
		{"warn level hides info logs", "LOG_LEVEL", "warn"},
		{"error level hides info logs", "LOG_LEVEL", "error"},
		{"unknown level", "LOG_LEVEL", "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := config.Load()
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_AcceptedLogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "INFO"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", level)
			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.LogLevel != level {
				t.Fatalf("expected %s, got %s", level, cfg.LogLevel)
			}
		})
	}
}
