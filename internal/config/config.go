package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/bettergovph/open-monitoring/internal/domain"
)

// ListenAddr is where the API listens. It is fixed and not read from the
// environment.
const ListenAddr = "0.0.0.0:8000"

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment is valid.
type Config struct {
	// Server
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	// Requests per second across all clients; 0 disables limiting.
	RateLimit int

	CORSAllowedOrigins []string

	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:      ListenAddr,
		ReadTimeout:     getDuration("READ_TIMEOUT", 0),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 0),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		MaxBodyBytes:    int64(getInt("MAX_BODY_BYTES", 1<<20)),

		RateLimit: getInt("RATE_LIMIT", 0),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.RateLimit < 0 {
		return nil, fmt.Errorf("%w: RATE_LIMIT must not be negative", domain.ErrInvalidConfig)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("%w: MAX_BODY_BYTES must be positive", domain.ErrInvalidConfig)
	}

	// /simple-test reports each call at info, so quieter levels are refused.
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %v", domain.ErrInvalidConfig, err)
	}
	if lvl > zapcore.InfoLevel {
		return nil, fmt.Errorf("%w: LOG_LEVEL must be debug or info, got %q", domain.ErrInvalidConfig, cfg.LogLevel)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
