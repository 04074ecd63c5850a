package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/bettergovph/open-monitoring/internal/api"
	"github.com/bettergovph/open-monitoring/internal/config"
	"github.com/bettergovph/open-monitoring/internal/logging"
	"github.com/bettergovph/open-monitoring/internal/metrics"
	"github.com/bettergovph/open-monitoring/internal/server"
	"github.com/bettergovph/open-monitoring/internal/ws"
)

func main() {
	// ---- configuration ----
	// Startup failures before the configured logger exists go here.
	bootstrap := zap.Must(zap.NewProduction())

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		bootstrap.Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	onConnect, onDisconnect := m.WSHooks()
	hub := ws.NewHub(logger, cfg.CORSAllowedOrigins, ws.Hooks{
		OnConnect:    onConnect,
		OnDisconnect: onDisconnect,
	})
	hub.Start()
	defer hub.Stop()

	// ---- HTTP server ----
	router := api.NewRouter(cfg, hub, reg, m, logger)
	srv := server.New(cfg, router, logger)

	logger.Info("starting API server", zap.String("addr", cfg.ListenAddr))
	if err := srv.Listen(); err != nil {
		logger.Fatal("failed to bind listener", zap.Error(err))
	}

	// ---- graceful shutdown ----
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
		hub.Stop()
		logger.Sync() //nolint:errcheck
		os.Exit(1)
	}

	logger.Info("server stopped cleanly")
}
