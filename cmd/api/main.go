package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ryft_bridge/docs"
	"ryft_bridge/internal/adapter/http/routes"
	"ryft_bridge/internal/config"
	"ryft_bridge/internal/observability/logger"
	"ryft_bridge/internal/observability/metrics"
	"ryft_bridge/internal/observability/tracing"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Ryft Payment Bridge API
// @version         1.0
// @description     Method channel bridge to the Ryft payment SDK, with a UI host surface and a result journal.

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	shutdownMetrics, err := metrics.InitProvider(ctx, metrics.ProviderConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(flushCtx); err != nil {
			log.Warn("meter shutdown failed", zap.Error(err))
		}
	}()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
