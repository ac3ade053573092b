package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/pocketledger/internal/adapter/http"
	"github.com/iho/pocketledger/internal/adapter/http/handler"
	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/logger"
	"github.com/iho/pocketledger/internal/infrastructure/metrics"
	"github.com/iho/pocketledger/internal/infrastructure/storage"
)

func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLog

	ctx := context.Background()

	// Open the record store
	store, err := storage.Open(ctx, cfg, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open store")
	}
	defer store.Close()
	appLog.Info().Str("driver", store.Driver).Msg("record store ready")

	server := newServer(cfg, store, prometheus.DefaultRegisterer, promhttp.Handler(), appLog)

	// Start server in goroutine
	go func() {
		appLog.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	appLog.Info().Msg("server stopped")
}

// newServer wires handlers over store and returns the configured server.
func newServer(cfg *config.Config, store *storage.Store, reg prometheus.Registerer, metricsHandler http.Handler, logger zerolog.Logger) *http.Server {
	deps := handler.Deps{
		Store:    store,
		Recorder: metrics.New(reg),
		Logger:   logger,
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PageHandler:    handler.NewPageHandler(deps),
		APIHandler:     handler.NewAPIHandler(deps),
		HealthHandler:  handler.NewHealthHandler(store, store.Driver),
		MetricsHandler: metricsHandler,
		Logger:         logger,
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
