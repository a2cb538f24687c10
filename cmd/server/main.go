// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/conflictglobe/docs" // Import generated swagger docs
	"github.com/tomtom215/conflictglobe/internal/api"
	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/metrics"
	"github.com/tomtom215/conflictglobe/internal/supervisor"
	"github.com/tomtom215/conflictglobe/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load reads .env first, then defaults, config file and environment.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("backend", cfg.Database.Backend).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Conflict Globe")

	if cfg.IsProduction() && cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := initStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize event store")
	}
	defer closeStore(store.raw)

	metrics.SetAppInfo(version, runtime.Version(), store.raw.Backend())

	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		closeStore(store.raw)
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(store.serving)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if store.checkpointer != nil && cfg.Database.CheckpointInterval > 0 {
		tree.AddDataService(services.NewCheckpointService(store.checkpointer, cfg.Database.CheckpointInterval))
		logging.Info().Dur("interval", cfg.Database.CheckpointInterval).Msg("DuckDB checkpoint service added")
	}

	watchLogLevel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	tree.LogUnstoppedServices()
	logging.Info().Msg("Application stopped gracefully")
}

// watchLogLevel applies log level changes from the config file without a
// restart. Other settings need a restart to take effect.
func watchLogLevel() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func(next *config.Config) {
		if next.Logging.Level == logging.GetLevel().String() {
			return
		}
		logging.SetLevelString(next.Logging.Level)
		logging.Info().Str("level", next.Logging.Level).Msg("Log level reloaded from config file")
	}, func(err error) {
		logging.Warn().Err(err).Str("path", path).Msg("Config reload failed")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watcher unavailable")
	}
}
