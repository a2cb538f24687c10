// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/database"
	eventimport "github.com/tomtom215/conflictglobe/internal/import"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/memstore"
	"github.com/tomtom215/conflictglobe/internal/metrics"
	"github.com/tomtom215/conflictglobe/internal/models"
	"github.com/tomtom215/conflictglobe/internal/supervisor/services"
)

// mockEventCount is the number of synthetic events seeded into an empty store.
const mockEventCount = 5000

// seedableStore is an event store that can report and accept events.
type seedableStore interface {
	database.Store
	database.EventWriter
	io.Closer
}

// storeComponents holds the store handle and the pieces main wires around it.
type storeComponents struct {
	// raw is the backend itself; closed on shutdown.
	raw seedableStore

	// serving is what the API handler queries. Wraps raw in a circuit breaker
	// when enabled.
	serving database.Store

	// checkpointer is non-nil for the DuckDB backend.
	checkpointer services.Checkpointer

	// recordRun persists import statistics when the backend supports it.
	recordRun func(ctx context.Context, stats *eventimport.ImportStats) error
}

// initStore opens the configured backend, runs the startup import, seeds mock
// data if requested, and wraps the result in the circuit breaker.
func initStore(ctx context.Context, cfg *config.Config) (*storeComponents, error) {
	comps, err := openStore(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := importEvents(ctx, cfg, comps); err != nil {
		closeStore(comps.raw)
		return nil, err
	}

	if cfg.Database.SeedMockData {
		if err := seedStore(ctx, comps.raw); err != nil {
			closeStore(comps.raw)
			return nil, err
		}
	}

	comps.serving = comps.raw
	if cfg.Database.Breaker.Enabled {
		comps.serving = database.NewCircuitBreakerStore(comps.raw, cfg.Database.Breaker)
		logging.Info().
			Uint32("failure_threshold", cfg.Database.Breaker.FailureThreshold).
			Dur("timeout", cfg.Database.Breaker.Timeout).
			Msg("Event store circuit breaker enabled")
	}

	return comps, nil
}

func openStore(cfg *config.DatabaseConfig) (*storeComponents, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		logging.Info().Msg("Using in-memory event store")
		return &storeComponents{raw: memstore.New()}, nil

	case config.BackendDuckDB, "":
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		logging.Info().Str("path", cfg.Path).Msg("DuckDB event store initialized")
		return &storeComponents{
			raw:          db,
			checkpointer: db,
			recordRun: func(ctx context.Context, stats *eventimport.ImportStats) error {
				return db.RecordImportRun(ctx, stats.Source, stats.Read, stats.Inserted, stats.Skipped)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

func importEvents(ctx context.Context, cfg *config.Config, comps *storeComponents) error {
	path := cfg.Database.ImportPath
	if path == "" {
		return nil
	}

	importer := eventimport.NewImporter(comps.raw, comps.raw.Backend(), eventimport.DefaultBatchSize)
	stats, err := importer.ImportFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to import events from %s: %w", path, err)
	}

	if comps.recordRun != nil {
		if err := comps.recordRun(ctx, stats); err != nil {
			logging.Warn().Err(err).Str("source", path).Msg("Failed to record import run")
		}
	}
	return nil
}

func seedStore(ctx context.Context, store seedableStore) error {
	endYear := time.Now().Year()

	if db, ok := store.(*database.DB); ok {
		inserted, err := db.SeedMockData(ctx, mockEventCount, models.DefaultMinYear, endYear)
		if err != nil {
			return err
		}
		if inserted == 0 {
			logging.Info().Msg("Store already has events, skipping mock data")
		}
		return nil
	}

	mem, ok := store.(*memstore.Store)
	if !ok || mem.Len() > 0 {
		logging.Info().Msg("Store already has events, skipping mock data")
		return nil
	}
	inserted, err := mem.InsertEvents(ctx, database.GenerateMockEvents(mockEventCount, models.DefaultMinYear, endYear))
	if err != nil {
		return fmt.Errorf("failed to seed mock events: %w", err)
	}
	metrics.RecordEventsImported(inserted, 0)
	logging.Info().Int("events", inserted).Msg("Seeded in-memory store with mock events")
	return nil
}

func closeStore(store io.Closer) {
	if err := store.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing event store")
	}
}
