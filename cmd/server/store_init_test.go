// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/memstore"
	"github.com/tomtom215/conflictglobe/internal/models"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			Backend: config.BackendMemory,
			Breaker: config.BreakerConfig{
				FailureThreshold: 5,
				Timeout:          30 * time.Second,
			},
		},
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := openStore(&config.DatabaseConfig{Backend: "postgres"})
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestInitStore_MemoryWithImport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.json")
	data := `[
		{"id":"a1","year":2001,"type":"Battles","group":"Alpha Front","lat":10.5,"lon":20.25},
		{"id":"a2","year":2003,"type":"Riots","group1":"Beta Militia","lat":-3,"lon":40},
		{"id":"bad","year":2003,"type":"Riots"}
	]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := memoryConfig()
	cfg.Database.ImportPath = path

	comps, err := initStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initStore() error: %v", err)
	}
	defer closeStore(comps.raw)

	if comps.checkpointer != nil {
		t.Error("memory backend should not have a checkpointer")
	}
	if comps.serving != database.Store(comps.raw) {
		t.Error("serving store should be the raw store when the breaker is disabled")
	}

	dr, err := comps.serving.GetDataRange(context.Background())
	if err != nil {
		t.Fatalf("GetDataRange() error: %v", err)
	}
	if dr.MinYear != 2001 || dr.MaxYear != 2003 {
		t.Errorf("data range = %+v, want 2001..2003", dr)
	}
}

func TestInitStore_MissingImportFile(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Database.ImportPath = filepath.Join(t.TempDir(), "missing.json")

	if _, err := initStore(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing import file")
	}
}

func TestInitStore_SeedAndBreaker(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.Database.SeedMockData = true
	cfg.Database.Breaker.Enabled = true

	comps, err := initStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("initStore() error: %v", err)
	}
	defer closeStore(comps.raw)

	if _, ok := comps.serving.(*database.CircuitBreakerStore); !ok {
		t.Errorf("serving store = %T, want *database.CircuitBreakerStore", comps.serving)
	}

	mem := comps.raw.(*memstore.Store)
	if mem.Len() != mockEventCount {
		t.Errorf("seeded %d events, want %d", mem.Len(), mockEventCount)
	}

	summary, err := comps.serving.GetSummary(context.Background(), models.FilterSet{
		StartYear: models.DefaultMinYear,
		EndYear:   time.Now().Year(),
	})
	if err != nil {
		t.Fatalf("GetSummary() error: %v", err)
	}
	total := 0
	for _, yc := range summary.ByYear {
		total += yc.Count
	}
	if total != mockEventCount {
		t.Errorf("summary counts %d events, want %d", total, mockEventCount)
	}
}

func TestSeedStore_SkipsNonEmpty(t *testing.T) {
	t.Parallel()

	mem := memstore.New()
	defer closeStore(mem)

	if _, err := mem.InsertEvents(context.Background(), []models.Event{{ID: "x", Lat: 1, Lon: 1, Year: 2000}}); err != nil {
		t.Fatalf("InsertEvents() error: %v", err)
	}
	if err := seedStore(context.Background(), mem); err != nil {
		t.Fatalf("seedStore() error: %v", err)
	}
	if mem.Len() != 1 {
		t.Errorf("non-empty store should not be seeded, got %d events", mem.Len())
	}
}
