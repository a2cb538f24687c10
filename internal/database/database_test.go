// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// testDBSemaphore serializes DuckDB tests. Concurrent CGO connections from
// many parallel tests can hang under CI resource pressure, so the semaphore
// is held for the entire test lifecycle and released by t.Cleanup.
var testDBSemaphore = make(chan struct{}, 1)

// testDBMutex serializes New() calls.
var testDBMutex sync.Mutex

// setupTestDB creates a new in-memory test database with timeout protection.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:        ":memory:",
		MaxMemory:   "1GB",
		SkipIndexes: true,
	}

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		testDBMutex.Lock()
		db, err := New(cfg)
		testDBMutex.Unlock()
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error: %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s (DuckDB may be under resource pressure)")
		return nil
	}
}

// insertTestEvents inserts events and fails the test on error.
func insertTestEvents(t *testing.T, db *DB, events []models.Event) {
	t.Helper()
	n, err := db.InsertEvents(context.Background(), events)
	if err != nil {
		t.Fatalf("InsertEvents() error: %v", err)
	}
	if n != len(events) {
		t.Fatalf("InsertEvents() inserted %d, want %d", n, len(events))
	}
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNew_InitializesSchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
	if db.Backend() != config.BackendDuckDB {
		t.Errorf("Backend() = %q, want %q", db.Backend(), config.BackendDuckDB)
	}

	count, err := db.CountEvents(ctx)
	if err != nil {
		t.Fatalf("CountEvents() error: %v", err)
	}
	if count != 0 {
		t.Errorf("new database has %d events, want 0", count)
	}

	version, err := db.GetCurrentSchemaVersion(ctx)
	if err != nil {
		t.Fatalf("GetCurrentSchemaVersion() error: %v", err)
	}
	if want := len(getMigrations()); version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}
}

func TestMigrations_AreIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.runVersionedMigrations(); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}

	var applied int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != len(getMigrations()) {
		t.Errorf("schema_migrations has %d rows, want %d", applied, len(getMigrations()))
	}
}

func TestCreateIndexes(t *testing.T) {
	db := setupTestDB(t)

	if err := db.CreateIndexes(); err != nil {
		t.Fatalf("CreateIndexes() error: %v", err)
	}
	// IF NOT EXISTS makes a second pass a no-op.
	if err := db.CreateIndexes(); err != nil {
		t.Fatalf("second CreateIndexes() error: %v", err)
	}
}

func TestNew_FileDatabase(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "events.duckdb")
	cfg := &config.DatabaseConfig{Path: path, MaxMemory: "512MB", Threads: 2}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	insertTestEvents(t, db, []models.Event{{ID: "F1", Lat: 1, Lon: 2, Year: 2020}})
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	reopened, err := New(cfg)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.CountEvents(context.Background())
	if err != nil {
		t.Fatalf("CountEvents() error: %v", err)
	}
	if count != 1 {
		t.Errorf("reopened database has %d events, want 1", count)
	}
	if reopened.GetDatabasePath() != path {
		t.Errorf("GetDatabasePath() = %q, want %q", reopened.GetDatabasePath(), path)
	}
}

func TestClose_MakesStoreUnavailable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}

	if err := db.Ping(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Ping() after close = %v, want ErrStoreUnavailable", err)
	}
	if _, err := db.GetDataRange(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("GetDataRange() after close = %v, want ErrStoreUnavailable", err)
	}
	if _, err := db.GetClusters(ctx, models.FilterSet{StartYear: 2000, EndYear: 2020}, 0); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("GetClusters() after close = %v, want ErrStoreUnavailable", err)
	}
}

func TestEnsureContext(t *testing.T) {
	t.Parallel()

	db := &DB{cfg: &config.DatabaseConfig{QueryTimeout: 2 * time.Second}}

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("ensureContext should add a deadline")
	}
	if remaining := time.Until(deadline); remaining > 2*time.Second {
		t.Errorf("deadline %v exceeds configured timeout", remaining)
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Hour)
	defer parentCancel()
	kept, keptCancel := db.ensureContext(parent)
	defer keptCancel()
	if kept != parent {
		t.Error("ensureContext should keep an existing deadline")
	}
}

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("read: connection reset by peer"), true},
		{errors.New("write: broken pipe"), true},
		{errors.New("driver: bad connection"), true},
		{errors.New("sql: database is closed"), true},
		{ErrStoreUnavailable, true},
		{errors.New("Binder Error: column not found"), false},
	}

	for _, tt := range tests {
		if got := isConnectionError(tt.err); got != tt.want {
			t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
