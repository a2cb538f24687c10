// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/conflictglobe/internal/metrics"
)

// defaultQueryTimeout applies when the config leaves QueryTimeout unset.
const defaultQueryTimeout = 30 * time.Second

// ensureContext adds the configured query deadline when the caller set none.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if db.cfg != nil && db.cfg.QueryTimeout > 0 {
		timeout = db.cfg.QueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	return ctx, func() {}
}

// observe records the duration and outcome of one store operation.
func (db *DB) observe(ctx context.Context, operation string, start time.Time, rows int, err error) {
	duration := time.Since(start)
	metrics.RecordDBQuery(operation, eventsTable, duration, err)
	db.log.LogQuery(ctx, operation, duration, rows, err)
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	if err := db.ready(); err != nil {
		return err
	}
	return db.checkpoint(ctx)
}

func (db *DB) checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// GetDatabasePath returns the path to the database file
func (db *DB) GetDatabasePath() string {
	return db.cfg.Path
}

// CountEvents returns the number of stored events.
func (db *DB) CountEvents(ctx context.Context) (int, error) {
	if err := db.ready(); err != nil {
		return 0, err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		return 0, db.wrapErr("count events", err)
	}
	return int(count), nil
}
