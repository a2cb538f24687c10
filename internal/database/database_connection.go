// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
database_connection.go - Connection Pool and Error Classification

Connection Pool Configuration:
  - MaxOpenConns: Based on CPU count for parallelism
  - MaxIdleConns: 2 for efficient connection reuse
  - ConnMaxLifetime: 1 hour to prevent stale connections
  - ConnMaxIdleTime: 5 minutes for idle connection cleanup

Error Classification:
Connection failures (refused, reset, broken pipe, closed pool) are wrapped
with ErrStoreUnavailable so the HTTP layer answers 503. Everything else is a
query error and surfaces as 500.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() error {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
	return nil
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "bad connection") ||
		strings.Contains(errMsg, "database is closed")
}

// wrapErr annotates a store error with the operation name. Connection
// failures additionally match ErrStoreUnavailable.
func (db *DB) wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrStoreUnavailable) && (db.closed.Load() || isConnectionError(err)) {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ready returns ErrStoreUnavailable once the store has been closed.
func (db *DB) ready() error {
	if db == nil || db.conn == nil || db.closed.Load() {
		return ErrStoreUnavailable
	}
	return nil
}
