// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
database_schema.go - Database Schema Management

Tables:
  - events: one row per conflict event imported from the ETL output
  - schema_migrations: applied migration versions (migrations.go)

Column naming:
The JSON fields "group" and "type" are stored as group_name and event_type.
GROUP is a reserved word and unquoted TYPE is ambiguous in DuckDB.

Index Strategy:
  - year: every query filters on the year range
  - (year, group_name) and (year, event_type): facet and summary scans
  - (lat, lon): drill-down box scans
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// getTableCreationQueries returns the table creation SQL statements
func getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			lat DOUBLE NOT NULL,
			lon DOUBLE NOT NULL,
			year INTEGER NOT NULL,
			group_name TEXT,
			event_type TEXT,
			date TEXT,
			description TEXT,
			fatalities INTEGER NOT NULL DEFAULT 0,
			location_name TEXT,
			group1 TEXT,
			group2 TEXT
		);`,
	}
}

// createIndexes creates database indexes for query optimization.
// Skipped when cfg.SkipIndexes is set (fast test setup).
func (db *DB) createIndexes() error {
	if db.cfg != nil && db.cfg.SkipIndexes {
		return nil
	}
	return db.CreateIndexes()
}

// CreateIndexes creates all database indexes.
func (db *DB) CreateIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getIndexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute index query: %s: %w", query, err)
		}
	}

	return nil
}

// getIndexQueries returns index creation SQL statements
func getIndexQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_events_year ON events(year);`,
		`CREATE INDEX IF NOT EXISTS idx_events_year_group ON events(year, group_name);`,
		`CREATE INDEX IF NOT EXISTS idx_events_year_type ON events(year, event_type);`,
		`CREATE INDEX IF NOT EXISTS idx_events_lat_lon ON events(lat, lon);`,
	}
}
