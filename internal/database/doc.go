// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package database provides the DuckDB-backed event store.
//
// # Overview
//
// The store holds one row per conflict event and answers the read queries of
// the HTTP API: grid clusters, cluster drill-down, facet lists, group search,
// the global year range and the dashboard summary. Every query composes its
// WHERE clause from query.BaseFilter so clustering, drill-down and the charts
// agree on which events a filter set selects.
//
// # Files
//
//   - database.go: lifecycle (open, initialize, close)
//   - database_connection.go: pool configuration and error classification
//   - database_schema.go: events table and indexes
//   - migrations.go: versioned migrations tracked in schema_migrations
//   - events_clusters.go: trunc-binned GROUP BY clustering
//   - events_drilldown.go: inclusive box drill-down
//   - events_facets.go: filter options, group search, data range
//   - events_summary.go: concurrent chart aggregations (errgroup)
//   - events_insert.go: transactional, idempotent event import
//   - seed.go: deterministic synthetic events for development
//   - circuit_breaker.go: gobreaker wrapper shared with the memory store
//
// # Errors
//
// Store methods wrap failures with the operation name. Callers classify them
// with errors.Is:
//
//   - ErrStoreUnavailable: closed store, lost connection or open breaker
//   - ErrInvalidArgument: non-finite box, non-positive limit, bad precision
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to open database")
//	}
//	defer db.Close()
//
//	store := database.NewCircuitBreakerStore(db, cfg.Database.Breaker)
//	clusters, err := store.GetClusters(ctx, filter, cluster.SelectPrecision(zoom))
//
// # Thread Safety
//
// DB is safe for concurrent use. database/sql pools DuckDB connections and
// the closed flag is atomic.
package database
