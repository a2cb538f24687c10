// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package memstore provides an in-memory event store.

It implements the same database.Store surface as the DuckDB backend and is
selected with STORE_BACKEND=memory. Events are loaded once at startup from
the ETL's events.json (or seeded mock data) and never modified afterwards.

Clustering runs in-process through cluster.Aggregate, using the same
truncating bin keys, centroid rounding and extrema bounds as the SQL path.
Drill-down queries are served from a uniform grid index so a box lookup only
touches the cells it overlaps.

All methods are safe for concurrent use. Readers share an RWMutex; inserts
take the write lock for the duration of one batch.

	store := memstore.New()
	if _, err := store.InsertEvents(ctx, events); err != nil {
	    return err
	}
	clusters, err := store.GetClusters(ctx, filter, cluster.SelectPrecision(zoom))
*/
package memstore
