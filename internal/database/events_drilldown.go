// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/conflictglobe/internal/database/query"
	"github.com/tomtom215/conflictglobe/internal/models"
)

const eventColumns = `id, lat, lon, year,
	COALESCE(group_name, ''), COALESCE(event_type, ''), COALESCE(date, ''),
	COALESCE(description, ''), fatalities, COALESCE(location_name, ''),
	COALESCE(group1, ''), COALESCE(group2, '')`

// GetEventsInBounds returns up to limit events matching the filter whose
// coordinates fall inside the inclusive box, ordered by id.
//
// The same filter predicate is used as GetClusters, so the box of a returned
// cluster yields exactly its Count members.
func (db *DB) GetEventsInBounds(ctx context.Context, filter models.FilterSet, box models.Bounds, limit int) ([]models.Event, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}
	if !box.IsFinite() {
		return nil, fmt.Errorf("%w: box coordinates must be finite", ErrInvalidArgument)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	pred := query.BaseFilter(filter).AndBox(box)
	sqlText := "SELECT " + eventColumns + " FROM events WHERE " + pred.SQL() + " ORDER BY id LIMIT ?"
	args := append(pred.Args(), limit)

	start := time.Now()
	events, err := queryAndScan(ctx, db.conn, sqlText, args, scanEvent)
	db.observe(ctx, "events_in_bounds", start, len(events), err)
	if err != nil {
		return nil, db.wrapErr("get events in bounds", err)
	}
	return events, nil
}

func scanEvent(rows *sql.Rows) (models.Event, error) {
	var e models.Event
	var year, fatalities int64
	if err := rows.Scan(&e.ID, &e.Lat, &e.Lon, &year,
		&e.Group, &e.Type, &e.Date, &e.Description, &fatalities,
		&e.LocationName, &e.Group1, &e.Group2); err != nil {
		return e, fmt.Errorf("failed to scan event: %w", err)
	}
	e.Year = int(year)
	e.Fatalities = int(fatalities)
	return e, nil
}
