// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/models"
)

const insertEventQuery = `INSERT INTO events (
	id, lat, lon, year, group_name, event_type, date, description,
	fatalities, location_name, group1, group2
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING`

// InsertEvents inserts events in a single transaction and returns how many
// rows were new. Events whose id is already stored are skipped, so repeating
// an import is a no-op. All inserts succeed or all are rolled back.
func (db *DB) InsertEvents(ctx context.Context, events []models.Event) (inserted int, err error) {
	if err := db.ready(); err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	start := time.Now()
	defer func() {
		db.observe(ctx, "insert_events", start, inserted, err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, db.wrapErr("begin insert transaction", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertEventQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, nil, "prepared statement")

	for i := range events {
		ev := &events[i]
		if ev.ID == "" || !ev.HasValidLocation() {
			return 0, fmt.Errorf("%w: event %d has no id or a non-finite location", ErrInvalidArgument, i)
		}

		result, execErr := stmt.ExecContext(ctx,
			ev.ID, ev.Lat, ev.Lon, ev.Year,
			nullIfEmpty(ev.Group), nullIfEmpty(ev.Type), nullIfEmpty(ev.Date), nullIfEmpty(ev.Description),
			ev.Fatalities, nullIfEmpty(ev.LocationName), nullIfEmpty(ev.Group1), nullIfEmpty(ev.Group2))
		if execErr != nil {
			err = fmt.Errorf("failed to insert event %s: %w", ev.ID, execErr)
			return 0, err
		}

		rowsAffected, rowsErr := result.RowsAffected()
		if rowsErr != nil {
			err = fmt.Errorf("failed to read rows affected: %w", rowsErr)
			return 0, err
		}
		inserted += int(rowsAffected)
	}

	if err = tx.Commit(); err != nil {
		return 0, db.wrapErr("commit insert transaction", err)
	}

	return inserted, nil
}

// RecordImportRun stores the outcome of one events.json import.
func (db *DB) RecordImportRun(ctx context.Context, source string, read, inserted, skipped int) error {
	if err := db.ready(); err != nil {
		return err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO import_runs (source, records_read, records_inserted, records_skipped) VALUES (?, ?, ?, ?)`,
		source, read, inserted, skipped)
	if err != nil {
		return db.wrapErr("record import run", err)
	}
	return nil
}

// nullIfEmpty maps "" to SQL NULL so facet queries see one kind of blank.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
