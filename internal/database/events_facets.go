// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/conflictglobe/internal/database/query"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// distinctValues returns the sorted, distinct, non-empty values of column
// within the predicate.
func (db *DB) distinctValues(ctx context.Context, column string, pred query.Predicate, limit int) ([]string, error) {
	pred = pred.AndNotEmpty(column)
	sqlText := fmt.Sprintf("SELECT DISTINCT %[1]s FROM events WHERE %[2]s ORDER BY %[1]s", column, pred.SQL())
	args := pred.Args()
	if limit > 0 {
		sqlText += " LIMIT ?"
		args = append(args, limit)
	}
	return queryAndScan(ctx, db.conn, sqlText, args, scanString)
}

// GetFilterOptions lists the distinct non-empty groups and event types of
// events in the year range, each sorted ascending.
func (db *DB) GetFilterOptions(ctx context.Context, startYear, endYear int) (models.FilterOptions, error) {
	if err := db.ready(); err != nil {
		return models.FilterOptions{}, err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	pred := query.YearRange(startYear, endYear)
	var opts models.FilterOptions

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		groups, err := db.distinctValues(gctx, query.ColumnGroup, pred, 0)
		opts.Groups = groups
		return err
	})
	g.Go(func() error {
		types, err := db.distinctValues(gctx, query.ColumnEventType, pred, 0)
		opts.EventTypes = types
		return err
	})
	err := g.Wait()
	db.observe(ctx, "filter_options", start, len(opts.Groups)+len(opts.EventTypes), err)
	if err != nil {
		return models.FilterOptions{}, db.wrapErr("get filter options", err)
	}
	return opts, nil
}

// SearchGroups returns distinct group names in the year range that contain
// term case-insensitively, sorted ascending and capped at limit. The term is
// matched literally. A blank term returns an empty list without querying.
func (db *DB) SearchGroups(ctx context.Context, term string, startYear, endYear, limit int) ([]string, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidArgument, limit)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	pred := query.YearRange(startYear, endYear).AndILike(query.ColumnGroup, term)

	start := time.Now()
	groups, err := db.distinctValues(ctx, query.ColumnGroup, pred, limit)
	db.observe(ctx, "search_groups", start, len(groups), err)
	if err != nil {
		return nil, db.wrapErr("search groups", err)
	}
	return groups, nil
}

// GetDataRange returns the global min and max event year. An empty store
// reports models.DefaultMinYear through the current year.
func (db *DB) GetDataRange(ctx context.Context) (models.DataRange, error) {
	if err := db.ready(); err != nil {
		return models.DataRange{}, err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var minYear, maxYear sql.NullInt64
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, "SELECT MIN(year), MAX(year) FROM events").Scan(&minYear, &maxYear)
	db.observe(ctx, "datarange", start, 1, err)
	if err != nil {
		return models.DataRange{}, db.wrapErr("get data range", err)
	}

	if !minYear.Valid || !maxYear.Valid {
		return models.DataRange{MinYear: models.DefaultMinYear, MaxYear: time.Now().Year()}, nil
	}
	return models.DataRange{MinYear: int(minYear.Int64), MaxYear: int(maxYear.Int64)}, nil
}
