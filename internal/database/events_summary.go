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

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/conflictglobe/internal/database/query"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// labelCount is one row of a grouped count.
type labelCount struct {
	label string
	count int
}

func scanLabelCount(rows *sql.Rows) (labelCount, error) {
	var lc labelCount
	var count int64
	if err := rows.Scan(&lc.label, &count); err != nil {
		return lc, fmt.Errorf("failed to scan grouped count: %w", err)
	}
	lc.count = int(count)
	return lc, nil
}

// countBy groups the predicate's events by column, dropping NULL and empty
// labels, ordered by count descending then label ascending.
func (db *DB) countBy(ctx context.Context, column string, pred query.Predicate) ([]labelCount, error) {
	pred = pred.AndNotEmpty(column)
	sqlText := fmt.Sprintf(
		"SELECT %[1]s, COUNT(*) AS n FROM events WHERE %[2]s GROUP BY %[1]s ORDER BY n DESC, %[1]s ASC",
		column, pred.SQL())
	return queryAndScan(ctx, db.conn, sqlText, pred.Args(), scanLabelCount)
}

// countByYear groups the predicate's events by year ascending. Years are
// rendered as strings for the chart's category axis.
func (db *DB) countByYear(ctx context.Context, pred query.Predicate) ([]models.YearCount, error) {
	sqlText := "SELECT CAST(year AS VARCHAR), COUNT(*) FROM events WHERE " + pred.SQL() + " GROUP BY year ORDER BY year ASC"
	return queryAndScan(ctx, db.conn, sqlText, pred.Args(), func(rows *sql.Rows) (models.YearCount, error) {
		var yc models.YearCount
		var count int64
		if err := rows.Scan(&yc.Year, &count); err != nil {
			return yc, fmt.Errorf("failed to scan year count: %w", err)
		}
		yc.Count = int(count)
		return yc, nil
	})
}

// GetSummary computes the dashboard chart aggregations for the filter set.
// The aggregations run concurrently; any failure fails the whole summary.
func (db *DB) GetSummary(ctx context.Context, filter models.FilterSet) (models.Summary, error) {
	if err := db.ready(); err != nil {
		return models.Summary{}, err
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	base := query.BaseFilter(filter)
	var (
		summary      models.Summary
		byGroup      []labelCount
		byTypeGlobal []labelCount
		bySelected   []labelCount
	)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.ByYear, err = db.countByYear(gctx, base)
		return err
	})
	g.Go(func() error {
		var err error
		byGroup, err = db.countBy(gctx, query.ColumnGroup, base)
		return err
	})
	g.Go(func() error {
		var err error
		byTypeGlobal, err = db.countBy(gctx, query.ColumnEventType, query.WithoutGroup(filter))
		return err
	})
	if filter.HasGroup() {
		g.Go(func() error {
			var err error
			bySelected, err = db.countBy(gctx, query.ColumnEventType, base)
			return err
		})
	}
	err := g.Wait()
	db.observe(ctx, "summary", start, len(summary.ByYear)+len(byGroup)+len(byTypeGlobal), err)
	if err != nil {
		return models.Summary{}, db.wrapErr("get summary", err)
	}

	summary.ByGroup = toGroupCounts(byGroup)
	summary.ByEventTypeGlobal = toTypeCounts(byTypeGlobal)
	if filter.HasGroup() {
		summary.EventTypeCountsForSelectedGroup = toTypeCounts(bySelected)
	}
	return summary, nil
}

func toGroupCounts(in []labelCount) []models.GroupCount {
	out := make([]models.GroupCount, len(in))
	for i, lc := range in {
		out[i] = models.GroupCount{Group: lc.label, Count: lc.count}
	}
	return out
}

func toTypeCounts(in []labelCount) []models.TypeCount {
	out := make([]models.TypeCount, len(in))
	for i, lc := range in {
		out[i] = models.TypeCount{Type: lc.label, Count: lc.count}
	}
	return out
}
