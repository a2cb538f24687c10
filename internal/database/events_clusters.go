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

	"github.com/tomtom215/conflictglobe/internal/cluster"
	"github.com/tomtom215/conflictglobe/internal/database/query"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// clustersQuery bins matching events on trunc(coord * 10^p) and summarizes
// each cell. The factor and limit are formatted from trusted integers; GROUP
// BY expressions cannot reference bind parameters.
const clustersQuery = `
WITH binned AS (
	SELECT lat, lon,
		trunc(lat * %[1]d) AS lat_bin,
		trunc(lon * %[1]d) AS lon_bin
	FROM events
	WHERE %[2]s AND isfinite(lat) AND isfinite(lon)
)
SELECT
	round(avg(lat), 4) AS c_lat,
	round(avg(lon), 4) AS c_lon,
	COUNT(*) AS c_count,
	min(lat) AS min_lat,
	max(lat) AS max_lat,
	min(lon) AS min_lng,
	max(lon) AS max_lng
FROM binned
GROUP BY lat_bin, lon_bin
ORDER BY c_count DESC, c_lat ASC, c_lon ASC
LIMIT %[3]d`

// GetClusters returns the grid clusters of events matching the filter at the
// given precision, largest first, capped at cluster.MaxClusters.
func (db *DB) GetClusters(ctx context.Context, filter models.FilterSet, precision int) ([]models.Cluster, error) {
	if err := db.ready(); err != nil {
		return nil, err
	}
	if precision < cluster.MinPrecision || precision > cluster.MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d out of range", ErrInvalidArgument, precision)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	pred := query.BaseFilter(filter)
	factor := int64(cluster.Factor(precision))
	sqlText := fmt.Sprintf(clustersQuery, factor, pred.SQL(), cluster.MaxClusters)

	start := time.Now()
	clusters, err := queryAndScan(ctx, db.conn, sqlText, pred.Args(), scanCluster)
	db.observe(ctx, "clusters", start, len(clusters), err)
	if err != nil {
		return nil, db.wrapErr("get clusters", err)
	}
	return clusters, nil
}

func scanCluster(rows *sql.Rows) (models.Cluster, error) {
	var c models.Cluster
	var count int64
	if err := rows.Scan(&c.Lat, &c.Lon, &count,
		&c.Bounds.MinLat, &c.Bounds.MaxLat, &c.Bounds.MinLng, &c.Bounds.MaxLng); err != nil {
		return c, fmt.Errorf("failed to scan cluster: %w", err)
	}
	c.Count = int(count)
	c.IsCluster = true
	return c, nil
}
