// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package cluster

import (
	"math"
	"sort"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// BinKey identifies one grid cell at a given precision.
type BinKey struct {
	LatBin int64
	LonBin int64
}

// KeyFor computes the bin key of a point. Both axes truncate toward zero.
func KeyFor(lat, lon float64, precision int) BinKey {
	factor := Factor(precision)
	return BinKey{
		LatBin: int64(math.Trunc(lat * factor)),
		LonBin: int64(math.Trunc(lon * factor)),
	}
}

type accumulator struct {
	count  int
	sumLat float64
	sumLon float64
	extent Extent
}

// Aggregate bins the events at the given precision and summarizes each
// non-empty cell. Events with non-finite coordinates are skipped.
// The result is sorted and capped as described in the package doc, and is
// never nil.
func Aggregate(events []models.Event, precision int) []models.Cluster {
	bins := make(map[BinKey]*accumulator)
	for i := range events {
		ev := &events[i]
		if !ev.HasValidLocation() {
			continue
		}
		key := KeyFor(ev.Lat, ev.Lon, precision)
		acc, ok := bins[key]
		if !ok {
			acc = &accumulator{extent: NewExtent()}
			bins[key] = acc
		}
		acc.count++
		acc.sumLat += ev.Lat
		acc.sumLon += ev.Lon
		acc.extent = acc.extent.Add(ev.Lat, ev.Lon)
	}

	clusters := make([]models.Cluster, 0, len(bins))
	for _, acc := range bins {
		n := float64(acc.count)
		clusters = append(clusters, models.Cluster{
			Lat:       Round4(acc.sumLat / n),
			Lon:       Round4(acc.sumLon / n),
			Count:     acc.count,
			IsCluster: true,
			Bounds:    acc.extent.Bounds(),
		})
	}

	Sort(clusters)
	return Cap(clusters)
}

// Sort orders clusters by count descending, then lat and lon ascending.
func Sort(clusters []models.Cluster) {
	sort.Slice(clusters, func(i, j int) bool {
		a, b := clusters[i], clusters[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Lat != b.Lat {
			return a.Lat < b.Lat
		}
		return a.Lon < b.Lon
	})
}

// Cap truncates an already sorted slice to MaxClusters.
func Cap(clusters []models.Cluster) []models.Cluster {
	if len(clusters) > MaxClusters {
		return clusters[:MaxClusters]
	}
	return clusters
}

// Total returns the sum of member counts.
func Total(clusters []models.Cluster) int {
	total := 0
	for i := range clusters {
		total += clusters[i].Count
	}
	return total
}
