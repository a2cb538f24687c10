// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package cluster

import (
	"math"

	"github.com/golang/geo/r1"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// CentroidPlaces is the number of decimal places kept on cluster centroids.
const CentroidPlaces = 4

// centroidScale is 10^CentroidPlaces.
const centroidScale = 1e4

// Extent accumulates the true lat/lon extrema of a set of points.
// The zero value is not usable; create one with NewExtent.
type Extent struct {
	lat r1.Interval
	lng r1.Interval
}

// NewExtent returns an empty extent.
func NewExtent() Extent {
	return Extent{lat: r1.EmptyInterval(), lng: r1.EmptyInterval()}
}

// Add grows the extent to include the point.
func (e Extent) Add(lat, lon float64) Extent {
	e.lat = e.lat.AddPoint(lat)
	e.lng = e.lng.AddPoint(lon)
	return e
}

// IsEmpty reports whether no point has been added.
func (e Extent) IsEmpty() bool {
	return e.lat.IsEmpty()
}

// Bounds converts the extent to the wire representation.
func (e Extent) Bounds() models.Bounds {
	return models.Bounds{
		MinLat: e.lat.Lo,
		MaxLat: e.lat.Hi,
		MinLng: e.lng.Lo,
		MaxLng: e.lng.Hi,
	}
}

// Contains reports whether the point lies inside the inclusive box.
func Contains(b models.Bounds, lat, lon float64) bool {
	latI := r1.Interval{Lo: b.MinLat, Hi: b.MaxLat}
	lngI := r1.Interval{Lo: b.MinLng, Hi: b.MaxLng}
	return latI.Contains(lat) && lngI.Contains(lon)
}

// Round4 rounds v to CentroidPlaces decimals the way DuckDB's round(x, 4)
// does on a DOUBLE: scale, round half away from zero on the binary product,
// unscale. 0.00015 is stored just below the midpoint and rounds to 0.0001.
func Round4(v float64) float64 {
	r := math.Round(v*centroidScale) / centroidScale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}
