// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package models

// Bounds is an inclusive lat/lon box.
//
// As a cluster extent it holds the true extrema of the member events, not the
// nominal grid cell. As drill-down input it is applied inclusively on all four
// edges so that every member of the originating cluster is matched.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// IsFinite reports whether all four edges are finite numbers.
func (b Bounds) IsFinite() bool {
	return isFinite(b.MinLat) && isFinite(b.MaxLat) && isFinite(b.MinLng) && isFinite(b.MaxLng)
}

// Cluster is the aggregated summary of all events falling in one grid cell.
// Computed fresh per request and never persisted.
type Cluster struct {
	Lat       float64 `json:"lat"`   // mean latitude, rounded to 4 decimals
	Lon       float64 `json:"lon"`   // mean longitude, rounded to 4 decimals
	Count     int     `json:"count"` // number of member events
	IsCluster bool    `json:"isCluster"`
	Bounds    Bounds  `json:"bounds"`
}
