// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package models

import "math"

// Event represents one observed incident as stored and as returned by the
// drill-down endpoint.
//
// Lifecycle: created once during ingestion, never updated or deleted.
// ID is the ingestion identifier (ACLED event_id_cnty) and replaces any
// store-internal key in API output.
type Event struct {
	ID           string  `json:"id"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Year         int     `json:"year"`
	Group        string  `json:"group"`
	Type         string  `json:"type"`
	Date         string  `json:"date,omitempty"` // YYYY-MM-DD
	Description  string  `json:"description,omitempty"`
	Fatalities   int     `json:"fatalities"`
	LocationName string  `json:"location_name,omitempty"`
	Group1       string  `json:"group1,omitempty"`
	Group2       string  `json:"group2,omitempty"`

	// IsCluster is always false for events. It lets the renderer treat
	// clusters and events as one union type.
	IsCluster bool `json:"isCluster"`
}

// HasValidLocation reports whether both coordinates are finite numbers.
func (e *Event) HasValidLocation() bool {
	return isFinite(e.Lat) && isFinite(e.Lon)
}

// FilterSet is the ambient request context applied uniformly to clustering,
// drill-down and summary queries.
//
// Empty Group or EventType means "no filter", never "match the empty string".
// StartYear > EndYear is legal and matches nothing.
type FilterSet struct {
	StartYear int
	EndYear   int
	Group     string
	EventType string
}

// HasGroup reports whether a group filter is active.
func (f FilterSet) HasGroup() bool {
	return f.Group != ""
}

// HasEventType reports whether an event type filter is active.
func (f FilterSet) HasEventType() bool {
	return f.EventType != ""
}

// WithoutGroup returns a copy of the filter set with the group filter removed.
// Used for the global event-type distribution, which ignores the group filter.
func (f FilterSet) WithoutGroup() FilterSet {
	f.Group = ""
	return f
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
