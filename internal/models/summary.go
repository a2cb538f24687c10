// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package models

// YearCount is one point of the time-series chart. Year is rendered as a
// string to match the chart's category axis.
type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// GroupCount is one slice of the group pie chart.
type GroupCount struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

// TypeCount is one slice of an event-type distribution.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Summary holds the dashboard chart aggregations for one filter set.
//
// ByYear and ByGroup honor every filter. ByEventTypeGlobal ignores the group
// filter so the chart keeps showing the full type landscape.
// EventTypeCountsForSelectedGroup is only present when a group filter is set.
type Summary struct {
	ByYear                          []YearCount  `json:"byYear"`
	ByGroup                         []GroupCount `json:"byGroup"`
	ByEventTypeGlobal               []TypeCount  `json:"byEventTypeGlobal"`
	EventTypeCountsForSelectedGroup []TypeCount  `json:"eventTypeCountsForSelectedGroup,omitempty"`
}

// FilterOptions lists distinct non-empty facet values for the filter pickers.
type FilterOptions struct {
	Groups     []string `json:"groups"`
	EventTypes []string `json:"eventTypes"`
}

// DataRange is the global min/max event year.
type DataRange struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// DefaultMinYear is reported as minYear when the store holds no events.
const DefaultMinYear = 1990
