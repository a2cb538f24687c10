// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package eventimport

import (
	"time"
)

// Record is one element of the events.json array. Pointer fields
// distinguish "absent" from zero.
type Record struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Year         *int     `json:"year"`
	Type         string   `json:"type"`
	Group        string   `json:"group"`
	Group1       string   `json:"group1"`
	Group2       string   `json:"group2"`
	LocationName string   `json:"location_name"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	Description  string   `json:"description"`
	Fatalities   int      `json:"fatalities"`
}

// ImportStats holds statistics about an import operation.
type ImportStats struct {
	// Source is the file or stream the records came from.
	Source string

	// Read is the number of records decoded.
	Read int

	// Inserted is the number of records the store accepted as new.
	Inserted int

	// Skipped is the number of records rejected by validation.
	Skipped int

	// Duplicates is the number of valid records whose id was already stored.
	Duplicates int

	// StartTime is when the import started.
	StartTime time.Time

	// EndTime is when the import completed (zero if still running).
	EndTime time.Time
}

// Duration returns the duration of the import operation.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// RecordsPerSecond returns the import rate.
func (s *ImportStats) RecordsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Read) / duration
}
