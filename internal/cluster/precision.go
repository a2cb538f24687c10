// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package cluster

import "math"

// Precision bounds. A precision p produces cells of 10^-p degrees.
const (
	MinPrecision = 0
	MaxPrecision = 3

	// MaxClusters caps every cluster response regardless of data cardinality.
	MaxClusters = 2000

	// DefaultZoom is applied when the client omits zoomLevel.
	DefaultZoom = 5.0
)

// SelectPrecision maps a continuous zoom level to a grid precision.
//
// The mapping is monotonically non-decreasing. NaN compares false against every
// threshold and therefore falls through to MaxPrecision; callers that accept
// user input reject NaN before calling.
func SelectPrecision(zoom float64) int {
	switch {
	case zoom < 5:
		return 0
	case zoom < 8:
		return 1
	case zoom < 11:
		return 2
	default:
		return MaxPrecision
	}
}

// Factor returns 10^precision, clamped to the supported precision range.
func Factor(precision int) float64 {
	return math.Pow10(clampPrecision(precision))
}

func clampPrecision(p int) int {
	if p < MinPrecision {
		return MinPrecision
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}
