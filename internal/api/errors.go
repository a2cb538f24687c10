// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

// Client-facing error messages. The frontend matches on some of these, so
// they are kept stable.
const (
	msgDatabaseNotConnected = "Database not connected"
	msgRateLimited          = "Too many requests, please try again later."

	msgYearsInvalid      = "startYear and endYear must be valid numbers."
	msgZoomInvalid       = "zoomLevel must be a valid number."
	msgCenterInvalid     = "centerLat and centerLng must be valid numbers."
	msgYearsRequired     = "Valid startYear and endYear are required."
	msgClusterArgs       = "Valid startYear, endYear, and geo bounds (minLat, maxLat, minLng, maxLng) are required."
	msgLimitInvalid      = "limit must be a positive valid number."
	msgLimitTooLarge     = "limit must be at most %d."
	msgSearchTermMissing = "Search term must be a string."
	msgSearchTermTooLong = "Search term must be at most %d characters."

	msgEventsFailed        = "Failed to fetch events/clusters"
	msgClusterEventsFailed = "Failed to fetch events in cluster"
	msgDataRangeFailed     = "Failed to fetch data range"
	msgFilterOptionsFailed = "Failed to fetch filter options"
	msgSearchGroupsFailed  = "Failed to search groups"
	msgSummaryFailed       = "Failed to fetch event summary"
)
