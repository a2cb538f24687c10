// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package models defines the data structures shared by the event stores and the
HTTP API.

Key Components:

  - Event: one observed incident, read-only after ingestion
  - Cluster: ephemeral grid-cell aggregate returned for overview zoom levels
  - Bounds: inclusive lat/lon box used both as cluster extent and drill-down input
  - FilterSet: year range plus optional group and event type filters
  - Summary, FilterOptions, DataRange: chart and picker payloads

JSON field names follow the wire format consumed by the globe frontend
(camelCase for clusters and summaries, snake_case for ingested event payload
fields such as location_name).

Usage Example:

	filter := models.FilterSet{StartYear: 2019, EndYear: 2021, Group: "Militia X"}
	clusters, err := store.GetClusters(ctx, filter, cluster.SelectPrecision(zoom))
*/
package models
