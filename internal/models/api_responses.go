// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package models

// ErrorResponse is the body of every non-2xx API response.
//
//	{"error": "startYear and endYear must be valid numbers."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthStatus is returned by the liveness and readiness probes.
type HealthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
