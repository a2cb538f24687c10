// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is shared by every API handler. Request
// structs carry validate tags; the handler parses query parameters into the
// struct and calls ValidateStruct before touching the event store.
//
// # Custom Tags
//
//   - finite: float fields must not be NaN or +/-Inf
//
// # Usage
//
//	type clusterEventsRequest struct {
//	    MinLat float64 `validate:"finite"`
//	    Limit  int     `validate:"gt=0,max=10000"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    if verr.HasField("Limit") {
//	        // limit-specific message
//	    }
//	}
//
// # Thread Safety
//
// GetValidator initializes the validator once via sync.Once. The validator
// caches struct metadata and is safe for concurrent use.
package validation
