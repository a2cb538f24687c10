// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

import (
	"context"
	"time"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// EventStore is the store surface the handlers depend on. Both
// *database.DB, *database.CircuitBreakerStore and *memstore.Store satisfy it.
type EventStore interface {
	GetClusters(ctx context.Context, filter models.FilterSet, precision int) ([]models.Cluster, error)
	GetEventsInBounds(ctx context.Context, filter models.FilterSet, box models.Bounds, limit int) ([]models.Event, error)
	GetFilterOptions(ctx context.Context, startYear, endYear int) (models.FilterOptions, error)
	SearchGroups(ctx context.Context, term string, startYear, endYear, limit int) ([]string, error)
	GetDataRange(ctx context.Context) (models.DataRange, error)
	GetSummary(ctx context.Context, filter models.FilterSet) (models.Summary, error)
	Ping(ctx context.Context) error
	Backend() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and error helpers
//   - handlers_events.go: cluster and drill-down endpoints
//   - handlers_facets.go: data range, filter options, group search, summary
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	store     EventStore
	startTime time.Time
}

// NewHandler creates a handler over store. A nil store is allowed: every
// data endpoint then answers 503 "Database not connected" and the readiness
// probe fails, which is how the server behaves before the store is ready.
func NewHandler(store EventStore) *Handler {
	return &Handler{
		store:     store,
		startTime: time.Now(),
	}
}
