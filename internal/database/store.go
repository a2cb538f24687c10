// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// Store is the read surface shared by the DuckDB store, the in-memory store
// and the circuit breaker wrapper.
type Store interface {
	GetClusters(ctx context.Context, filter models.FilterSet, precision int) ([]models.Cluster, error)
	GetEventsInBounds(ctx context.Context, filter models.FilterSet, box models.Bounds, limit int) ([]models.Event, error)
	GetFilterOptions(ctx context.Context, startYear, endYear int) (models.FilterOptions, error)
	SearchGroups(ctx context.Context, term string, startYear, endYear, limit int) ([]string, error)
	GetDataRange(ctx context.Context) (models.DataRange, error)
	GetSummary(ctx context.Context, filter models.FilterSet) (models.Summary, error)
	Ping(ctx context.Context) error
	Backend() string
}

// EventWriter accepts imported events. Implementations skip ids already stored.
type EventWriter interface {
	InsertEvents(ctx context.Context, events []models.Event) (int, error)
}

var (
	_ Store       = (*DB)(nil)
	_ EventWriter = (*DB)(nil)
	_ Store       = (*CircuitBreakerStore)(nil)
)
