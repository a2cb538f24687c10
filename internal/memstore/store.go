// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// Store holds every event in memory.
type Store struct {
	mu     sync.RWMutex
	events []models.Event
	ids    map[string]struct{}
	index  *gridIndex
	closed bool
	log    *logging.StoreLogger
}

var (
	_ database.Store       = (*Store)(nil)
	_ database.EventWriter = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{
		ids:   make(map[string]struct{}),
		index: newGridIndex(defaultCellSize),
		log:   logging.NewStoreLogger(config.BackendMemory),
	}
}

// Backend returns the backend name used in logs and metrics.
func (s *Store) Backend() string {
	return config.BackendMemory
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Ping reports ErrStoreUnavailable once the store is closed.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return database.ErrStoreUnavailable
	}
	return nil
}

// Close releases the events. Later calls fail with ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.events = nil
	s.ids = make(map[string]struct{})
	s.index = newGridIndex(defaultCellSize)
	return nil
}

// InsertEvents adds events whose id is not already stored and returns how
// many were new. The batch is validated before anything is added, so an
// invalid event leaves the store unchanged.
func (s *Store) InsertEvents(ctx context.Context, events []models.Event) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	for i := range events {
		if events[i].ID == "" || !events[i].HasValidLocation() {
			return 0, fmt.Errorf("%w: event %d has no id or a non-finite location", database.ErrInvalidArgument, i)
		}
	}

	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, database.ErrStoreUnavailable
	}

	inserted := 0
	for i := range events {
		ev := events[i]
		if _, exists := s.ids[ev.ID]; exists {
			continue
		}
		ev.IsCluster = false
		s.ids[ev.ID] = struct{}{}
		s.index.insert(len(s.events), ev.Lat, ev.Lon)
		s.events = append(s.events, ev)
		inserted++
	}

	s.log.LogQuery(ctx, "insert_events", time.Since(start), inserted, nil)
	return inserted, nil
}

// readable returns ErrStoreUnavailable when closed. Caller holds the read lock.
func (s *Store) readable(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed {
		return database.ErrStoreUnavailable
	}
	return nil
}

// matches reports whether ev passes the filter set.
func matches(ev *models.Event, f models.FilterSet) bool {
	if ev.Year < f.StartYear || ev.Year > f.EndYear {
		return false
	}
	if f.HasGroup() && ev.Group != f.Group {
		return false
	}
	if f.HasEventType() && ev.Type != f.EventType {
		return false
	}
	return true
}
