// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/conflictglobe/internal/config"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/metrics"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// DefaultBreakerName labels the event store breaker in logs and metrics.
const DefaultBreakerName = "event-store"

// CircuitBreakerStore wraps a Store with a circuit breaker. After
// FailureThreshold consecutive store failures every call fails fast with
// ErrStoreUnavailable until the breaker's timeout elapses.
//
// The breaker never retries. Invalid arguments and caller cancellations do
// not count as failures.
type CircuitBreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
	log   *logging.StoreLogger
}

// NewCircuitBreakerStore wraps store with a breaker configured from cfg.
func NewCircuitBreakerStore(store Store, cfg config.BreakerConfig) *CircuitBreakerStore {
	return newCircuitBreakerStore(DefaultBreakerName, store, cfg)
}

func newCircuitBreakerStore(name string, store Store, cfg config.BreakerConfig) *CircuitBreakerStore {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	cbs := &CircuitBreakerStore{
		store: store,
		name:  name,
		log:   logging.NewStoreLogger(store.Backend()),
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cbs.cb = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,           // Probes allowed in half-open state
		Interval:    time.Minute, // Reset counts after 1 minute in closed state
		Timeout:     timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},

		IsSuccessful: isBreakerSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			cbs.log.LogBreakerStateChange(name, fromStr, toStr)
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr)
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return cbs
}

// isBreakerSuccess decides which errors leave the breaker untouched.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, context.Canceled)
}

// State returns the breaker state name ("closed", "half-open", "open").
func (cbs *CircuitBreakerStore) State() string {
	return stateToString(cbs.cb.State())
}

// Unwrap returns the wrapped store.
func (cbs *CircuitBreakerStore) Unwrap() Store {
	return cbs.store
}

// execute runs fn through the breaker. Rejections map to ErrStoreUnavailable.
func (cbs *CircuitBreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbs.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordCircuitBreakerRequest(cbs.name, "rejected", cbs.cb.Counts().ConsecutiveFailures)
			return nil, fmt.Errorf("%w: circuit breaker %s: %w", ErrStoreUnavailable, cbs.name, err)
		}
		outcome := "failure"
		if isBreakerSuccess(err) {
			outcome = "success"
		}
		metrics.RecordCircuitBreakerRequest(cbs.name, outcome, cbs.cb.Counts().ConsecutiveFailures)
		return nil, err
	}

	metrics.RecordCircuitBreakerRequest(cbs.name, "success", 0)
	return result, nil
}

// castResult type-asserts the breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Backend returns the wrapped store's backend name.
func (cbs *CircuitBreakerStore) Backend() string {
	return cbs.store.Backend()
}

// Ping bypasses the breaker so readiness reflects the store itself.
func (cbs *CircuitBreakerStore) Ping(ctx context.Context) error {
	return cbs.store.Ping(ctx)
}

// GetClusters runs the clustering query with circuit breaker protection
func (cbs *CircuitBreakerStore) GetClusters(ctx context.Context, filter models.FilterSet, precision int) ([]models.Cluster, error) {
	return castResult[[]models.Cluster](cbs.execute(func() (interface{}, error) {
		return cbs.store.GetClusters(ctx, filter, precision)
	}))
}

// GetEventsInBounds runs the drill-down query with circuit breaker protection
func (cbs *CircuitBreakerStore) GetEventsInBounds(ctx context.Context, filter models.FilterSet, box models.Bounds, limit int) ([]models.Event, error) {
	return castResult[[]models.Event](cbs.execute(func() (interface{}, error) {
		return cbs.store.GetEventsInBounds(ctx, filter, box, limit)
	}))
}

// GetFilterOptions runs the facet queries with circuit breaker protection
func (cbs *CircuitBreakerStore) GetFilterOptions(ctx context.Context, startYear, endYear int) (models.FilterOptions, error) {
	return castResult[models.FilterOptions](cbs.execute(func() (interface{}, error) {
		return cbs.store.GetFilterOptions(ctx, startYear, endYear)
	}))
}

// SearchGroups runs the group search with circuit breaker protection
func (cbs *CircuitBreakerStore) SearchGroups(ctx context.Context, term string, startYear, endYear, limit int) ([]string, error) {
	return castResult[[]string](cbs.execute(func() (interface{}, error) {
		return cbs.store.SearchGroups(ctx, term, startYear, endYear, limit)
	}))
}

// GetDataRange runs the year range query with circuit breaker protection
func (cbs *CircuitBreakerStore) GetDataRange(ctx context.Context) (models.DataRange, error) {
	return castResult[models.DataRange](cbs.execute(func() (interface{}, error) {
		return cbs.store.GetDataRange(ctx)
	}))
}

// GetSummary runs the summary aggregations with circuit breaker protection
func (cbs *CircuitBreakerStore) GetSummary(ctx context.Context, filter models.FilterSet) (models.Summary, error) {
	return castResult[models.Summary](cbs.execute(func() (interface{}, error) {
		return cbs.store.GetSummary(ctx, filter)
	}))
}
