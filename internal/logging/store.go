// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package logging

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SlowQueryThreshold is the duration above which store queries are logged at
// warn level.
const SlowQueryThreshold = 2 * time.Second

// StoreLogger provides logging for event store operations with
// domain-specific methods for queries, imports and breaker transitions.
type StoreLogger struct {
	logger zerolog.Logger
}

// NewStoreLogger creates a logger tagged with the store backend name.
func NewStoreLogger(backend string) *StoreLogger {
	return &StoreLogger{
		logger: With().Str("component", "store").Str("backend", backend).Logger(),
	}
}

// NewStoreLoggerWithLogger creates a StoreLogger writing to a custom logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStoreLoggerWithLogger(logger zerolog.Logger, backend string) *StoreLogger {
	return &StoreLogger{
		logger: logger.With().Str("component", "store").Str("backend", backend).Logger(),
	}
}

// loggerWithContext returns a logger with request correlation fields added.
func (s *StoreLogger) loggerWithContext(ctx context.Context) zerolog.Logger {
	logCtx := s.logger.With()
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	return logCtx.Logger()
}

// LogQuery records a completed store query. Failures log at error level,
// slow queries at warn, everything else at debug.
func (s *StoreLogger) LogQuery(ctx context.Context, operation string, duration time.Duration, rows int, err error) {
	logger := s.loggerWithContext(ctx)

	var event *zerolog.Event
	switch {
	case err != nil:
		event = logger.Error().Err(err)
	case duration >= SlowQueryThreshold:
		event = logger.Warn()
	default:
		event = logger.Debug()
	}

	event.
		Str("operation", operation).
		Dur("duration", duration).
		Int("rows", rows).
		Msg("store query")
}

// LogImport records the outcome of an events.json import.
func (s *StoreLogger) LogImport(source string, read, inserted, skipped int, duration time.Duration) {
	s.logger.Info().
		Str("source", source).
		Int("read", read).
		Int("inserted", inserted).
		Int("skipped", skipped).
		Dur("duration", duration).
		Msg("events imported")
}

// LogSeed records mock data seeding.
func (s *StoreLogger) LogSeed(count int) {
	s.logger.Info().Int("events", count).Msg("seeded mock events")
}

// LogBreakerStateChange records a circuit breaker transition.
func (s *StoreLogger) LogBreakerStateChange(name, from, to string) {
	event := s.logger.Info()
	if to == "open" {
		event = s.logger.Warn()
	}
	event.
		Str("breaker", name).
		Str("from", from).
		Str("to", to).
		Msg("circuit breaker state changed")
}
