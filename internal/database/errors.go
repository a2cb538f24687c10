// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tomtom215/conflictglobe/internal/logging"
)

var (
	// ErrStoreUnavailable means the store is not connected, has been closed,
	// lost its connection, or is short-circuited by the breaker.
	ErrStoreUnavailable = errors.New("event store unavailable")

	// ErrInvalidArgument means a caller passed input the store refuses to
	// run: non-finite coordinates or a non-positive limit.
	ErrInvalidArgument = errors.New("invalid store argument")
)

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, logger *slog.Logger, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if logger != nil {
			logger.Error("failed to close resource",
				"type", resourceType,
				"error", err)
		} else {
			logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
		}
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
