// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package logging provides centralized zerolog-based structured logging for Conflict Globe.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from LoggingConfig
//   - JSON output for production and console output for development
//   - Context-aware logging with request and correlation ID propagation
//   - An slog adapter for sutureslog and other slog consumers
//   - StoreLogger with event-store specific helpers
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to fetch event summary")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// The level can change at runtime through SetLevelString, which the config
// file watcher calls on reload.
//
// # Context Propagation
//
// The request ID middleware stores a request ID and a short correlation ID in
// the request context. Ctx(ctx) returns a logger carrying both:
//
//	{"level":"error","request_id":"6f1c...","correlation_id":"ab12cd34","message":"..."}
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(). Use structured fields
// instead of string formatting.
package logging
