// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package api provides the HTTP JSON API consumed by the globe frontend.

The API is read-only. Every endpoint parses and validates its query string,
calls one EventStore operation and writes the result as JSON. Errors are
always {"error": "..."} with a fixed, endpoint-specific message.

Endpoints:

  - GET /api/config/datarange: min and max event year
  - GET /api/filter_options: distinct groups and event types in a year range
  - GET /api/search_groups: case-insensitive substring search over groups
  - GET /api/events: grid clusters for the current zoom level
  - GET /api/events_in_cluster: individual events inside a cluster's bounds
  - GET /api/events/summary: per-year, per-group and per-type counts
  - GET /api/health/live, /api/health/ready: liveness and store readiness
  - GET /metrics: Prometheus exposition
  - GET /swagger/*: Swagger UI over the generated OpenAPI document

Status codes:

  - 400: a required parameter is missing or not a finite number, or a limit
    is out of range. The store is never called.
  - 503: the store is not connected, closed, unreachable or its circuit
    breaker is open (database.ErrStoreUnavailable).
  - 500: any other store failure. The cause is logged with the request and
    correlation IDs, the response carries only the endpoint message.

Middleware Stack:

SetupChi applies, in order: request ID and logging context, RealIP,
Recoverer, CORS (go-chi/cors) and Prometheus request metrics. The data
routes are additionally rate limited per client IP with go-chi/httprate and
gzip compressed. Health probes are not rate limited.

Usage:

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

See Also:

  - internal/database: DuckDB store and circuit breaker
  - internal/memstore: in-memory store
  - internal/middleware: request ID, metrics and compression middleware
*/
package api
