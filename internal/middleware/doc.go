// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package middleware provides infrastructure HTTP middleware for the API server.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by the chi route pattern rather than the raw path
  - Compression: pooled gzip for clients that accept it

All middleware share the func(http.HandlerFunc) http.HandlerFunc shape. The
api package adapts them to chi with a small wrapper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

Compression starts the gzip stream on the first body write, so 304 Not
Modified responses produced by ETag revalidation carry no body and no
Content-Encoding header.

See Also:

  - internal/api: router and handlers wrapped by this middleware
  - internal/metrics: Prometheus metric definitions
*/
package middleware
