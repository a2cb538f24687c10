// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// @title Conflict Globe API
// @version 1.0
// @description Clustered access to georeferenced armed-conflict events for map dashboards.
// @description
// @description ## Filters
// @description
// @description Every data endpoint takes an inclusive `startYear`/`endYear` range.
// @description `groups` and `types` are comma-separated lists; an empty list means no filter.
// @description A range with `startYear > endYear` matches nothing.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 300 requests per minute per IP address on `/api/*` data routes.
// @description Exceeding it returns `429` with an error body.
// @description
// @description ## Caching
// @description
// @description Successful responses carry an `ETag`; send it back in `If-None-Match` to receive `304`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description { "error": "Human-readable error message" }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/conflictglobe/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3001
// @BasePath /api
// @schemes http https
//
// @tag.name Events
// @tag.description Grid clusters and cluster drill-down
//
// @tag.name Filters
// @tag.description Filter options, group search and summaries
//
// @tag.name Config
// @tag.description Year range available to the time slider
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
