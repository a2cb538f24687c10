// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package main is the entry point for the Conflict Globe API server.

Conflict Globe serves georeferenced armed-conflict events to a map dashboard:
grid clusters that refine with zoom, drill-down into a cluster's cell, facet
lists, group search and per-filter summaries.

# Application Architecture

	RootSupervisor ("conflictglobe")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (DuckDB, CHECKPOINT_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: .env, defaults, config.yaml, environment (Koanf v2)
 2. Logging: zerolog, level/format from configuration
 3. Event store: DuckDB or in-memory, selected by STORE_BACKEND
 4. Import: EVENTS_IMPORT_PATH streamed into the store (fatal on failure)
 5. Mock data: SEED_MOCK_DATA fills an empty store with synthetic events
 6. Circuit breaker: gobreaker around the store when BREAKER_ENABLED
 7. Supervisor tree: HTTP server and checkpoint loop
 8. Config watcher: log level hot reload from the config file

# Configuration

Common environment variables:

	STORE_BACKEND        duckdb | memory (default: duckdb)
	DUCKDB_PATH          database file (default: /data/conflictglobe.duckdb)
	EVENTS_IMPORT_PATH   events.json to import at startup
	SEED_MOCK_DATA       true to seed synthetic events
	HTTP_PORT            listen port (default: 3001)
	CORS_ORIGINS         comma-separated allowed origins (default: *)
	RATE_LIMIT_REQUESTS  requests per window per IP (default: 300)
	LOG_LEVEL            trace, debug, info, warn, error (default: info)
	LOG_FORMAT           json | console (default: json)

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up to
10s, then the store is checkpointed and closed.

# Example Usage

Local development with synthetic data:

	STORE_BACKEND=memory SEED_MOCK_DATA=true LOG_FORMAT=console ./conflictglobe

DuckDB with the ETL output:

	DUCKDB_PATH=./data/events.duckdb EVENTS_IMPORT_PATH=./data/events.json ./conflictglobe
*/
package main
