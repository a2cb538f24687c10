// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package config provides centralized configuration management for Conflict Globe.

This package handles loading, validation, and parsing of configuration for all
application components. It ensures consistent configuration across the backend
services and provides sensible defaults for optional settings.

# Configuration Sources

Sources are layered, later ones overriding earlier ones:
  - .env file in the working directory, or ENV_FILE (loaded into the environment)
  - Built-in defaults
  - YAML config file (config.yaml, /etc/conflictglobe/config.yaml, or CONFIG_PATH)
  - Environment variables

# Environment Variables

Store (DatabaseConfig):
  - STORE_BACKEND: duckdb or memory (default: duckdb)
  - DUCKDB_PATH: Database file path (default: /data/conflictglobe.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 2GB)
  - DUCKDB_THREADS: Thread count (default: CPU count)
  - EVENTS_IMPORT_PATH: events.json to import at startup
  - SEED_MOCK_DATA: Seed synthetic events into an empty store (default: false)
  - QUERY_TIMEOUT: Per-query deadline (default: 30s)
  - CHECKPOINT_INTERVAL: Periodic DuckDB CHECKPOINT (default: 15m, 0 disables)
  - BREAKER_ENABLED, BREAKER_FAILURE_THRESHOLD, BREAKER_TIMEOUT: store circuit breaker

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT or PORT: Listen port (default: 3001)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production

Security (SecurityConfig):
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 300)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Validation

Load returns an error when a value is out of range or inconsistent, for example
an unknown backend, a memory backend with no import path and no seeding, a port
outside 1-65535, or rate limits outside their bounds. The caller treats this as
a fatal startup error.

# Hot Reload

WatchConfigFile watches the YAML file (fsnotify through the koanf file
provider) and hands the reloaded Config to a callback. The server uses it to
apply log level changes without a restart.
*/
package config
