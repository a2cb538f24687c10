// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  0. .env file: loaded into the process environment when present (godotenv)
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Database: event store backend (DuckDB or in-memory), import and seeding
//     - Server: HTTP listener settings
//
//  2. API & Security:
//     - Security: rate limiting and CORS
//
//  3. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	db, err := database.New(&cfg.Database)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Store backends.
const (
	BackendDuckDB = "duckdb"
	BackendMemory = "memory"
)

// DatabaseConfig holds event store settings.
//
// Environment Variables:
//   - STORE_BACKEND: duckdb or memory (default: duckdb)
//   - DUCKDB_PATH: database file, ":memory:" for an in-process database
//   - EVENTS_IMPORT_PATH: events.json produced by the ETL, imported at startup
//   - SEED_MOCK_DATA: generate synthetic events when the store is empty
type DatabaseConfig struct {
	Backend                string        `koanf:"backend"`
	Path                   string        `koanf:"path"`
	MaxMemory              string        `koanf:"max_memory"`
	Threads                int           `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool          `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
	ImportPath             string        `koanf:"import_path"`              // events.json to import at startup (optional for duckdb)
	SeedMockData           bool          `koanf:"seed_mock_data"`           // Seed synthetic events for local development
	SkipIndexes            bool          `koanf:"skip_indexes"`             // Skip index creation (fast test setup)
	QueryTimeout           time.Duration `koanf:"query_timeout"`            // Per-call deadline when the caller sets none
	CheckpointInterval     time.Duration `koanf:"checkpoint_interval"`      // Periodic CHECKPOINT, 0 disables
	Breaker                BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the event store.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32 `koanf:"failure_threshold"`

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration `koanf:"timeout"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from a .env file, defaults, an optional config
// file and environment variables, in that order of increasing precedence.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	return LoadWithKoanf()
}
