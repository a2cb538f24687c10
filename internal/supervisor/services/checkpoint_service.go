// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package services

import (
	"context"
	"time"

	"github.com/tomtom215/conflictglobe/internal/logging"
)

// Checkpointer flushes a store's write-ahead log into its main file.
// Satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService periodically checkpoints the DuckDB store so the WAL
// does not grow unbounded between restarts.
//
// A failed checkpoint is logged and retried on the next tick. The service only
// returns when its context is canceled.
type CheckpointService struct {
	store    Checkpointer
	interval time.Duration
	timeout  time.Duration
}

// NewCheckpointService creates a checkpoint loop. Each checkpoint is bounded by
// half the interval, capped at 30s.
func NewCheckpointService(store Checkpointer, interval time.Duration) *CheckpointService {
	timeout := interval / 2
	if timeout > 30*time.Second || timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CheckpointService{
		store:    store,
		interval: interval,
		timeout:  timeout,
	}
}

// Serve implements suture.Service.
func (c *CheckpointService) Serve(ctx context.Context) error {
	if c.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.runOnce(ctx)
		}
	}
}

func (c *CheckpointService) runOnce(ctx context.Context) {
	cpCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.store.Checkpoint(cpCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Warn().Err(err).Msg("DuckDB checkpoint failed")
		return
	}
	logging.Debug().Dur("duration", time.Since(start)).Msg("DuckDB checkpoint complete")
}

// String implements fmt.Stringer.
func (c *CheckpointService) String() string {
	return "duckdb-checkpoint"
}
