// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package services provides suture.Service wrappers for long-running
components.

# Available Services

HTTPServerService (api-layer):
  - Wraps *http.Server and translates ListenAndServe into Serve
  - Drains connections with a bounded Shutdown on cancellation
  - Returns listener failures so the supervisor restarts the server

CheckpointService (data-layer):
  - Runs CHECKPOINT against the DuckDB store on a fixed interval
  - Logs failures and keeps running

# Return Values

	nil         -> stopped cleanly, not restarted
	error       -> crashed, restarted with backoff
	ctx.Err()   -> shutdown requested

All services implement fmt.Stringer; suture uses the name in its event log.
*/
package services
