// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package supervisor provides process supervision using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("conflictglobe")
	├── DataSupervisor ("data-layer")
	│   └── CheckpointService (DuckDB backend, checkpoint_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. A checkpoint failure
is isolated in the data layer and never interrupts request serving.

Supervisor events (start, failure, restart, backoff) are logged through the
sutureslog adapter, which the server wires to zerolog via
logging.NewComponentSlogLogger("supervisor").

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval))

	errCh := tree.ServeBackground(ctx)

See Also:

  - internal/supervisor/services: suture.Service wrappers
*/
package supervisor
