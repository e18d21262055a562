// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package supervisor provides process supervision for Cinefilter using suture v4.

# Overview

Long-running services are organized in two layers:

	RootSupervisor ("cinefilter")
	├── DataSupervisor ("data-layer")
	│   └── StoreProbeService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a store probe that keeps
failing backs off without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreProbeService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Configuration

TreeConfig controls restart behavior. Zero fields take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Interface

Return behavior of suture.Service.Serve:
  - nil: stopped cleanly, not restarted
  - error: crashed, restarted
  - ctx.Err(): shutdown requested

# What Is NOT Supervised

The data store is an embedded library or a remote server reached through
database/sql. Its connections are pooled by the database package and its
queries are guarded by a circuit breaker; only its availability probe runs
under supervision.

Supervisor events are logged through sutureslog using the slog adapter
from internal/logging.
*/
package supervisor
