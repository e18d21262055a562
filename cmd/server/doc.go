// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Command server runs the Cinefilter HTTP API.

Startup sequence:
 1. Load configuration (defaults, YAML file, environment) and initialize logging
 2. Open the data store (DuckDB by default, PostgreSQL with DB_DRIVER=postgres)
 3. Seed the sample catalog when DB_SEED_SAMPLE_DATA=true
 4. Build the catalog service and the cohort recommender
 5. Start the supervisor tree: store probe in the data layer, HTTP server in the api layer
 6. Block until SIGINT or SIGTERM, then shut down gracefully

Quick start with an in-memory store and sample data:

	DUCKDB_PATH=:memory: DB_SEED_SAMPLE_DATA=true ./server
	curl 'http://localhost:3001/api/v1/movies?genre=스릴러&sort=rating_desc'
	curl 'http://localhost:3001/api/v1/recommend?birthYear=2000&gender=M&sort=hot'

See internal/config for every configuration key and its environment variable.
*/
package main
