// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package testinfra provides container-backed infrastructure for integration tests.
//
// PostgresContainer runs a real PostgreSQL server so the store's dollar
// placeholders, portable SQL and lib/pq scanning are exercised against the
// same engine production deployments use:
//
//	func TestPostgresSearch(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(context.Background())
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, pg)
//	    // open database.New with pg.DSN ...
//	}
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// Tests skip when Docker is unavailable. The first run pulls the image.
package testinfra
