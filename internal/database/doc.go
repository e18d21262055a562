// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package database is the relational store behind the catalog and the cohort
recommender.

It opens either an embedded DuckDB file (the default, ":memory:" allowed) or a
PostgreSQL server through lib/pq, and executes statements compiled by the
query subpackage. Statements are written with "?" placeholders and rebound to
"$N" for PostgreSQL just before execution.

# Store Interfaces

DB satisfies both consumer interfaces:

	catalog.Store:       QueryMovieSummaries, MovieDirectors, MovieOTTs, MovieReviews, FilterValues
	recommend.DataProvider: CountUsers, QueryGenreCounts, QueryMovieSummaries

Every read goes through queryAndScan, which applies the configured query
timeout, routes the call through the circuit breaker, records
db_query_duration_seconds and wraps failures with
models.ErrDataStore. A read either returns all rows or an error.

# Circuit Breaker

With database.breaker_failures > 0, that many consecutive failures open a
gobreaker circuit for database.breaker_timeout. While open, reads fail
immediately with *BreakerOpenError. Caller cancellations do not count as
failures.

# Schema and Sample Data

For DuckDB the schema is created on open (see schema.go). SeedSampleData
loads a small Korean-language catalog with users and reviews dated relative
to the supplied clock; it is skipped when movies already exist.

Example:

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	catalogSvc := catalog.NewService(db, catalog.Config{DomesticCountryCode: "KOR"})
*/
package database
