// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
schema.go - Embedded Store Schema

The catalog schema is owned by the ingestion side. For the embedded DuckDB
store it is created on open so a fresh file (or ":memory:") is immediately
queryable. PostgreSQL deployments provide it themselves. SeedSampleData calls
EnsureSchema first, so a seeded test database needs no separate migration.

The DDL sticks to types and statements both engines accept.

Tables:
  - movie: identity, title, release date, run time, age rating, country code
  - genre, director, ott: reference entities
  - movie_genre, movie_director, movie_ott: many-to-many links
  - review: rating and comment per (movie, user) with creation time
  - users: birth year and gender used for cohort membership
  - user_fav_genre: declared genre preferences

Release date, run time, age rating and country are nullable; filters treat
missing values as non-matching.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
)

// tableCreationQueries returns the DDL for every table, in dependency order.
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS movie (
			movie_id INTEGER PRIMARY KEY,
			title VARCHAR NOT NULL,
			release_date DATE,
			run_time INTEGER,
			allowed_age VARCHAR,
			country VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS genre (
			genre_id INTEGER PRIMARY KEY,
			genre_name VARCHAR NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS director (
			director_id INTEGER PRIMARY KEY,
			name VARCHAR NOT NULL,
			gender VARCHAR,
			nationality VARCHAR,
			birth_year INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS ott (
			ott_id INTEGER PRIMARY KEY,
			ott_name VARCHAR NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS movie_genre (
			movie_id INTEGER NOT NULL,
			genre_id INTEGER NOT NULL,
			PRIMARY KEY (movie_id, genre_id)
		)`,
		`CREATE TABLE IF NOT EXISTS movie_director (
			movie_id INTEGER NOT NULL,
			director_id INTEGER NOT NULL,
			PRIMARY KEY (movie_id, director_id)
		)`,
		`CREATE TABLE IF NOT EXISTS movie_ott (
			movie_id INTEGER NOT NULL,
			ott_id INTEGER NOT NULL,
			PRIMARY KEY (movie_id, ott_id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id INTEGER PRIMARY KEY,
			name VARCHAR,
			birth_year INTEGER,
			gender VARCHAR
		)`,
		`CREATE TABLE IF NOT EXISTS user_fav_genre (
			user_id INTEGER NOT NULL,
			genre_id INTEGER NOT NULL,
			PRIMARY KEY (user_id, genre_id)
		)`,
		`CREATE TABLE IF NOT EXISTS review (
			review_id INTEGER PRIMARY KEY,
			movie_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			rating DOUBLE PRECISION NOT NULL,
			comment VARCHAR,
			created_at TIMESTAMP NOT NULL
		)`,
	}
}

// indexCreationQueries returns indexes for the hot lookup paths: review
// aggregation per movie and cohort membership scans.
func indexCreationQueries() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_review_movie ON review(movie_id)",
		"CREATE INDEX IF NOT EXISTS idx_review_created ON review(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_users_cohort ON users(gender, birth_year)",
		"CREATE INDEX IF NOT EXISTS idx_movie_release ON movie(release_date)",
	}
}

// EnsureSchema creates any missing tables and indexes.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, ddl := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	for _, ddl := range indexCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
