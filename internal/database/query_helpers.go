// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
	"github.com/tomtom215/cinefilter/internal/models"
)

// scanFunc scans a single row into a value of type T.
type scanFunc[T any] func(rows *sql.Rows) (T, error)

// queryAndScan runs stmt through the circuit breaker and scans every row.
// The result is never partial: any scan or iteration error discards the rows
// read so far. Errors are wrapped with models.ErrDataStore.
func queryAndScan[T any](ctx context.Context, db *DB, op string, stmt query.Statement, scan scanFunc[T]) ([]T, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	stmt = stmt.Rebind(db.dialect)
	start := time.Now()

	var results []T
	err := db.breaker.run(func() error {
		rows, err := db.conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		out := make([]T, 0)
		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			out = append(out, item)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		results = out
		return nil
	})

	metrics.RecordDBQuery(op, time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("operation", op).Msg("Database query failed")
		return nil, models.DataStoreError(op, err)
	}
	return results, nil
}

// queryInt runs a statement that yields a single integer.
func queryInt(ctx context.Context, db *DB, op string, stmt query.Statement) (int, error) {
	values, err := queryAndScan(ctx, db, op, stmt, func(rows *sql.Rows) (int64, error) {
		var n sql.NullInt64
		err := rows.Scan(&n)
		return n.Int64, err
	})
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}
	return int(values[0]), nil
}

// scanMovieSummary scans a row produced by query.MovieSummarySelect.
func scanMovieSummary(rows *sql.Rows) (models.MovieSummary, error) {
	var (
		m           models.MovieSummary
		releaseDate sql.NullTime
		runTime     sql.NullInt64
		allowedAge  sql.NullString
		country     sql.NullString
		genres      sql.NullString
		directors   sql.NullString
		avgRating   sql.NullFloat64
		reviewCount sql.NullInt64
		recentCount sql.NullInt64
	)

	if err := rows.Scan(
		&m.ID,
		&m.Title,
		&releaseDate,
		&runTime,
		&allowedAge,
		&country,
		&genres,
		&directors,
		&avgRating,
		&reviewCount,
		&recentCount,
	); err != nil {
		return m, err
	}

	if releaseDate.Valid {
		m.SetReleaseDate(&releaseDate.Time)
	} else {
		m.SetReleaseDate(nil)
	}
	if avgRating.Valid {
		m.SetAvgRating(&avgRating.Float64)
	} else {
		m.SetAvgRating(nil)
	}
	m.RunTime = nullIntPtr(runTime)
	m.AllowedAge = nullStringPtr(allowedAge)
	m.Country = nullStringPtr(country)
	m.Genres = splitList(genres.String)
	m.Directors = splitList(directors.String)
	m.ReviewCount = reviewCount.Int64
	m.RecentReviewCount = recentCount.Int64

	return m, nil
}

// splitList splits an aggregated name list. An empty aggregate yields an
// empty, non-nil slice.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, query.ListSeparator)
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullIntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
