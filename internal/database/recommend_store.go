// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/models"
)

// CountUsers runs a single-value COUNT statement.
func (db *DB) CountUsers(ctx context.Context, stmt query.Statement) (int, error) {
	return queryInt(ctx, db, "cohort_size", stmt)
}

// QueryGenreCounts runs a (genre_id, genre_name, count) statement.
func (db *DB) QueryGenreCounts(ctx context.Context, stmt query.Statement) ([]models.GenreCount, error) {
	return queryAndScan(ctx, db, "cohort_genres", stmt, func(rows *sql.Rows) (models.GenreCount, error) {
		var (
			gc    models.GenreCount
			count int64
		)
		if err := rows.Scan(&gc.GenreID, &gc.Name, &count); err != nil {
			return gc, err
		}
		gc.Count = int(count)
		return gc, nil
	})
}
