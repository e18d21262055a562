// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/models"
)

// QueryMovieSummaries runs a statement built on query.MovieSummarySelect.
func (db *DB) QueryMovieSummaries(ctx context.Context, stmt query.Statement) ([]models.MovieSummary, error) {
	return queryAndScan(ctx, db, "movie_summaries", stmt, scanMovieSummary)
}

// MovieDirectors returns the credited directors of a movie ordered by name.
func (db *DB) MovieDirectors(ctx context.Context, movieID int64) ([]models.Director, error) {
	stmt := query.Select("d.director_id", "d.name", "d.gender", "d.nationality", "d.birth_year").
		From("director d").
		Join("JOIN movie_director md ON md.director_id = d.director_id").
		Where(query.Eq("md.movie_id", movieID)).
		OrderBy(
			query.OrderTerm{Expr: "d.name", Direction: query.Asc},
			query.OrderTerm{Expr: "d.director_id", Direction: query.Asc},
		).
		Build()

	return queryAndScan(ctx, db, "movie_directors", stmt, func(rows *sql.Rows) (models.Director, error) {
		var (
			d           models.Director
			gender      sql.NullString
			nationality sql.NullString
			birthYear   sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Name, &gender, &nationality, &birthYear); err != nil {
			return d, err
		}
		d.Gender = nullStringPtr(gender)
		d.Nationality = nullStringPtr(nationality)
		d.BirthYear = nullIntPtr(birthYear)
		return d, nil
	})
}

// MovieOTTs returns the platform names of a movie ordered by name.
func (db *DB) MovieOTTs(ctx context.Context, movieID int64) ([]string, error) {
	stmt := query.Select("o.ott_name").
		From("ott o").
		Join("JOIN movie_ott mo ON mo.ott_id = o.ott_id").
		Where(query.Eq("mo.movie_id", movieID)).
		OrderBy(query.OrderTerm{Expr: "o.ott_name", Direction: query.Asc}).
		Build()

	return queryAndScan(ctx, db, "movie_otts", stmt, scanString)
}

// MovieReviews returns the reviews of a movie, newest first. Reviews created
// at the same instant are ordered by identity descending.
func (db *DB) MovieReviews(ctx context.Context, movieID int64) ([]models.Review, error) {
	stmt := query.Select("r.review_id", "r.user_id", "r.rating", "r.comment", "r.created_at").
		From("review r").
		Where(query.Eq("r.movie_id", movieID)).
		OrderBy(
			query.OrderTerm{Expr: "r.created_at", Direction: query.Desc},
			query.OrderTerm{Expr: "r.review_id", Direction: query.Desc},
		).
		Build()

	return queryAndScan(ctx, db, "movie_reviews", stmt, func(rows *sql.Rows) (models.Review, error) {
		var (
			r       models.Review
			comment sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.UserID, &r.Rating, &comment, &r.CreatedAt); err != nil {
			return r, err
		}
		r.Comment = nullStringPtr(comment)
		return r, nil
	})
}

// FilterValues returns the distinct OTT names, genre names and age ratings
// present in the store, each sorted ascending.
func (db *DB) FilterValues(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		values, err := db.distinctValues(gctx, "filter_otts", "ott", "ott_name")
		opts.OTTs = values
		return err
	})
	g.Go(func() error {
		values, err := db.distinctValues(gctx, "filter_genres", "genre", "genre_name")
		opts.Genres = values
		return err
	})
	g.Go(func() error {
		values, err := db.distinctValues(gctx, "filter_age_ratings", "movie", "allowed_age")
		opts.AgeRatings = values
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return opts, nil
}

// distinctValues lists the non-null distinct values of a fixed table column.
// table and column are compile-time constants, never caller input.
func (db *DB) distinctValues(ctx context.Context, op, table, column string) ([]string, error) {
	stmt := query.Select(column).
		From(table).
		Where(query.Raw(column + " IS NOT NULL")).
		GroupBy(column).
		OrderBy(query.OrderTerm{Expr: column, Direction: query.Asc}).
		Build()
	return queryAndScan(ctx, db, op, stmt, scanString)
}

func scanString(rows *sql.Rows) (string, error) {
	var s string
	err := rows.Scan(&s)
	return s, err
}
