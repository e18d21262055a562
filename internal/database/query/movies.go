// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"time"
)

// Column expressions available to predicates and sort keys built on
// MovieSummarySelect. The movie table is aliased "m" and the per-movie review
// aggregate "rs".
const (
	ColMovieID           = "m.movie_id"
	ColTitle             = "m.title"
	ColReleaseDate       = "m.release_date"
	ColReleaseYear       = "EXTRACT(YEAR FROM m.release_date)"
	ColRunTime           = "m.run_time"
	ColAllowedAge        = "m.allowed_age"
	ColCountry           = "m.country"
	ColAvgRating         = "rs.avg_rating"
	ColReviewCount       = "COALESCE(rs.review_count, 0)"
	ColRecentReviewCount = "COALESCE(rs.recent_review_count, 0)"
)

// SummaryColumnCount is the number of columns MovieSummarySelect yields, in order:
// movie_id, title, release_date, run_time, allowed_age, country, genres,
// directors, avg_rating, review_count, recent_review_count.
const SummaryColumnCount = 11

// ListSeparator joins multi-valued attributes in summary rows.
const ListSeparator = ", "

// SummaryOptions tunes MovieSummarySelect.
type SummaryOptions struct {
	// RecentSince, when non-zero, counts reviews created at or after it in
	// recent_review_count. Otherwise the column is always 0.
	RecentSince time.Time
}

// MovieSummarySelect returns a builder for per-movie summary rows.
//
// Genre and director names are concatenated with DISTINCT so the join fan-out
// cannot duplicate them. Review aggregates come from a derived table grouped
// by movie before it is joined, so AVG and COUNT see each review once no
// matter how many genres or directors a movie has. A movie without reviews
// keeps a NULL average.
//
// Callers add WHERE predicates (typically correlated EXISTS for multi-valued
// filters), HAVING bounds on ColAvgRating, ORDER BY terms and LIMIT.
func MovieSummarySelect(opts SummaryOptions) *SelectBuilder {
	recentExpr := "0"
	var joinArgs []interface{}
	if !opts.RecentSince.IsZero() {
		recentExpr = "COUNT(CASE WHEN created_at >= ? THEN 1 END)"
		joinArgs = append(joinArgs, opts.RecentSince)
	}

	return Select(
		"m.movie_id",
		"m.title",
		"m.release_date",
		"m.run_time",
		"m.allowed_age",
		"m.country",
		"string_agg(DISTINCT g.genre_name, '"+ListSeparator+"' ORDER BY g.genre_name) AS genres",
		"string_agg(DISTINCT d.name, '"+ListSeparator+"' ORDER BY d.name) AS directors",
		"rs.avg_rating",
		ColReviewCount+" AS review_count",
		ColRecentReviewCount+" AS recent_review_count",
	).
		From("movie m").
		Join("JOIN movie_genre mg ON mg.movie_id = m.movie_id").
		Join("JOIN genre g ON g.genre_id = mg.genre_id").
		Join("JOIN movie_director md ON md.movie_id = m.movie_id").
		Join("JOIN director d ON d.director_id = md.director_id").
		Join("LEFT JOIN (SELECT movie_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count, "+
			recentExpr+" AS recent_review_count FROM review GROUP BY movie_id) rs ON rs.movie_id = m.movie_id",
			joinArgs...).
		GroupBy(
			"m.movie_id",
			"m.title",
			"m.release_date",
			"m.run_time",
			"m.allowed_age",
			"m.country",
			"rs.avg_rating",
			"rs.review_count",
			"rs.recent_review_count",
		)
}
