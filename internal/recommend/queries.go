// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"time"

	"github.com/tomtom215/cinefilter/internal/database/query"
)

// membership returns the predicate selecting cohort users aliased "u".
func (c Cohort) membership() query.Predicate {
	return query.And(
		query.Eq("u.gender", c.Gender),
		query.Between("u.birth_year", c.BirthYearMin, c.BirthYearMax),
	)
}

// BuildCohortSizeQuery counts the users in the cohort.
func BuildCohortSizeQuery(c Cohort) query.Statement {
	return query.Select("COUNT(*)").
		From("users u").
		Where(c.membership()).
		Build()
}

// BuildGenreCountQuery counts, per genre, the cohort users who declared it a
// favorite. Rows are (genre_id, genre_name, favorite_count), most preferred first.
func BuildGenreCountQuery(c Cohort) query.Statement {
	return query.Select("g.genre_id", "g.genre_name", "COUNT(DISTINCT uf.user_id) AS favorite_count").
		From("user_fav_genre uf").
		Join("JOIN users u ON u.user_id = uf.user_id").
		Join("JOIN genre g ON g.genre_id = uf.genre_id").
		Where(c.membership()).
		GroupBy("g.genre_id", "g.genre_name").
		OrderBy(
			query.OrderTerm{Expr: "favorite_count", Direction: query.Desc},
			query.OrderTerm{Expr: "g.genre_id", Direction: query.Asc},
		).
		Build()
}

// BuildRankingQuery returns up to limit movies having any of genreIDs,
// ordered by the strategy. Reviews created at or after hotSince count toward
// the recent review count.
func BuildRankingQuery(s Strategy, genreIDs []int64, hotSince time.Time, limit int) query.Statement {
	return query.MovieSummarySelect(query.SummaryOptions{RecentSince: hotSince}).
		Where(query.Exists("movie_genre rg", "rg.movie_id = m.movie_id",
			query.In("rg.genre_id", genreIDs))).
		OrderBy(s.OrderTerms()...).
		Limit(limit).
		Build()
}
