// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package catalog

import (
	"github.com/tomtom215/cinefilter/internal/database/query"
)

// Correlated sources for multi-valued filters. Each uses its own aliases so
// the outer genre and director aggregates keep every value of the movie.
const (
	ottSource      = "movie_ott fo JOIN ott fot ON fot.ott_id = fo.ott_id"
	ottCorrelate   = "fo.movie_id = m.movie_id"
	genreSource    = "movie_genre fg JOIN genre fgn ON fgn.genre_id = fg.genre_id"
	genreCorrelate = "fg.movie_id = m.movie_id"
	dirSource      = "movie_director fd JOIN director fdn ON fdn.director_id = fd.director_id"
	dirCorrelate   = "fd.movie_id = m.movie_id"
)

// sortTerms maps each sort key to its primary ORDER BY term.
var sortTerms = map[Sort]query.OrderTerm{
	SortReleaseAsc:  {Expr: query.ColReleaseDate, Direction: query.Asc},
	SortReleaseDesc: {Expr: query.ColReleaseDate, Direction: query.Desc},
	SortRuntimeAsc:  {Expr: query.ColRunTime, Direction: query.Asc},
	SortRuntimeDesc: {Expr: query.ColRunTime, Direction: query.Desc},
	SortRatingAsc:   {Expr: query.ColAvgRating, Direction: query.Asc},
	SortRatingDesc:  {Expr: query.ColAvgRating, Direction: query.Desc},
}

// tieBreaker keeps ordering deterministic across identical requests.
var tieBreaker = query.OrderTerm{Expr: query.ColMovieID, Direction: query.Asc}

// BuildSearchQuery compiles a filter into one parameterized statement
// returning movie summary rows, grouped per movie and ordered by f.Sort.
//
// domesticCode is the country code the domestic choice matches; the foreign
// choice is its negation. Selecting both adds no country predicate.
func BuildSearchQuery(f *Filter, domesticCode string) query.Statement {
	sb := query.MovieSummarySelect(query.SummaryOptions{})

	for _, p := range wherePredicates(f, domesticCode) {
		sb.Where(p)
	}

	if f.RatingMin != nil {
		sb.Having(query.Gte(query.ColAvgRating, *f.RatingMin))
	}
	if f.RatingMax != nil {
		sb.Having(query.Lte(query.ColAvgRating, *f.RatingMax))
	}

	return sb.OrderBy(orderTerms(f.Sort)...).Build()
}

// wherePredicates returns one predicate per present filter field.
// Absent fields yield nil, which the builder skips.
func wherePredicates(f *Filter, domesticCode string) []query.Predicate {
	return []query.Predicate{
		query.Exists(ottSource, ottCorrelate, query.In("fot.ott_name", f.OTTs)),
		query.Exists(genreSource, genreCorrelate, query.In("fgn.genre_name", f.Genres)),
		decadePredicate(f.Decades),
		countryPredicate(f.Countries, domesticCode),
		query.In(query.ColAllowedAge, f.AgeRatings),
		query.ContainsFold(query.ColTitle, f.Title),
		directorPredicate(f.Director),
		query.Or(
			query.ContainsFold(query.ColTitle, f.Search),
			directorPredicate(f.Search),
		),
	}
}

// decadePredicate ORs the selected buckets together.
func decadePredicate(decades []Decade) query.Predicate {
	preds := make([]query.Predicate, 0, len(decades))
	for _, d := range decades {
		lo, hi, bounded := d.Bounds()
		if !d.Valid() {
			continue
		}
		if bounded {
			preds = append(preds, query.Between(query.ColReleaseYear, lo, hi))
		} else {
			preds = append(preds, query.Gte(query.ColReleaseYear, lo))
		}
	}
	return query.Or(preds...)
}

func countryPredicate(countries []Country, domesticCode string) query.Predicate {
	var domestic, foreign bool
	for _, c := range countries {
		switch c {
		case CountryDomestic:
			domestic = true
		case CountryForeign:
			foreign = true
		}
	}

	switch {
	case domestic && foreign:
		return nil
	case domestic:
		return query.Eq(query.ColCountry, domesticCode)
	case foreign:
		return query.Ne(query.ColCountry, domesticCode)
	default:
		return nil
	}
}

func directorPredicate(name string) query.Predicate {
	return query.Exists(dirSource, dirCorrelate, query.ContainsFold("fdn.name", name))
}

func orderTerms(s Sort) []query.OrderTerm {
	primary, ok := sortTerms[s]
	if !ok {
		primary = sortTerms[DefaultSort]
	}
	return []query.OrderTerm{primary, tieBreaker}
}

// BuildDetailQuery returns the summary row of a single movie.
func BuildDetailQuery(movieID int64) query.Statement {
	return query.MovieSummarySelect(query.SummaryOptions{}).
		Where(query.Eq(query.ColMovieID, movieID)).
		Build()
}

// BuildSameDirectorQuery returns summaries of other movies credited to any of
// directorIDs, newest first. It returns ok=false when there is nothing to match.
func BuildSameDirectorQuery(movieID int64, directorIDs []int64) (query.Statement, bool) {
	if len(directorIDs) == 0 {
		return query.Statement{}, false
	}
	stmt := query.MovieSummarySelect(query.SummaryOptions{}).
		Where(query.Exists("movie_director sd", "sd.movie_id = m.movie_id",
			query.In("sd.director_id", directorIDs))).
		Where(query.Ne(query.ColMovieID, movieID)).
		OrderBy(
			query.OrderTerm{Expr: query.ColReleaseDate, Direction: query.Desc},
			tieBreaker,
		).
		Build()
	return stmt, true
}
