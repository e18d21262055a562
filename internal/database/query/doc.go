// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package query provides SQL query building utilities for the database package.
//
// Queries are composed from typed predicates instead of concatenated strings.
// Each predicate knows its operator and bound values; compilation emits trusted
// column expressions plus "?" placeholders and collects arguments in placeholder
// order. Caller-supplied text never reaches the SQL string.
//
// # Overview
//
// Predicates:
//
//	query.Eq("m.country", "KOR")                      // m.country = ?
//	query.In("m.allowed_age", []string{"12+", "15+"}) // m.allowed_age IN (?, ?)
//	query.Between(query.ColReleaseYear, 1990, 1999)   // EXTRACT(...) BETWEEN ? AND ?
//	query.ContainsFold("m.title", "star")             // strpos(lower(m.title), lower(?)) > 0
//	query.Or(a, b)                                    // (a OR b)
//	query.Exists(from, correlate, inner)              // EXISTS (SELECT 1 FROM ...)
//
// Absent input produces a nil predicate: an empty IN set, a blank substring,
// an Or/And of nothing. Builders skip nil predicates, so an empty set is
// "no filter", never "match nothing".
//
// # Statements
//
// SelectBuilder assembles SELECT ... FROM ... JOIN ... WHERE ... GROUP BY ...
// HAVING ... ORDER BY ... LIMIT. MovieSummarySelect pre-populates the per-movie
// summary shape shared by filter search, movie detail and recommendations:
//
//	stmt := query.MovieSummarySelect(query.SummaryOptions{}).
//	    Where(query.In("m.allowed_age", ages)).
//	    Having(query.Gte(query.ColAvgRating, 3.0)).
//	    OrderBy(query.OrderTerm{Expr: query.ColAvgRating, Direction: query.Desc}).
//	    Build()
//
// # Dialects
//
// Statements are compiled with "?" placeholders. Statement.Rebind converts them
// to "$1, $2, ..." for PostgreSQL.
//
// # Thread Safety
//
// Builders are not thread-safe. Create a new instance per query. Compiled
// Statements are immutable values.
package query
