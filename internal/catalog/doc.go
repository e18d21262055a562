// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package catalog implements filter search over the movie catalog.
//
// A search request is parsed into a Filter (ParseFilter), compiled into one
// parameterized statement (BuildSearchQuery) and executed by a Store. Every
// present field contributes one conjunctive predicate:
//
//	ott, genre     EXISTS over the movie's platforms / genres, IN the selected names
//	year           OR of decade ranges (1990s = 1990..1999, 2020s = 2020 and later)
//	country        domestic = code, foreign <> code, both = no predicate
//	age            allowed_age IN (...)
//	title          case-insensitive substring of the title
//	director       case-insensitive substring of any credited director
//	search         title OR director substring, in addition to the above
//	ratingMin/Max  HAVING bounds on the aggregated average rating
//
// Results are grouped per movie. Genre and director lists stay complete even
// when a genre or director filter is set. Sorting is by one of six keys with
// movie identity as the tie-breaker; nulls sort last.
//
// The Service also serves movie detail (attributes, directors, platforms,
// reviews and other movies by the same directors) and the cached list of
// filter options.
package catalog
