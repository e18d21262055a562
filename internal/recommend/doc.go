// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package recommend implements cohort-based movie recommendations.
//
// # Pipeline
//
//  1. Validate: birth year must be exactly four digits, gender M or F.
//     Validation fails before any query runs.
//  2. Cohort: age = currentYear - birthYear, bucketed to its decade and
//     clamped to [MinDecade, MaxDecade]. The birth-year range is derived from
//     the clamped decade.
//  3. Size: count cohort users. No users is an empty result, not an error.
//  4. Preferences: count favorite-genre declarations per genre.
//  5. Selection: genres reaching ceil(size * MajorityRatio) are strong
//     (threshold 1 for cohorts of SmallCohortMax or fewer). If none is, the
//     FallbackTopK most preferred genres are used and the result is flagged.
//  6. Ranking: movies having any strong genre, ordered by strategy:
//     top (rating, reviews), hot (reviews in HotWindow, reviews, rating) or
//     recent (release date). Limit movies per list.
//
// SelectGenres and DeriveCohort are pure functions; the Engine wires them to
// a DataProvider and an injectable clock.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), db, logger)
//	rec, err := engine.Recommend(ctx, recommend.Request{
//	    BirthYear: "2005",
//	    Gender:    "F",
//	    Strategy:  recommend.StrategyHot,
//	})
//
// RecommendAll computes the cohort once and runs the three rankings
// concurrently.
//
// # Thread Safety
//
// The engine is safe for concurrent use. Results are cached per cohort,
// strategy and calendar day for CacheTTL.
package recommend
