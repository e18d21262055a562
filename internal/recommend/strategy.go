// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"strings"

	"github.com/tomtom215/cinefilter/internal/database/query"
)

// Strategy is a ranking of candidate movies.
type Strategy string

// Ranking strategies.
const (
	// StrategyTop ranks by average rating, then total review count.
	StrategyTop Strategy = "top"

	// StrategyHot ranks by reviews inside the hot window, then total review
	// count, then average rating.
	StrategyHot Strategy = "hot"

	// StrategyRecent ranks by release date, newest first.
	StrategyRecent Strategy = "recent"

	// DefaultStrategy applies to missing or unrecognized values.
	DefaultStrategy = StrategyTop
)

// Strategies lists every strategy in response order.
var Strategies = []Strategy{StrategyTop, StrategyHot, StrategyRecent}

// ParseStrategy maps a raw value to a Strategy, falling back to DefaultStrategy.
func ParseStrategy(raw string) Strategy {
	s := Strategy(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StrategyTop, StrategyHot, StrategyRecent:
		return s
	default:
		return DefaultStrategy
	}
}

var (
	byAvgRating   = query.OrderTerm{Expr: query.ColAvgRating, Direction: query.Desc}
	byReviewCount = query.OrderTerm{Expr: query.ColReviewCount, Direction: query.Desc}
	byRecentCount = query.OrderTerm{Expr: query.ColRecentReviewCount, Direction: query.Desc}
	byRelease     = query.OrderTerm{Expr: query.ColReleaseDate, Direction: query.Desc}
	byMovieID     = query.OrderTerm{Expr: query.ColMovieID, Direction: query.Asc}
)

// OrderTerms returns the ORDER BY keys of the strategy. Movie identity is
// always the final key so ties resolve identically across runs.
func (s Strategy) OrderTerms() []query.OrderTerm {
	switch s {
	case StrategyHot:
		return []query.OrderTerm{byRecentCount, byReviewCount, byAvgRating, byMovieID}
	case StrategyRecent:
		return []query.OrderTerm{byRelease, byMovieID}
	default:
		return []query.OrderTerm{byAvgRating, byReviewCount, byMovieID}
	}
}
