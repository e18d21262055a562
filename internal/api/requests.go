// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/cinefilter/internal/recommend"
)

// RecommendRequest holds the query parameters of the recommendation endpoints.
// Sort is ignored by /recommend/all.
type RecommendRequest struct {
	BirthYear string `query:"birthYear" validate:"required,birthyear"`
	Gender    string `query:"gender" validate:"required,gender"`
	Sort      string `query:"sort"`
}

func recommendRequestFromQuery(q url.Values) RecommendRequest {
	return RecommendRequest{
		BirthYear: strings.TrimSpace(q.Get("birthYear")),
		Gender:    strings.TrimSpace(q.Get("gender")),
		Sort:      strings.TrimSpace(q.Get("sort")),
	}
}

// toEngine converts the validated request to the recommender's input.
func (req *RecommendRequest) toEngine() recommend.Request {
	return recommend.Request{
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
		Strategy:  recommend.Strategy(req.Sort),
	}
}

// MovieDetailRequest holds the path parameter of the detail endpoint.
type MovieDetailRequest struct {
	ID int64 `query:"id" validate:"gt=0"`
}

// parseMovieID parses a movie identity from a path segment. Anything that is
// not an integer becomes 0 so validation reports it as out of range.
func parseMovieID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
