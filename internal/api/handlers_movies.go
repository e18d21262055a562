// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinefilter/internal/catalog"
)

// Movies handles filter searches.
//
// Query parameters ott, genre, year, country and age take comma-separated
// lists; title, director and search are substring matches; ratingMin and
// ratingMax bound the average rating; sort picks the ordering. Unknown
// values are ignored rather than rejected.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter := catalog.ParseFilter(r.URL.Query())
	movies, err := h.catalog.Search(r.Context(), &filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, movies, start)
}

// MovieOptions returns the values a client can offer in its filter controls.
func (h *Handler) MovieOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	options, err := h.catalog.Options(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, options, start)
}

// MovieDetail returns one movie with its directors, OTT platforms, reviews
// and other movies by the same directors.
func (h *Handler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := MovieDetailRequest{ID: parseMovieID(chi.URLParam(r, "id"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	detail, err := h.catalog.Detail(r.Context(), req.ID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, detail, start)
}
