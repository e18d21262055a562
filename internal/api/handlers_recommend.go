// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package api

import (
	"net/http"
	"time"
)

// Recommend returns movies favored by the requester's age and gender cohort,
// ranked by the sort strategy (top, hot or recent; unknown values rank as top).
//
// birthYear must be four digits and gender M or F. Invalid input is rejected
// before any query runs.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := recommendRequestFromQuery(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	rec, err := h.recommender.Recommend(r.Context(), req.toEngine())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, rec, start)
}

// RecommendAll returns the cohort's rankings under every strategy. The
// cohort is computed once; if any ranking fails the request fails.
func (h *Handler) RecommendAll(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := recommendRequestFromQuery(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	set, err := h.recommender.RecommendAll(r.Context(), req.toEngine())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, set, start)
}
