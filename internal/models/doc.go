// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package models defines the records shared by the catalog, recommender, store
and HTTP layers.

Key Components:

  - MovieSummary: one filter-search or ranked-list row
  - MovieDetail: a movie with directors, platforms, reviews and same-director movies
  - FilterOptions: values a client can offer for each filter field
  - CohortSummary, Recommendation, RecommendationSet: cohort recommender output
  - APIResponse: standard response envelope

Errors:

  - ErrNotFound: requested movie does not exist
  - ErrDataStore: query execution failed (wrapped by DataStoreError)
  - ValidationError: caller input rejected before any query runs
*/
package models
