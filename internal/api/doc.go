// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package api provides the HTTP interface of Cinefilter.

All responses use the models.APIResponse envelope:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "query_time_ms": 3}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": "..."}, "metadata": {...}}

# Endpoints

Catalog:
  - GET /api/v1/movies: filter search (ott, genre, year, country, age, title,
    director, search, ratingMin, ratingMax, sort)
  - GET /api/v1/movies/options: filter option lists
  - GET /api/v1/movies/{id}: movie detail

Recommendations:
  - GET /api/v1/recommend?birthYear=&gender=&sort=: one ranked list
  - GET /api/v1/recommend/all?birthYear=&gender=: top, hot and recent lists

Operations:
  - GET /health/live, GET /health/ready, GET /metrics

# Error Codes

  - VALIDATION_ERROR (400): malformed or missing input, rejected before any query
  - NOT_FOUND (404): unknown movie identity or route
  - METHOD_NOT_ALLOWED (405)
  - RATE_LIMIT_EXCEEDED (429)
  - INTERNAL_ERROR (500): data store failure; details are logged, never returned

# Middleware

Routing uses go-chi/chi with go-chi/cors and go-chi/httprate. Request IDs,
access logging and Prometheus instrumentation come from internal/middleware.
*/
package api
