// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package middleware provides HTTP middleware for the API router.

All middleware use the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: keeps or generates X-Request-ID and attaches it, plus a
    correlation ID, to the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - AccessLog: per-request log line, warn level above a latency threshold

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)

RequestID must run first so later middleware and handlers log with the ID.
*/
package middleware
