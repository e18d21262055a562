// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry through promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:3001/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Database Metrics:
  - db_query_duration_seconds: Store query time (histogram)
    Labels: operation
  - db_query_errors_total: Failed queries (counter)
    Labels: operation, error_type (canceled, timeout, circuit_open, query)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

Cache Metrics:
  - cache_hits_total, cache_misses_total: Labels cache (filter_options, recommend)

Domain Metrics:
  - catalog_search_results: Movies per filter search (histogram)
  - recommendations_total: Cohort recommendations by outcome
    (majority, fallback, empty)
  - recommendation_cohort_size: Users per cohort (histogram)

# Usage

	start := time.Now()
	rows, err := db.QueryContext(ctx, sql, args...)
	metrics.RecordDBQuery("movie_summaries", time.Since(start), err)
*/
package metrics
