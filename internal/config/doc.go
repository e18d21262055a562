// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

/*
Package config provides centralized configuration management for Cinefilter.

Configuration is layered with Koanf v2. Later sources win:
 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/cinefilter/config.yaml
 3. Environment variables

Only the variables listed below are read; anything else in the environment
is ignored.

# Environment Variables

Database (DatabaseConfig):
  - DB_DRIVER: duckdb (default) or postgres
  - DUCKDB_PATH: database file, or :memory: (default: /data/cinefilter.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: DuckDB worker threads (default: CPU count)
  - DATABASE_URL: PostgreSQL connection string (required for postgres)
  - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS, DB_CONN_MAX_LIFETIME: pool sizing
  - DB_QUERY_TIMEOUT: per-query deadline when the caller sets none (default: 10s)
  - DB_SEED_SAMPLE_DATA: load the sample catalog on startup (DuckDB only)
  - DB_BREAKER_FAILURES: consecutive failures that open the query breaker (default: 5, 0 disables)
  - DB_BREAKER_TIMEOUT: how long the breaker stays open (default: 30s)

Server (ServerConfig):
  - SERVER_HOST (default: 0.0.0.0), SERVER_PORT (default: 3001)
  - SERVER_TIMEOUT: request timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Security (SecurityConfig):
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include file:line in log entries

Catalog (CatalogConfig):
  - CATALOG_DOMESTIC_COUNTRY_CODE: country code treated as domestic (default: KOR)
  - CATALOG_OPTIONS_CACHE_TTL: filter option cache lifetime (default: 5m)

Recommend (RecommendConfig):
  - RECOMMEND_MAJORITY_RATIO: share of the cohort a genre needs (default: 0.5)
  - RECOMMEND_SMALL_COHORT_MAX: cohorts this small use threshold 1 (default: 3)
  - RECOMMEND_FALLBACK_TOP_K: genres used when none is a majority (default: 3)
  - RECOMMEND_HOT_WINDOW_DAYS: review window of the hot ranking (default: 60)
  - RECOMMEND_LIMIT: movies per ranked list (default: 5)
  - RECOMMEND_MIN_DECADE, RECOMMEND_MAX_DECADE: age decade clamp (default: 10, 90)
  - RECOMMEND_CACHE_TTL: response cache lifetime, 0 disables (default: 1m)

# Validation

Load fails fast with a descriptive error when a value is out of range, for
example an unknown driver, postgres without DATABASE_URL, or a majority
ratio outside (0, 1].
*/
package config
