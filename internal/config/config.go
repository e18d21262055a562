// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, config files
// and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Database: store driver (DuckDB or PostgreSQL), pool, circuit breaker
//     - Server: HTTP server configuration (port, host, timeout)
//
//  2. Domain:
//     - Catalog: filter search settings (domestic country code, options cache)
//     - Recommend: cohort recommender thresholds and windows
//
//  3. API & Security:
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	db, err := database.New(&cfg.Database)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// Supported database drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds relational store settings.
//
// Environment Variables:
//   - DB_DRIVER: duckdb or postgres (default: duckdb)
//   - DUCKDB_PATH: DuckDB file path, ":memory:" for an in-process store
//   - DATABASE_URL: PostgreSQL DSN (required when DB_DRIVER=postgres)
//   - DB_QUERY_TIMEOUT: per-query timeout applied when the caller has no deadline
//   - DB_SEED_SAMPLE_DATA: load the bundled sample catalog on startup (DuckDB only)
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	Path            string        `koanf:"path"`
	DSN             string        `koanf:"dsn"`
	MaxMemory       string        `koanf:"max_memory"` // DuckDB memory limit, e.g. "1GB"
	Threads         int           `koanf:"threads"`    // DuckDB threads (0 = use NumCPU)
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`
	SeedSampleData  bool          `koanf:"seed_sample_data"`

	// BreakerFailures is the number of consecutive query failures that opens
	// the circuit breaker. Zero disables the breaker.
	BreakerFailures uint32 `koanf:"breaker_failures"`

	// BreakerTimeout is how long the breaker stays open before probing again.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig holds filter search settings.
type CatalogConfig struct {
	// DomesticCountryCode is the country code the "domestic" filter matches.
	// Default: KOR
	DomesticCountryCode string `koanf:"domestic_country_code"`

	// OptionsCacheTTL controls how long the filter option lists are cached.
	// Default: 5m
	OptionsCacheTTL time.Duration `koanf:"options_cache_ttl"`
}

// RecommendConfig holds cohort recommender settings.
//
// Environment Variables:
//   - RECOMMEND_MAJORITY_RATIO: share of the cohort a genre needs to be strong (default: 0.5)
//   - RECOMMEND_SMALL_COHORT_MAX: cohorts this size or smaller use threshold 1 (default: 3)
//   - RECOMMEND_FALLBACK_TOP_K: genres taken when none is strong (default: 3)
//   - RECOMMEND_HOT_WINDOW_DAYS: trailing review window for "hot" (default: 60)
//   - RECOMMEND_LIMIT: movies per ranked list (default: 5)
//   - RECOMMEND_CACHE_TTL: response cache TTL, 0 disables (default: 1m)
type RecommendConfig struct {
	MajorityRatio  float64       `koanf:"majority_ratio"`
	SmallCohortMax int           `koanf:"small_cohort_max"`
	FallbackTopK   int           `koanf:"fallback_top_k"`
	HotWindowDays  int           `koanf:"hot_window_days"`
	Limit          int           `koanf:"limit"`
	MinDecade      int           `koanf:"min_decade"`
	MaxDecade      int           `koanf:"max_decade"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
}

// IsProduction returns true when running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all supported sources in order of precedence:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
