// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package config

import (
	"fmt"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateDatabase validates the store driver and its connection settings
func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case DriverDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		if c.Database.SeedSampleData {
			return fmt.Errorf("DB_SEED_SAMPLE_DATA is only supported with DB_DRIVER=duckdb")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, postgres (got %q)", c.Database.Driver)
	}

	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection pool sizes must not be negative")
	}
	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must not be negative")
	}
	if c.Database.BreakerFailures > 0 && c.Database.BreakerTimeout <= 0 {
		return fmt.Errorf("DB_BREAKER_TIMEOUT must be positive when the circuit breaker is enabled")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	return nil
}

// validateSecurity validates rate limiting bounds
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

// validateCatalog validates filter search settings
func (c *Config) validateCatalog() error {
	if c.Catalog.DomesticCountryCode == "" {
		return fmt.Errorf("CATALOG_DOMESTIC_COUNTRY_CODE must not be empty")
	}
	if c.Catalog.OptionsCacheTTL < 0 {
		return fmt.Errorf("CATALOG_OPTIONS_CACHE_TTL must not be negative")
	}
	return nil
}

// validateRecommend validates cohort recommender settings
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MajorityRatio <= 0 || r.MajorityRatio > 1 {
		return fmt.Errorf("RECOMMEND_MAJORITY_RATIO must be in (0, 1], got %v", r.MajorityRatio)
	}
	if r.SmallCohortMax < 0 {
		return fmt.Errorf("RECOMMEND_SMALL_COHORT_MAX must not be negative, got %d", r.SmallCohortMax)
	}
	if r.FallbackTopK < 1 {
		return fmt.Errorf("RECOMMEND_FALLBACK_TOP_K must be at least 1, got %d", r.FallbackTopK)
	}
	if r.HotWindowDays < 1 {
		return fmt.Errorf("RECOMMEND_HOT_WINDOW_DAYS must be at least 1, got %d", r.HotWindowDays)
	}
	if r.Limit < 1 || r.Limit > 100 {
		return fmt.Errorf("RECOMMEND_LIMIT must be between 1 and 100, got %d", r.Limit)
	}
	if r.MinDecade < 0 || r.MinDecade > r.MaxDecade {
		return fmt.Errorf("RECOMMEND_MIN_DECADE must be between 0 and RECOMMEND_MAX_DECADE")
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
