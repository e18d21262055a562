// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"fmt"
	"time"
)

// Config contains all tunables of the cohort recommender.
type Config struct {
	// MajorityRatio is the share of the cohort a genre must reach to be strong.
	// The threshold is ceil(cohortSize * MajorityRatio), at least 1.
	// Default: 0.5.
	MajorityRatio float64 `json:"majority_ratio"`

	// SmallCohortMax relaxes the threshold to 1 for cohorts of this size or smaller.
	// Default: 3.
	SmallCohortMax int `json:"small_cohort_max"`

	// FallbackTopK is the number of most-preferred genres used when no genre
	// reaches the threshold.
	// Default: 3.
	FallbackTopK int `json:"fallback_top_k"`

	// HotWindow is the trailing window of reviews counted for the "hot" ranking.
	// Default: 60 days.
	HotWindow time.Duration `json:"hot_window"`

	// Limit is the maximum number of movies per ranked list.
	// Default: 5.
	Limit int `json:"limit"`

	// MinDecade and MaxDecade clamp the age decade of a cohort.
	// Defaults: 10 and 90.
	MinDecade int `json:"min_decade"`
	MaxDecade int `json:"max_decade"`

	// CacheTTL is how long computed recommendations are reused. Zero disables caching.
	// Default: 1 minute.
	CacheTTL time.Duration `json:"cache_ttl"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MajorityRatio:  0.5,
		SmallCohortMax: 3,
		FallbackTopK:   3,
		HotWindow:      60 * 24 * time.Hour,
		Limit:          5,
		MinDecade:      10,
		MaxDecade:      90,
		CacheTTL:       time.Minute,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MajorityRatio <= 0 || c.MajorityRatio > 1 {
		return fmt.Errorf("majority_ratio must be in (0, 1], got %f", c.MajorityRatio)
	}
	if c.SmallCohortMax < 0 {
		return fmt.Errorf("small_cohort_max must be non-negative, got %d", c.SmallCohortMax)
	}
	if c.FallbackTopK < 1 {
		return fmt.Errorf("fallback_top_k must be positive, got %d", c.FallbackTopK)
	}
	if c.HotWindow <= 0 {
		return fmt.Errorf("hot_window must be positive, got %v", c.HotWindow)
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.MinDecade < 0 || c.MinDecade%10 != 0 {
		return fmt.Errorf("min_decade must be a non-negative multiple of 10, got %d", c.MinDecade)
	}
	if c.MaxDecade < c.MinDecade || c.MaxDecade%10 != 0 {
		return fmt.Errorf("max_decade must be a multiple of 10 and >= min_decade, got %d", c.MaxDecade)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative, got %v", c.CacheTTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
