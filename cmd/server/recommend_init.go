// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package main

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinefilter/internal/config"
	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/recommend"
)

// recommendConfig maps the recommend configuration section onto the engine's
// tunables. Zero values keep the engine defaults.
func recommendConfig(cfg *config.RecommendConfig) *recommend.Config {
	rc := recommend.DefaultConfig()
	if cfg == nil {
		return rc
	}
	if cfg.MajorityRatio > 0 {
		rc.MajorityRatio = cfg.MajorityRatio
	}
	if cfg.SmallCohortMax > 0 {
		rc.SmallCohortMax = cfg.SmallCohortMax
	}
	if cfg.FallbackTopK > 0 {
		rc.FallbackTopK = cfg.FallbackTopK
	}
	if cfg.HotWindowDays > 0 {
		rc.HotWindow = time.Duration(cfg.HotWindowDays) * 24 * time.Hour
	}
	if cfg.Limit > 0 {
		rc.Limit = cfg.Limit
	}
	if cfg.MinDecade > 0 {
		rc.MinDecade = cfg.MinDecade
	}
	if cfg.MaxDecade > 0 {
		rc.MaxDecade = cfg.MaxDecade
	}
	// A zero TTL is meaningful: it disables the response cache.
	rc.CacheTTL = cfg.CacheTTL
	return rc
}

// initRecommend builds the cohort recommender on top of data.
func initRecommend(cfg *config.Config, data recommend.DataProvider) (*recommend.Engine, error) {
	rc := recommendConfig(&cfg.Recommend)

	engine, err := recommend.NewEngine(rc, data, logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("initialize recommender: %w", err)
	}

	logging.Info().
		Float64("majority_ratio", rc.MajorityRatio).
		Int("small_cohort_max", rc.SmallCohortMax).
		Int("fallback_top_k", rc.FallbackTopK).
		Dur("hot_window", rc.HotWindow).
		Int("limit", rc.Limit).
		Dur("cache_ttl", rc.CacheTTL).
		Msg("Recommender initialized")

	return engine, nil
}
