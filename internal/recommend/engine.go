// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinefilter/internal/cache"
	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
	"github.com/tomtom215/cinefilter/internal/models"
)

// DataProvider executes recommender statements. It is implemented by the
// database layer; errors wrap models.ErrDataStore.
type DataProvider interface {
	// CountUsers runs a single-value COUNT statement.
	CountUsers(ctx context.Context, stmt query.Statement) (int, error)

	// QueryGenreCounts runs a (genre_id, genre_name, count) statement.
	QueryGenreCounts(ctx context.Context, stmt query.Statement) ([]models.GenreCount, error)

	// QueryMovieSummaries runs a statement built on query.MovieSummarySelect.
	QueryMovieSummaries(ctx context.Context, stmt query.Statement) ([]models.MovieSummary, error)
}

// Engine computes cohort recommendations. It holds no per-request state and
// is safe for concurrent use.
type Engine struct {
	config *Config
	data   DataProvider
	logger zerolog.Logger
	now    func() time.Time

	single *cache.Cache[*models.Recommendation]
	sets   *cache.Cache[*models.RecommendationSet]
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, data DataProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("data provider is required")
	}

	cfg = cfg.Clone()
	return &Engine{
		config: cfg,
		data:   data,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
		single: cache.New[*models.Recommendation](cfg.CacheTTL),
		sets:   cache.New[*models.RecommendationSet](cfg.CacheTTL),
	}, nil
}

// SetClock replaces the time source used for the current year and the hot
// window. It must be called before the engine serves requests.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Close stops the engine's cache sweepers.
func (e *Engine) Close() {
	e.single.Close()
	e.sets.Close()
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Recommend returns one ranked list for the request's cohort.
// An unknown strategy ranks as DefaultStrategy. The result is the caller's
// own copy, even when served from cache.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*models.Recommendation, error) {
	strategy := ParseStrategy(string(req.Strategy))

	now := e.now()
	cohort, err := e.cohortFor(req, now)
	if err != nil {
		return nil, err
	}

	key := cacheKey("recommend", cohort, strategy, now)
	if cached, ok := e.single.Get(key); ok {
		metrics.RecordCacheLookup("recommend", true)
		return cached.Clone(), nil
	}
	metrics.RecordCacheLookup("recommend", false)

	summary, sel, err := e.summarize(ctx, cohort)
	if err != nil {
		return nil, err
	}

	rec := &models.Recommendation{
		CohortSummary: summary,
		Strategy:      string(strategy),
		Movies:        []models.MovieSummary{},
	}
	if !summary.Empty {
		movies, err := e.rank(ctx, strategy, sel, now)
		if err != nil {
			return nil, err
		}
		rec.Movies = movies
	}

	e.logResult(ctx, summary, string(strategy))
	e.single.Set(key, rec)
	return rec.Clone(), nil
}

// RecommendAll computes the cohort once and ranks it under every strategy
// concurrently. If any ranking fails the whole call fails.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) RecommendAll(ctx context.Context, req Request) (*models.RecommendationSet, error) {
	now := e.now()
	cohort, err := e.cohortFor(req, now)
	if err != nil {
		return nil, err
	}

	key := cacheKey("recommend_all", cohort, "", now)
	if cached, ok := e.sets.Get(key); ok {
		metrics.RecordCacheLookup("recommend", true)
		return cached.Clone(), nil
	}
	metrics.RecordCacheLookup("recommend", false)

	summary, sel, err := e.summarize(ctx, cohort)
	if err != nil {
		return nil, err
	}

	set := &models.RecommendationSet{
		CohortSummary: summary,
		Top:           []models.MovieSummary{},
		Hot:           []models.MovieSummary{},
		Recent:        []models.MovieSummary{},
	}
	if !summary.Empty {
		targets := map[Strategy]*[]models.MovieSummary{
			StrategyTop:    &set.Top,
			StrategyHot:    &set.Hot,
			StrategyRecent: &set.Recent,
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, s := range Strategies {
			s, dst := s, targets[s]
			g.Go(func() error {
				movies, err := e.rank(gctx, s, sel, now)
				if err != nil {
					return err
				}
				*dst = movies
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	e.logResult(ctx, summary, "all")
	e.sets.Set(key, set)
	return set.Clone(), nil
}

// cohortFor validates the request and buckets it. No query runs on failure.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cohortFor(req Request, now time.Time) (Cohort, error) {
	birthYear, err := ParseBirthYear(req.BirthYear)
	if err != nil {
		return Cohort{}, err
	}
	gender, err := ParseGender(req.Gender)
	if err != nil {
		return Cohort{}, err
	}
	return DeriveCohort(birthYear, now.Year(), gender, e.config), nil
}

// summarize sizes the cohort, aggregates its genre preferences and selects
// the strong genres. A cohort without users or preferences yields an empty
// summary, which is not an error.
func (e *Engine) summarize(ctx context.Context, c Cohort) (models.CohortSummary, Selection, error) {
	summary := models.CohortSummary{
		AgeGroup:     c.Label(),
		Decade:       c.Decade,
		Gender:       c.Gender,
		BirthYearMin: c.BirthYearMin,
		BirthYearMax: c.BirthYearMax,
		Genres:       []models.GenreCount{},
	}

	size, err := e.data.CountUsers(ctx, BuildCohortSizeQuery(c))
	if err != nil {
		return summary, Selection{}, fmt.Errorf("cohort size: %w", err)
	}
	summary.CohortSize = size
	if size == 0 {
		summary.Empty = true
		return summary, Selection{}, nil
	}

	counts, err := e.data.QueryGenreCounts(ctx, BuildGenreCountQuery(c))
	if err != nil {
		return summary, Selection{}, fmt.Errorf("cohort genre preferences: %w", err)
	}

	sel := SelectGenres(size, counts, e.config)
	summary.Threshold = sel.Threshold
	if len(sel.Strong) == 0 {
		summary.Empty = true
		return summary, sel, nil
	}

	summary.UsedFallback = sel.UsedFallback
	summary.Genres = sel.Strong
	return summary, sel, nil
}

// rank queries the ranked candidates of the selected genres.
func (e *Engine) rank(ctx context.Context, s Strategy, sel Selection, now time.Time) ([]models.MovieSummary, error) {
	ids := sel.GenreIDs()
	if len(ids) == 0 {
		return []models.MovieSummary{}, nil
	}

	stmt := BuildRankingQuery(s, ids, now.Add(-e.config.HotWindow), e.config.Limit)
	movies, err := e.data.QueryMovieSummaries(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("rank %s: %w", s, err)
	}
	if movies == nil {
		movies = []models.MovieSummary{}
	}
	return movies, nil
}

//nolint:gocritic // hugeParam: summary is logged, not retained
func (e *Engine) logResult(ctx context.Context, summary models.CohortSummary, strategy string) {
	outcome := metrics.OutcomeMajority
	switch {
	case summary.Empty:
		outcome = metrics.OutcomeEmpty
	case summary.UsedFallback:
		outcome = metrics.OutcomeFallback
	}
	metrics.RecordRecommendation(summary.CohortSize, outcome)

	e.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("age_group", summary.AgeGroup).
		Str("gender", summary.Gender).
		Str("strategy", strategy).
		Int("cohort_size", summary.CohortSize).
		Int("threshold", summary.Threshold).
		Int("strong_genres", len(summary.Genres)).
		Str("outcome", outcome).
		Msg("recommendation computed")
}

// cacheKey identifies a result by cohort, strategy and calendar day so that
// the current-year and hot-window inputs are part of the key.
func cacheKey(method string, c Cohort, s Strategy, now time.Time) string {
	return cache.GenerateKey(method, struct {
		Decade int
		Gender string
		Min    int
		Max    int
		Sort   Strategy
		Day    string
	}{c.Decade, c.Gender, c.BirthYearMin, c.BirthYearMax, s, now.Format("2006-01-02")})
}
