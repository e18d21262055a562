// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinefilter/internal/cache"
	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
	"github.com/tomtom215/cinefilter/internal/models"
)

// Store executes catalog reads. Implementations return errors wrapped with
// models.ErrDataStore and must not return partial results.
type Store interface {
	// QueryMovieSummaries runs a statement built on query.MovieSummarySelect.
	QueryMovieSummaries(ctx context.Context, stmt query.Statement) ([]models.MovieSummary, error)

	// MovieDirectors returns the credited directors of a movie ordered by name.
	MovieDirectors(ctx context.Context, movieID int64) ([]models.Director, error)

	// MovieOTTs returns the platform names of a movie ordered by name.
	MovieOTTs(ctx context.Context, movieID int64) ([]string, error)

	// MovieReviews returns the reviews of a movie, newest first.
	MovieReviews(ctx context.Context, movieID int64) ([]models.Review, error)

	// FilterValues returns the distinct OTT names, genre names and age
	// ratings present in the store.
	FilterValues(ctx context.Context) (*models.FilterOptions, error)
}

// Config holds catalog settings.
type Config struct {
	DomesticCountryCode string
	OptionsCacheTTL     time.Duration
}

const optionsCacheKey = "filter_options"

// Service answers filter searches, movie detail lookups and filter option
// listings.
type Service struct {
	store   Store
	cfg     Config
	options *cache.Cache[*models.FilterOptions]
}

// NewService creates a catalog service. Call Close to release the options cache.
func NewService(store Store, cfg Config) *Service {
	return &Service{
		store:   store,
		cfg:     cfg,
		options: cache.New[*models.FilterOptions](cfg.OptionsCacheTTL),
	}
}

// Close stops background work owned by the service.
func (s *Service) Close() {
	s.options.Close()
}

// Search returns the movies matching f. No match is an empty, non-nil slice.
func (s *Service) Search(ctx context.Context, f *Filter) ([]models.MovieSummary, error) {
	stmt := BuildSearchQuery(f, s.cfg.DomesticCountryCode)

	movies, err := s.store.QueryMovieSummaries(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	if movies == nil {
		movies = []models.MovieSummary{}
	}

	metrics.RecordSearchResults(len(movies))
	logging.Ctx(ctx).Debug().
		Str("sort", string(f.Sort)).
		Bool("unfiltered", f.IsEmpty()).
		Int("results", len(movies)).
		Msg("Catalog search completed")

	return movies, nil
}

// Detail returns the full view of one movie.
//
// A non-positive id is a *models.ValidationError; an unknown id wraps
// models.ErrNotFound.
func (s *Service) Detail(ctx context.Context, movieID int64) (*models.MovieDetail, error) {
	if movieID <= 0 {
		return nil, models.NewValidationError("id", "must be a positive integer")
	}

	rows, err := s.store.QueryMovieSummaries(ctx, BuildDetailQuery(movieID))
	if err != nil {
		return nil, fmt.Errorf("movie detail: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("movie %d: %w", movieID, models.ErrNotFound)
	}

	detail := &models.MovieDetail{Movie: rows[0]}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		directors, err := s.store.MovieDirectors(gctx, movieID)
		detail.Directors = directors
		return err
	})
	g.Go(func() error {
		otts, err := s.store.MovieOTTs(gctx, movieID)
		detail.OTTs = otts
		return err
	})
	g.Go(func() error {
		reviews, err := s.store.MovieReviews(gctx, movieID)
		detail.Reviews = reviews
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("movie detail: %w", err)
	}

	directorIDs := make([]int64, 0, len(detail.Directors))
	for _, d := range detail.Directors {
		directorIDs = append(directorIDs, d.ID)
	}
	detail.SameDirectorMovies = []models.MovieSummary{}
	if stmt, ok := BuildSameDirectorQuery(movieID, directorIDs); ok {
		related, err := s.store.QueryMovieSummaries(ctx, stmt)
		if err != nil {
			return nil, fmt.Errorf("same director movies: %w", err)
		}
		if related != nil {
			detail.SameDirectorMovies = related
		}
	}

	if detail.Directors == nil {
		detail.Directors = []models.Director{}
	}
	if detail.OTTs == nil {
		detail.OTTs = []string{}
	}
	if detail.Reviews == nil {
		detail.Reviews = []models.Review{}
	}

	return detail, nil
}

// Options returns the values a client can offer for each filter field.
// Store-derived lists are cached for OptionsCacheTTL.
func (s *Service) Options(ctx context.Context) (*models.FilterOptions, error) {
	if cached, ok := s.options.Get(optionsCacheKey); ok {
		metrics.RecordCacheLookup(optionsCacheKey, true)
		return cached, nil
	}
	metrics.RecordCacheLookup(optionsCacheKey, false)

	values, err := s.store.FilterValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter options: %w", err)
	}

	opts := &models.FilterOptions{
		OTTs:       nonNil(values.OTTs),
		Genres:     nonNil(values.Genres),
		AgeRatings: nonNil(values.AgeRatings),
		Decades:    make([]string, 0, len(Decades)),
		Countries: []models.FilterOption{
			{Value: string(CountryDomestic), Label: "한국"},
			{Value: string(CountryForeign), Label: "외국"},
		},
		RatingRanges: []models.RatingRange{
			{Min: 1, Max: 2},
			{Min: 2, Max: 3},
			{Min: 3, Max: 4},
			{Min: 4, Max: 5},
		},
		Sorts: make([]string, 0, len(Sorts)),
	}
	for _, d := range Decades {
		opts.Decades = append(opts.Decades, string(d))
	}
	for _, srt := range Sorts {
		opts.Sorts = append(opts.Sorts, string(srt))
	}

	s.options.Set(optionsCacheKey, opts)
	return opts, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
