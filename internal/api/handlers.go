// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinefilter/internal/catalog"
	"github.com/tomtom215/cinefilter/internal/models"
	"github.com/tomtom215/cinefilter/internal/recommend"
)

// CatalogService answers filter searches, detail lookups and option lists.
// *catalog.Service implements it.
type CatalogService interface {
	Search(ctx context.Context, f *catalog.Filter) ([]models.MovieSummary, error)
	Detail(ctx context.Context, movieID int64) (*models.MovieDetail, error)
	Options(ctx context.Context) (*models.FilterOptions, error)
}

// Recommender answers cohort recommendation requests.
// *recommend.Engine implements it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*models.Recommendation, error)
	RecommendAll(ctx context.Context, req recommend.Request) (*models.RecommendationSet, error)
}

// StoreHealth reports data store reachability for readiness probes.
// *database.DB implements it.
type StoreHealth interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// Handler serves the HTTP API.
type Handler struct {
	catalog     CatalogService
	recommender Recommender
	store       StoreHealth
	startTime   time.Time
}

// NewHandler creates a new Handler
func NewHandler(catalogSvc CatalogService, recommender Recommender, store StoreHealth) *Handler {
	return &Handler{
		catalog:     catalogSvc,
		recommender: recommender,
		store:       store,
		startTime:   time.Now(),
	}
}
