// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinefilter/internal/middleware"
)

// Router wires handlers and middleware into a chi route tree.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	requestTimeout time.Duration
}

// NewRouter creates a new router. A zero requestTimeout leaves request
// lifetimes to the server's own timeouts.
func NewRouter(handler *Handler, chiMiddleware *ChiMiddleware, requestTimeout time.Duration) *Router {
	if chiMiddleware == nil {
		chiMiddleware = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  chiMiddleware,
		requestTimeout: requestTimeout,
	}
}

// SetupChi builds the HTTP handler.
//
// Global middleware (in order): request ID with logging context, real IP,
// panic recovery, access logging, CORS and response compression. The API
// group adds rate limiting, security headers, Prometheus instrumentation and
// the optional request timeout. Health and metrics endpoints sit outside the
// API group so probes are never rate limited.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/health/live", router.handler.HealthLive)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.chiMiddleware.APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		if router.requestTimeout > 0 {
			r.Use(chimiddleware.Timeout(router.requestTimeout))
		}

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", router.handler.Movies)
			r.Get("/options", router.handler.MovieOptions)
			r.Get("/{id}", router.handler.MovieDetail)
		})

		r.Get("/recommend", router.handler.Recommend)
		r.Get("/recommend/all", router.handler.RecommendAll)
	})

	return r
}
