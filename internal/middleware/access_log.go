// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/cinefilter/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests log at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs every request through the request-scoped logger. Requests
// slower than slowThreshold are logged at warn level, the rest at debug.
// A non-positive threshold uses DefaultSlowRequestThreshold.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			msg := "Request completed"
			if duration > slowThreshold {
				event = logger.Warn().Dur("threshold", slowThreshold)
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", statusOf(ww)).
				Int("bytes", ww.BytesWritten()).
				Int64("duration_ms", duration.Milliseconds()).
				Msg(msg)
		})
	}
}
