// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type openErr struct{}

func (openErr) Error() string     { return "circuit breaker is open" }
func (openErr) BreakerOpen() bool { return true }

func TestErrorType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"canceled", fmt.Errorf("scan: %w", context.Canceled), "canceled"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"breaker", fmt.Errorf("query: %w", openErr{}), "circuit_open"},
		{"other", errors.New("syntax error at or near"), "query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorType(tt.err); got != tt.want {
				t.Errorf("errorType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op", "query"))

	RecordDBQuery("test_op", 5*time.Millisecond, nil)
	RecordDBQuery("test_op", 5*time.Millisecond, errors.New("boom"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op", "query"))
	if after-before != 1 {
		t.Errorf("Expected one recorded error, got %v", after-before)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test_cache"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test_cache"))

	RecordCacheLookup("test_cache", true)
	RecordCacheLookup("test_cache", false)
	RecordCacheLookup("test_cache", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test_cache")) - hits; got != 1 {
		t.Errorf("Expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test_cache")) - misses; got != 2 {
		t.Errorf("Expected 2 misses, got %v", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(OutcomeFallback))
	RecordRecommendation(20, OutcomeFallback)
	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues(OutcomeFallback)) - before; got != 1 {
		t.Errorf("Expected fallback counter to increase by 1, got %v", got)
	}
}

func TestRecordBreakerState(t *testing.T) {
	RecordBreakerState("test_breaker", "closed", "open", 2)

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test_breaker")); got != 2 {
		t.Errorf("Expected state gauge 2, got %v", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test_breaker", "closed", "open")); got < 1 {
		t.Errorf("Expected at least one transition, got %v", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("Expected %v active, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("Expected %v active, got %v", before, got)
	}
}
