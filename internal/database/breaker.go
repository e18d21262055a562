// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
)

// BreakerOpenError is returned without touching the store while the query
// circuit breaker rejects requests.
type BreakerOpenError struct {
	Name  string
	State string
}

// Error implements the error interface.
func (e *BreakerOpenError) Error() string {
	return fmt.Sprintf("circuit breaker %s is %s", e.Name, e.State)
}

// BreakerOpen reports that the request was rejected by the breaker.
func (e *BreakerOpenError) BreakerOpen() bool { return true }

// queryBreaker trips after a run of consecutive query failures so a dead
// store fails fast instead of tying up request goroutines until timeout.
type queryBreaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// newQueryBreaker returns nil when failures is zero, which disables the breaker.
func newQueryBreaker(name string, failures uint32, timeout time.Duration) *queryBreaker {
	if failures == 0 {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	b := &queryBreaker{name: "db_" + name}
	b.cb = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        b.name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Database circuit breaker state changed")
			metrics.RecordBreakerState(name, from.String(), to.String(), int(to))
		},
	})
	return b
}

// isBreakerSuccess keeps caller cancellations and empty results from
// counting against the store.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, sql.ErrNoRows)
}

// run executes fn through the breaker. A nil breaker runs fn directly.
func (b *queryBreaker) run(fn func() error) error {
	if b == nil {
		return fn()
	}

	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordBreakerRequest(b.name, "rejected")
		return &BreakerOpenError{Name: b.name, State: b.cb.State().String()}
	case err != nil:
		metrics.RecordBreakerRequest(b.name, "failure")
	default:
		metrics.RecordBreakerRequest(b.name, "success")
	}
	return err
}

// state returns the breaker state, "disabled" for a nil breaker.
func (b *queryBreaker) state() string {
	if b == nil {
		return "disabled"
	}
	return b.cb.State().String()
}
