// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinefilter/internal/logging"
	"github.com/tomtom215/cinefilter/internal/metrics"
)

// Pinger is the part of the data store the probe needs.
// *database.DB implements it.
type Pinger interface {
	Ping(ctx context.Context) error
	BreakerState() string
}

// StoreProbeService pings the data store on an interval and publishes the
// result as the db_up gauge. It logs only on availability transitions.
type StoreProbeService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration
	name     string

	// up is nil until the first probe completes.
	up *bool
}

// NewStoreProbeService creates a probe. A non-positive interval defaults to 30s.
func NewStoreProbeService(store Pinger, interval time.Duration) *StoreProbeService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &StoreProbeService{
		store:    store,
		interval: interval,
		timeout:  timeout,
		name:     "store-probe",
	}
}

// Serve implements suture.Service. It probes immediately, then on every tick
// until the context is canceled.
func (s *StoreProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *StoreProbeService) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.store.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	ok := err == nil
	metrics.RecordStoreProbe(ok)

	if s.up != nil && *s.up == ok {
		return
	}
	s.up = &ok

	if ok {
		logging.Info().Str("breaker", s.store.BreakerState()).Msg("Data store reachable")
		return
	}
	logging.Warn().Err(err).Str("breaker", s.store.BreakerState()).Msg("Data store unreachable")
}

// String implements fmt.Stringer for suture's log messages.
func (s *StoreProbeService) String() string {
	return s.name
}
