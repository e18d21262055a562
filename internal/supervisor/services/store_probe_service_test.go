// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinefilter/internal/metrics"
)

type fakePinger struct {
	mu    sync.Mutex
	err   error
	pings int
}

func (f *fakePinger) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.err
}

func (f *fakePinger) BreakerState() string { return "closed" }

func (f *fakePinger) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakePinger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pings
}

func TestNewStoreProbeService_Defaults(t *testing.T) {
	svc := NewStoreProbeService(&fakePinger{}, 0)
	if svc.interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", svc.interval)
	}
	if svc.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", svc.timeout)
	}

	svc = NewStoreProbeService(&fakePinger{}, 2*time.Second)
	if svc.timeout != time.Second {
		t.Errorf("timeout = %v, want half the interval", svc.timeout)
	}
}

func TestStoreProbeService_PublishesAvailability(t *testing.T) {
	store := &fakePinger{}
	svc := NewStoreProbeService(store, time.Minute)

	svc.probe(context.Background())
	if got := testutil.ToFloat64(metrics.DBUp); got != 1 {
		t.Errorf("db_up = %v after successful ping, want 1", got)
	}

	store.setErr(errors.New("connection refused"))
	svc.probe(context.Background())
	if got := testutil.ToFloat64(metrics.DBUp); got != 0 {
		t.Errorf("db_up = %v after failed ping, want 0", got)
	}
	if svc.up == nil || *svc.up {
		t.Error("probe did not record the unavailable state")
	}
}

func TestStoreProbeService_ServeProbesUntilCanceled(t *testing.T) {
	store := &fakePinger{}
	svc := NewStoreProbeService(store, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for store.count() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if store.count() < 3 {
		t.Errorf("pings = %d, want at least 3", store.count())
	}
}
