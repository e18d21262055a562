// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinefilter/internal/database/query"
	"github.com/tomtom215/cinefilter/internal/models"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// mockProvider serves canned cohort data and records statements.
type mockProvider struct {
	mu         sync.Mutex
	size       int
	counts     []models.GenreCount
	rankErr    error
	calls      atomic.Int32
	statements []query.Statement
}

func (m *mockProvider) record(stmt query.Statement) {
	m.calls.Add(1)
	m.mu.Lock()
	m.statements = append(m.statements, stmt)
	m.mu.Unlock()
}

func (m *mockProvider) CountUsers(_ context.Context, stmt query.Statement) (int, error) {
	m.record(stmt)
	return m.size, nil
}

func (m *mockProvider) QueryGenreCounts(_ context.Context, stmt query.Statement) ([]models.GenreCount, error) {
	m.record(stmt)
	return m.counts, nil
}

func (m *mockProvider) QueryMovieSummaries(ctx context.Context, stmt query.Statement) ([]models.MovieSummary, error) {
	m.record(stmt)
	if m.rankErr != nil && strings.Contains(stmt.SQL, "ORDER BY COALESCE(rs.recent_review_count") {
		return nil, m.rankErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []models.MovieSummary{{ID: 1, Title: "기생충"}}, nil
}

func newTestEngine(t *testing.T, dp DataProvider, cfg *Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, dp, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	e.SetClock(func() time.Time { return fixedNow })
	t.Cleanup(e.Close)
	return e
}

func noCache() *Config {
	cfg := DefaultConfig()
	cfg.CacheTTL = 0
	return cfg
}

func TestNewEngine(t *testing.T) {
	if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
		t.Error("Expected error without data provider")
	}

	bad := DefaultConfig()
	bad.Limit = 0
	if _, err := NewEngine(bad, &mockProvider{}, zerolog.Nop()); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestEngineRecommend_ValidationBeforeQueries(t *testing.T) {
	dp := &mockProvider{size: 5}
	e := newTestEngine(t, dp, noCache())

	tests := []Request{
		{BirthYear: "99", Gender: "M"},
		{BirthYear: "abcd", Gender: "M"},
		{BirthYear: "2001", Gender: ""},
		{BirthYear: "2001", Gender: "Q"},
	}
	for _, req := range tests {
		_, err := e.Recommend(context.Background(), req)
		if !models.IsValidationError(err) {
			t.Errorf("Recommend(%+v) expected validation error, got %v", req, err)
		}
	}
	if dp.calls.Load() != 0 {
		t.Errorf("Expected no queries, got %d", dp.calls.Load())
	}
}

func TestEngineRecommend_EmptyCohort(t *testing.T) {
	dp := &mockProvider{size: 0}
	e := newTestEngine(t, dp, noCache())

	rec, err := e.Recommend(context.Background(), Request{BirthYear: "2005", Gender: "F"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !rec.Empty || rec.CohortSize != 0 {
		t.Errorf("Expected empty cohort, got %+v", rec.CohortSummary)
	}
	if rec.Movies == nil || len(rec.Movies) != 0 || rec.Genres == nil {
		t.Errorf("Expected empty, non-nil lists: %+v", rec)
	}
	if rec.AgeGroup != "20대" || rec.BirthYearMin != 1996 || rec.BirthYearMax != 2005 {
		t.Errorf("unexpected cohort: %+v", rec.CohortSummary)
	}
	if dp.calls.Load() != 1 {
		t.Errorf("Expected only the size query, got %d", dp.calls.Load())
	}
}

func TestEngineRecommend_NoPreferences(t *testing.T) {
	dp := &mockProvider{size: 4}
	e := newTestEngine(t, dp, noCache())

	rec, err := e.Recommend(context.Background(), Request{BirthYear: "2005", Gender: "F"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !rec.Empty || rec.CohortSize != 4 || len(rec.Movies) != 0 {
		t.Errorf("Expected empty result with cohort size 4, got %+v", rec)
	}
}

func TestEngineRecommend_Fallback(t *testing.T) {
	dp := &mockProvider{
		size:   20,
		counts: []models.GenreCount{{GenreID: 1, Name: "Drama", Count: 4}, {GenreID: 2, Name: "Thriller", Count: 9}},
	}
	e := newTestEngine(t, dp, noCache())

	rec, err := e.Recommend(context.Background(), Request{BirthYear: "1990", Gender: "m", Strategy: "bogus"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !rec.UsedFallback || rec.Threshold != 10 {
		t.Errorf("Expected fallback with threshold 10, got %+v", rec.CohortSummary)
	}
	if rec.Strategy != string(StrategyTop) {
		t.Errorf("Expected unknown strategy to default to top, got %q", rec.Strategy)
	}
	if rec.Gender != GenderMale || len(rec.Movies) != 1 {
		t.Errorf("unexpected result: %+v", rec)
	}

	last := dp.statements[len(dp.statements)-1]
	hotSince := fixedNow.Add(-60 * 24 * time.Hour)
	if len(last.Args) == 0 || last.Args[0] != hotSince {
		t.Errorf("Expected hot window cutoff %v as first arg, got %v", hotSince, last.Args)
	}
}

func TestEngineRecommendAll(t *testing.T) {
	dp := &mockProvider{
		size:   10,
		counts: []models.GenreCount{{GenreID: 2, Name: "Thriller", Count: 6}},
	}
	e := newTestEngine(t, dp, noCache())

	set, err := e.RecommendAll(context.Background(), Request{BirthYear: "2005", Gender: "F"})
	if err != nil {
		t.Fatalf("RecommendAll() error = %v", err)
	}
	if len(set.Top) != 1 || len(set.Hot) != 1 || len(set.Recent) != 1 {
		t.Errorf("Expected all three lists, got %+v", set)
	}
	if set.UsedFallback || set.Threshold != 5 || len(set.Genres) != 1 {
		t.Errorf("unexpected summary: %+v", set.CohortSummary)
	}
	// size + counts once, then three rankings
	if got := dp.calls.Load(); got != 5 {
		t.Errorf("Expected 5 queries, got %d", got)
	}
}

func TestEngineRecommendAll_FailureIsTotal(t *testing.T) {
	storeErr := models.DataStoreError("rank", errors.New("connection lost"))
	dp := &mockProvider{
		size:    10,
		counts:  []models.GenreCount{{GenreID: 2, Name: "Thriller", Count: 6}},
		rankErr: storeErr,
	}
	e := newTestEngine(t, dp, noCache())

	set, err := e.RecommendAll(context.Background(), Request{BirthYear: "2005", Gender: "F"})
	if set != nil {
		t.Error("Expected no partial result")
	}
	if !errors.Is(err, models.ErrDataStore) {
		t.Errorf("Expected ErrDataStore, got %v", err)
	}
}

func TestEngineRecommend_Cached(t *testing.T) {
	dp := &mockProvider{
		size:   10,
		counts: []models.GenreCount{{GenreID: 2, Name: "Thriller", Count: 6}},
	}
	e := newTestEngine(t, dp, DefaultConfig())

	req := Request{BirthYear: "2005", Gender: "F", Strategy: StrategyRecent}
	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	calls := dp.calls.Load()

	// 2004 falls in the same cohort and day
	req.BirthYear = "2004"
	second, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if dp.calls.Load() != calls {
		t.Error("Expected cached result for same cohort")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result = %+v, want %+v", second, first)
	}

	req.Strategy = StrategyHot
	if _, err := e.Recommend(context.Background(), req); err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if dp.calls.Load() == calls {
		t.Error("Expected a different strategy to miss the cache")
	}
}

func TestEngineRecommend_CachedResultIsolation(t *testing.T) {
	dp := &mockProvider{
		size:   10,
		counts: []models.GenreCount{{GenreID: 2, Name: "Thriller", Count: 6}},
	}
	e := newTestEngine(t, dp, DefaultConfig())
	ctx := context.Background()
	req := Request{BirthYear: "2005", Gender: "F", Strategy: StrategyTop}

	first, err := e.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	first.Movies[0].Title = "changed"
	first.Genres[0].Count = 0
	first.Movies = append(first.Movies, models.MovieSummary{ID: 99})

	second, err := e.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(second.Movies) != 1 || second.Movies[0].Title != "기생충" {
		t.Errorf("cached movies were mutated by a caller: %+v", second.Movies)
	}
	if second.Genres[0].Count != 6 {
		t.Errorf("cached genres were mutated by a caller: %+v", second.Genres)
	}

	set, err := e.RecommendAll(ctx, req)
	if err != nil {
		t.Fatalf("RecommendAll() error = %v", err)
	}
	set.Top[0].Title = "changed"
	set.Hot = nil

	again, err := e.RecommendAll(ctx, req)
	if err != nil {
		t.Fatalf("RecommendAll() error = %v", err)
	}
	if again.Top[0].Title != "기생충" || len(again.Hot) != 1 {
		t.Errorf("cached set was mutated by a caller: %+v", again)
	}
}

func TestEngineRecommend_Canceled(t *testing.T) {
	dp := &mockProvider{
		size:   10,
		counts: []models.GenreCount{{GenreID: 2, Name: "Thriller", Count: 6}},
	}
	e := newTestEngine(t, dp, noCache())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := e.Recommend(ctx, Request{BirthYear: "2005", Gender: "F"})
	if rec != nil || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cancellation failure, got rec=%v err=%v", rec, err)
	}
}
