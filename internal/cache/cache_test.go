// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func newTestCache(ttl time.Duration, now *time.Time) *Cache[string] {
	c := New[string](ttl)
	c.now = func() time.Time { return *now }
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	c := New[string](1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Minute, &now)
	defer c.Close()

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Fatal("Expected key1 to exist immediately after set")
	}

	now = now.Add(61 * time.Second)
	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCacheDisabled(t *testing.T) {
	c := New[string](0)
	defer c.Close()

	if c.Enabled() {
		t.Error("Expected zero TTL cache to be disabled")
	}
	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); exists {
		t.Error("Disabled cache must not return values")
	}

	var nilCache *Cache[string]
	if nilCache.Enabled() {
		t.Error("nil cache must report disabled")
	}
	nilCache.Close()
}

func TestCacheClear(t *testing.T) {
	c := New[string](1 * time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Clear()
	for _, key := range []string{"key1", "key2"} {
		if _, exists := c.Get(key); exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Error("Expected TotalKeys to be reset")
	}
	if stats.Evictions != 2 {
		t.Errorf("Expected 2 evictions, got %d", stats.Evictions)
	}
}

func TestCacheCloseDropsEntries(t *testing.T) {
	c := New[string](1 * time.Minute)
	c.Set("key1", "value1")

	c.Close()
	c.Close()

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected entries to be dropped on Close")
	}
	if c.GetStats().TotalKeys != 0 {
		t.Error("Expected TotalKeys to be reset after Close")
	}
}

func TestCacheCleanup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestCache(time.Minute, &now)
	defer c.Close()

	c.Set("old", "a")
	now = now.Add(30 * time.Second)
	c.Set("new", "b")
	now = now.Add(45 * time.Second)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 key after cleanup, got %d", stats.TotalKeys)
	}
	if !stats.LastCleanup.Equal(now) {
		t.Errorf("Expected LastCleanup %v, got %v", now, stats.LastCleanup)
	}
	if _, ok := c.Get("new"); !ok {
		t.Error("Expected unexpired key to survive cleanup")
	}
}

func TestCacheHitRate(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	if c.HitRate() != 0 {
		t.Error("Expected 0 hit rate for unused cache")
	}

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	if rate := c.HitRate(); rate != 75.0 {
		t.Errorf("Expected 75%% hit rate, got %.2f", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n%5)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if total := c.GetStats().TotalKeys; total != 5 {
		t.Errorf("Expected 5 keys, got %d", total)
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		BirthYear int
		Gender    string
	}

	k1 := GenerateKey("recommend", params{2005, "M"})
	k2 := GenerateKey("recommend", params{2005, "M"})
	k3 := GenerateKey("recommend", params{2005, "F"})

	if k1 != k2 {
		t.Error("Expected identical params to produce identical keys")
	}
	if k1 == k3 {
		t.Error("Expected different params to produce different keys")
	}
	if k1[:10] != "recommend:" {
		t.Errorf("Expected method prefix, got %q", k1)
	}
}
