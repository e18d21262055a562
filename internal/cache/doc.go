// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package cache provides a typed, thread-safe in-memory TTL cache.
//
// It holds the catalog's filter option lists and recently computed cohort
// recommendations. Both are read-mostly and cheap to recompute, so entries
// simply expire; nothing is invalidated explicitly.
//
// # Usage
//
//	c := cache.New[*models.RecommendationSet](time.Minute)
//	defer c.Close()
//
//	key := cache.GenerateKey("recommend_all", req)
//	if set, ok := c.Get(key); ok {
//	    return set, nil
//	}
//	set, err := compute()
//	if err == nil {
//	    c.Set(key, set)
//	}
//
// A zero TTL disables the cache: Set stores nothing and Get always misses.
//
// # Statistics
//
// GetStats and HitRate expose hit, miss and eviction counters for logging.
package cache
