// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/cinefilter/internal/models"
)

// Selection is the outcome of strong-genre selection.
type Selection struct {
	Strong       []models.GenreCount
	Threshold    int
	UsedFallback bool
}

// GenreIDs returns the identities of the strong genres.
func (s Selection) GenreIDs() []int64 {
	ids := make([]int64, len(s.Strong))
	for i, g := range s.Strong {
		ids[i] = g.GenreID
	}
	return ids
}

// Threshold returns the preference count a genre needs to be strong in a
// cohort of the given size.
func Threshold(cohortSize int, cfg *Config) int {
	if cohortSize <= cfg.SmallCohortMax {
		return 1
	}
	t := int(math.Ceil(float64(cohortSize) * cfg.MajorityRatio))
	if t < 1 {
		t = 1
	}
	return t
}

// SelectGenres picks the strong genres of a cohort.
//
// Genres whose count meets the threshold are strong. When none does, the
// FallbackTopK most-preferred genres are taken instead and UsedFallback is
// set. Results are ordered by count descending, then genre identity, so the
// same input always yields the same selection. counts is not modified.
func SelectGenres(cohortSize int, counts []models.GenreCount, cfg *Config) Selection {
	sel := Selection{
		Strong:    []models.GenreCount{},
		Threshold: Threshold(cohortSize, cfg),
	}
	if len(counts) == 0 {
		return sel
	}

	ranked := make([]models.GenreCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].GenreID < ranked[j].GenreID
	})

	for _, g := range ranked {
		if g.Count >= sel.Threshold {
			sel.Strong = append(sel.Strong, g)
		}
	}
	if len(sel.Strong) > 0 {
		return sel
	}

	k := cfg.FallbackTopK
	if k > len(ranked) {
		k = len(ranked)
	}
	sel.Strong = append(sel.Strong, ranked[:k]...)
	sel.UsedFallback = true
	return sel
}
