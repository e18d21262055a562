// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package models

import "slices"

// GenreCount is the number of cohort members who declared a genre as a favorite.
type GenreCount struct {
	GenreID int64  `json:"genre_id"`
	Name    string `json:"genre_name"`
	Count   int    `json:"count"`
}

// CohortSummary describes the cohort a recommendation was computed for and
// how its strong genres were chosen.
//
// Empty is true when the cohort has no members or no genre preferences;
// Genres and any movie lists are then empty, never nil.
type CohortSummary struct {
	AgeGroup     string       `json:"age_group"` // e.g. "20대"
	Decade       int          `json:"decade"`
	Gender       string       `json:"gender"`
	BirthYearMin int          `json:"birth_year_min"`
	BirthYearMax int          `json:"birth_year_max"`
	CohortSize   int          `json:"cohort_size"`
	Threshold    int          `json:"threshold"`
	UsedFallback bool         `json:"used_fallback"`
	Empty        bool         `json:"empty"`
	Genres       []GenreCount `json:"genres"`
}

// Recommendation is a single ranked list for a cohort.
type Recommendation struct {
	CohortSummary
	Strategy string         `json:"sort"`
	Movies   []MovieSummary `json:"movies"`
}

// RecommendationSet holds all three ranked lists for one cohort.
type RecommendationSet struct {
	CohortSummary
	Top    []MovieSummary `json:"top"`
	Hot    []MovieSummary `json:"hot"`
	Recent []MovieSummary `json:"recent"`
}

// Clone returns a copy whose slices do not alias r's.
func (r *Recommendation) Clone() *Recommendation {
	if r == nil {
		return nil
	}
	c := *r
	c.Genres = slices.Clone(r.Genres)
	c.Movies = slices.Clone(r.Movies)
	return &c
}

// Clone returns a copy whose slices do not alias s's.
func (s *RecommendationSet) Clone() *RecommendationSet {
	if s == nil {
		return nil
	}
	c := *s
	c.Genres = slices.Clone(s.Genres)
	c.Top = slices.Clone(s.Top)
	c.Hot = slices.Clone(s.Hot)
	c.Recent = slices.Clone(s.Recent)
	return &c
}
