// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package models

import (
	"strconv"
	"time"
)

// RatingUnavailable is shown in place of an average rating for movies with no reviews.
const RatingUnavailable = "N/A"

// MovieSummary is one row of a filter search or ranked recommendation list.
// Multi-valued attributes (genres, directors) are distinct and sorted by name.
//
// AvgRating is nil when the movie has no reviews; it is never reported as 0.
// RatingDisplay carries the presentation form ("4.3" or "N/A").
type MovieSummary struct {
	ID                int64    `json:"movie_id"`
	Title             string   `json:"title"`
	ReleaseDate       *string  `json:"release_date"` // YYYY-MM-DD
	ReleaseYear       *int     `json:"release_year"`
	RunTime           *int     `json:"run_time"` // minutes
	AllowedAge        *string  `json:"allowed_age"`
	Country           *string  `json:"country"`
	Genres            []string `json:"genres"`
	Directors         []string `json:"directors"`
	AvgRating         *float64 `json:"avg_rating"`
	RatingDisplay     string   `json:"rating_display"`
	ReviewCount       int64    `json:"review_count"`
	RecentReviewCount int64    `json:"recent_review_count,omitempty"`
}

// SetReleaseDate fills ReleaseDate and ReleaseYear from a nullable date.
func (m *MovieSummary) SetReleaseDate(t *time.Time) {
	if t == nil {
		m.ReleaseDate = nil
		m.ReleaseYear = nil
		return
	}
	date := t.Format("2006-01-02")
	year := t.Year()
	m.ReleaseDate = &date
	m.ReleaseYear = &year
}

// SetAvgRating fills AvgRating and RatingDisplay from a nullable average.
func (m *MovieSummary) SetAvgRating(avg *float64) {
	m.AvgRating = avg
	m.RatingDisplay = FormatRating(avg)
}

// FormatRating renders an average rating with one decimal, or "N/A" when absent.
func FormatRating(avg *float64) string {
	if avg == nil {
		return RatingUnavailable
	}
	return strconv.FormatFloat(*avg, 'f', 1, 64)
}

// Director is a credited director of a movie.
type Director struct {
	ID          int64   `json:"director_id"`
	Name        string  `json:"name"`
	Gender      *string `json:"gender"`
	Nationality *string `json:"nationality"`
	BirthYear   *int    `json:"birth_year"`
}

// Review is a single user review of a movie.
type Review struct {
	ID        int64     `json:"review_id"`
	UserID    int64     `json:"user_id"`
	Rating    float64   `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// MovieDetail is the full view of one movie: its attributes, credits,
// platforms, reviews (newest first) and other movies by the same directors.
type MovieDetail struct {
	Movie              MovieSummary   `json:"movie"`
	Directors          []Director     `json:"directors"`
	OTTs               []string       `json:"otts"`
	Reviews            []Review       `json:"reviews"`
	SameDirectorMovies []MovieSummary `json:"same_director_movies"`
}

// FilterOption is a selectable value with its display label.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RatingRange is a selectable average-rating band.
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions lists the values a client can offer for each filter field.
type FilterOptions struct {
	OTTs         []string       `json:"otts"`
	Genres       []string       `json:"genres"`
	AgeRatings   []string       `json:"age_ratings"`
	Decades      []string       `json:"decades"`
	Countries    []FilterOption `json:"countries"`
	RatingRanges []RatingRange  `json:"rating_ranges"`
	Sorts        []string       `json:"sorts"`
}
