// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Filter holds the optional criteria of a catalog search.
//
// All fields are optional and combine using AND logic. Multi-select fields
// use OR logic within the field (Genres: ["Drama", "Thriller"] matches a movie
// with either genre). A nil or empty slice means the field is absent.
//
// Search matches title OR director name and is applied in addition to Title
// and Director when those are also set.
type Filter struct {
	OTTs       []string
	Genres     []string
	Decades    []Decade
	Countries  []Country
	AgeRatings []string
	Title      string
	Director   string
	Search     string

	// RatingMin and RatingMax bound the aggregated average rating, inclusive.
	// Either may be set alone. Movies without reviews never match a bound.
	RatingMin *float64
	RatingMax *float64

	Sort Sort
}

// Decade is a release-year bucket.
type Decade string

// Supported decade buckets.
const (
	Decade1990s Decade = "1990s"
	Decade2000s Decade = "2000s"
	Decade2010s Decade = "2010s"
	Decade2020s Decade = "2020s"
)

// Decades lists the buckets in display order.
var Decades = []Decade{Decade1990s, Decade2000s, Decade2010s, Decade2020s}

// Bounds returns the inclusive release-year range of the bucket.
// The newest bucket has no upper bound and reports bounded=false.
func (d Decade) Bounds() (lo, hi int, bounded bool) {
	switch d {
	case Decade1990s:
		return 1990, 1999, true
	case Decade2000s:
		return 2000, 2009, true
	case Decade2010s:
		return 2010, 2019, true
	case Decade2020s:
		return 2020, 0, false
	default:
		return 0, 0, false
	}
}

// Valid reports whether d is a known bucket.
func (d Decade) Valid() bool {
	switch d {
	case Decade1990s, Decade2000s, Decade2010s, Decade2020s:
		return true
	}
	return false
}

// Country is the domestic/foreign production split.
type Country string

// Supported country choices.
const (
	CountryDomestic Country = "domestic"
	CountryForeign  Country = "foreign"
)

// countryAliases maps accepted input labels to country choices.
var countryAliases = map[string]Country{
	"domestic": CountryDomestic,
	"foreign":  CountryForeign,
	"한국":       CountryDomestic,
	"외국":       CountryForeign,
}

// Sort is a catalog ordering.
type Sort string

// Supported sort keys.
const (
	SortReleaseAsc  Sort = "release_asc"
	SortReleaseDesc Sort = "release_desc"
	SortRuntimeAsc  Sort = "runtime_asc"
	SortRuntimeDesc Sort = "runtime_desc"
	SortRatingAsc   Sort = "rating_asc"
	SortRatingDesc  Sort = "rating_desc"

	// DefaultSort applies to missing or unrecognized sort keys.
	DefaultSort = SortRatingDesc
)

// Sorts lists every supported sort key.
var Sorts = []Sort{SortReleaseAsc, SortReleaseDesc, SortRuntimeAsc, SortRuntimeDesc, SortRatingAsc, SortRatingDesc}

// ParseSort maps a raw sort value to a Sort, falling back to DefaultSort.
func ParseSort(raw string) Sort {
	s := Sort(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sorts {
		if s == known {
			return s
		}
	}
	return DefaultSort
}

// Query parameter names accepted by ParseFilter.
const (
	ParamOTT       = "ott"
	ParamGenre     = "genre"
	ParamYear      = "year"
	ParamCountry   = "country"
	ParamAge       = "age"
	ParamTitle     = "title"
	ParamDirector  = "director"
	ParamSearch    = "search"
	ParamRatingMin = "ratingMin"
	ParamRatingMax = "ratingMax"
	ParamSort      = "sort"
)

// ParseFilter builds a Filter from query parameters.
//
// List fields accept comma-separated values and repeated parameters. Values
// are trimmed, empties dropped and duplicates removed. Unknown decade or
// country values are ignored. Rating bounds that are not finite numbers are
// treated as absent. ParseFilter never fails.
func ParseFilter(values url.Values) Filter {
	f := Filter{
		OTTs:       listParam(values, ParamOTT),
		Genres:     listParam(values, ParamGenre),
		AgeRatings: listParam(values, ParamAge),
		Title:      strings.TrimSpace(values.Get(ParamTitle)),
		Director:   strings.TrimSpace(values.Get(ParamDirector)),
		Search:     strings.TrimSpace(values.Get(ParamSearch)),
		RatingMin:  floatParam(values.Get(ParamRatingMin)),
		RatingMax:  floatParam(values.Get(ParamRatingMax)),
		Sort:       ParseSort(values.Get(ParamSort)),
	}

	for _, raw := range listParam(values, ParamYear) {
		if d := Decade(strings.ToLower(raw)); d.Valid() {
			f.Decades = append(f.Decades, d)
		}
	}

	seen := make(map[Country]bool, 2)
	for _, raw := range listParam(values, ParamCountry) {
		c, ok := countryAliases[strings.ToLower(raw)]
		if ok && !seen[c] {
			seen[c] = true
			f.Countries = append(f.Countries, c)
		}
	}

	return f
}

// IsEmpty reports whether no filter criterion is set. Sort is not a criterion.
func (f *Filter) IsEmpty() bool {
	return len(f.OTTs) == 0 && len(f.Genres) == 0 && len(f.Decades) == 0 &&
		len(f.Countries) == 0 && len(f.AgeRatings) == 0 &&
		f.Title == "" && f.Director == "" && f.Search == "" &&
		f.RatingMin == nil && f.RatingMax == nil
}

// listParam collects the comma-separated values of key, trimmed and deduplicated
// in first-seen order.
func listParam(values url.Values, key string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" || seen[trimmed] {
				continue
			}
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}
	return result
}

// floatParam parses a finite float, returning nil for blank or invalid input.
func floatParam(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
