// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package catalog

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseFilter_Empty(t *testing.T) {
	f := ParseFilter(url.Values{})

	if !f.IsEmpty() {
		t.Errorf("Expected empty filter, got %+v", f)
	}
	if f.Sort != SortRatingDesc {
		t.Errorf("Expected default sort %q, got %q", SortRatingDesc, f.Sort)
	}
}

func TestParseFilter_Lists(t *testing.T) {
	values := url.Values{
		"ott":   {"넷플릭스, 왓챠,,넷플릭스", "디즈니+"},
		"genre": {" , "},
		"age":   {"15+,19+"},
	}

	f := ParseFilter(values)

	if want := []string{"넷플릭스", "왓챠", "디즈니+"}; !reflect.DeepEqual(f.OTTs, want) {
		t.Errorf("OTTs = %v, want %v", f.OTTs, want)
	}
	if f.Genres != nil {
		t.Errorf("Expected blank genre list to be absent, got %v", f.Genres)
	}
	if want := []string{"15+", "19+"}; !reflect.DeepEqual(f.AgeRatings, want) {
		t.Errorf("AgeRatings = %v, want %v", f.AgeRatings, want)
	}
}

func TestParseFilter_DecadesAndCountries(t *testing.T) {
	tests := []struct {
		name          string
		year          string
		country       string
		wantDecades   []Decade
		wantCountries []Country
	}{
		{
			name:        "known decades",
			year:        "1990s,2020S",
			wantDecades: []Decade{Decade1990s, Decade2020s},
		},
		{
			name:        "unknown decades ignored",
			year:        "1980s,abc",
			wantDecades: nil,
		},
		{
			name:          "korean labels",
			country:       "한국,외국",
			wantCountries: []Country{CountryDomestic, CountryForeign},
		},
		{
			name:          "aliases deduplicated",
			country:       "domestic,한국,mars",
			wantCountries: []Country{CountryDomestic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			if tt.year != "" {
				values.Set("year", tt.year)
			}
			if tt.country != "" {
				values.Set("country", tt.country)
			}

			f := ParseFilter(values)

			if !reflect.DeepEqual(f.Decades, tt.wantDecades) {
				t.Errorf("Decades = %v, want %v", f.Decades, tt.wantDecades)
			}
			if !reflect.DeepEqual(f.Countries, tt.wantCountries) {
				t.Errorf("Countries = %v, want %v", f.Countries, tt.wantCountries)
			}
		})
	}
}

func TestParseFilter_Ratings(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantMin *float64
		wantMax *float64
	}{
		{"both", "3", "4.5", ptr(3.0), ptr(4.5)},
		{"min only", "2.5", "", ptr(2.5), nil},
		{"max only", "", "4", nil, ptr(4.0)},
		{"non-numeric treated as absent", "abc", "five", nil, nil},
		{"non-finite treated as absent", "NaN", "+Inf", nil, nil},
		{"whitespace trimmed", " 3 ", "", ptr(3.0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set("ratingMin", tt.min)
			values.Set("ratingMax", tt.max)

			f := ParseFilter(values)

			if !floatPtrEqual(f.RatingMin, tt.wantMin) {
				t.Errorf("RatingMin = %v, want %v", deref(f.RatingMin), deref(tt.wantMin))
			}
			if !floatPtrEqual(f.RatingMax, tt.wantMax) {
				t.Errorf("RatingMax = %v, want %v", deref(f.RatingMax), deref(tt.wantMax))
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input string
		want  Sort
	}{
		{"release_asc", SortReleaseAsc},
		{"RUNTIME_DESC", SortRuntimeDesc},
		{" rating_asc ", SortRatingAsc},
		{"", SortRatingDesc},
		{"popularity", SortRatingDesc},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseSort(tt.input); got != tt.want {
				t.Errorf("ParseSort(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }

func deref(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
