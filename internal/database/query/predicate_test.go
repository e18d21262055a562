// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		pred     Predicate
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "nil",
			pred:     nil,
			wantSQL:  "",
			wantArgs: nil,
		},
		{
			name:     "equality",
			pred:     Eq("m.country", "KOR"),
			wantSQL:  "m.country = ?",
			wantArgs: []interface{}{"KOR"},
		},
		{
			name:     "negation",
			pred:     Ne("m.country", "KOR"),
			wantSQL:  "m.country <> ?",
			wantArgs: []interface{}{"KOR"},
		},
		{
			name:     "membership",
			pred:     In("g.genre_id", []int64{3, 1}),
			wantSQL:  "g.genre_id IN (?, ?)",
			wantArgs: []interface{}{int64(3), int64(1)},
		},
		{
			name:     "range",
			pred:     Between("u.birth_year", 1996, 2005),
			wantSQL:  "u.birth_year BETWEEN ? AND ?",
			wantArgs: []interface{}{1996, 2005},
		},
		{
			name:     "substring keeps wildcards literal",
			pred:     ContainsFold("m.title", " 100%_real "),
			wantSQL:  "strpos(lower(m.title), lower(?)) > 0",
			wantArgs: []interface{}{"100%_real"},
		},
		{
			name:     "single-element or collapses",
			pred:     Or(nil, Eq("a", 1), nil),
			wantSQL:  "a = ?",
			wantArgs: []interface{}{1},
		},
		{
			name:     "nested groups",
			pred:     And(Or(Eq("a", 1), Eq("b", 2)), Lte("c", 3)),
			wantSQL:  "((a = ? OR b = ?) AND c <= ?)",
			wantArgs: []interface{}{1, 2, 3},
		},
		{
			name: "correlated exists",
			pred: Exists("movie_ott mo JOIN ott o ON o.ott_id = mo.ott_id", "mo.movie_id = m.movie_id",
				In("o.ott_name", []string{"넷플릭스"})),
			wantSQL:  "EXISTS (SELECT 1 FROM movie_ott mo JOIN ott o ON o.ott_id = mo.ott_id WHERE mo.movie_id = m.movie_id AND o.ott_name IN (?))",
			wantArgs: []interface{}{"넷플릭스"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := Compile(tt.pred)
			if gotSQL != tt.wantSQL {
				t.Errorf("Compile() sql = %q, want %q", gotSQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("Compile() args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestAbsentPredicatesAreNil(t *testing.T) {
	if In[string]("x", []string{}) != nil {
		t.Error("empty In should be nil")
	}
	if ContainsFold("x", "") != nil {
		t.Error("blank ContainsFold should be nil")
	}
	if And() != nil || Or(nil, nil) != nil {
		t.Error("empty combinators should be nil")
	}
	if Exists("t", "t.id = m.id", nil) != nil {
		t.Error("Exists without inner predicate should be nil")
	}
}

func TestCompileNeverInlinesValues(t *testing.T) {
	hostile := "'; DROP TABLE movie; --"
	sql, args := Compile(And(
		Eq("m.title", hostile),
		ContainsFold("d.name", hostile),
		In("o.ott_name", []string{hostile}),
	))

	if strings.Contains(sql, "DROP") {
		t.Errorf("value leaked into SQL: %q", sql)
	}
	if strings.Count(sql, "?") != len(args) {
		t.Errorf("placeholder count %d != arg count %d", strings.Count(sql, "?"), len(args))
	}
}
