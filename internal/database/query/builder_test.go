// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"reflect"
	"testing"
)

func TestWhereBuilder_Empty(t *testing.T) {
	wb := NewWhereBuilder()

	if !wb.IsEmpty() {
		t.Error("Expected new builder to be empty")
	}

	if wb.Count() != 0 {
		t.Errorf("Expected count 0, got %d", wb.Count())
	}

	whereClause, args := wb.Build()
	if whereClause != "1=1" {
		t.Errorf("Expected '1=1' for empty builder, got %q", whereClause)
	}
	if len(args) != 0 {
		t.Errorf("Expected 0 args, got %d", len(args))
	}
	if wb.Predicate() != nil {
		t.Error("Expected nil predicate for empty builder")
	}
}

func TestWhereBuilder_SkipsNilPredicates(t *testing.T) {
	wb := NewWhereBuilder()
	wb.Add(nil)
	wb.Add(In[string]("m.allowed_age", nil))
	wb.Add(ContainsFold("m.title", "   "))

	if !wb.IsEmpty() {
		t.Errorf("Expected absent predicates to be skipped, got %d", wb.Count())
	}
}

func TestWhereBuilder_Conjunction(t *testing.T) {
	wb := NewWhereBuilder()
	wb.Add(In("m.allowed_age", []string{"12+", "15+"})).
		Add(Or(Between(ColReleaseYear, 1990, 1999), Gte(ColReleaseYear, 2020))).
		AddClause("m.run_time > ?", 90)

	whereClause, args := wb.Build()
	expected := "m.allowed_age IN (?, ?) AND " +
		"(EXTRACT(YEAR FROM m.release_date) BETWEEN ? AND ? OR EXTRACT(YEAR FROM m.release_date) >= ?) AND " +
		"m.run_time > ?"
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}

	wantArgs := []interface{}{"12+", "15+", 1990, 1999, 2020, 90}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("Expected args %v, got %v", wantArgs, args)
	}
	if wb.Count() != 3 {
		t.Errorf("Expected count 3, got %d", wb.Count())
	}
}

func TestWhereBuilder_BuildWithPrefix(t *testing.T) {
	wb := NewWhereBuilder()
	wb.Add(Eq("m.country", "KOR"))

	whereClause, args := wb.BuildWithPrefix()
	if whereClause != "WHERE m.country = ?" {
		t.Errorf("Expected prefixed clause, got %q", whereClause)
	}
	if len(args) != 1 || args[0] != "KOR" {
		t.Errorf("Expected [KOR], got %v", args)
	}

	empty, _ := NewWhereBuilder().BuildWithPrefix()
	if empty != "WHERE 1=1" {
		t.Errorf("Expected 'WHERE 1=1', got %q", empty)
	}
}
