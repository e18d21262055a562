// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

// Package query provides SQL query building utilities for the database package.
// It composes typed predicates into parameterized statements.
package query

import (
	"strings"
)

// WhereBuilder accumulates predicates that are joined with AND.
// Nil predicates are ignored so optional filters can be added unconditionally.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.Add(query.In("m.allowed_age", ages))
//	wb.Add(query.ContainsFold("m.title", title))
//	whereClause, args := wb.Build()
//	// m.allowed_age IN (?, ?) AND strpos(lower(m.title), lower(?)) > 0
type WhereBuilder struct {
	preds []Predicate
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		preds: []Predicate{},
	}
}

// Add appends a predicate. Nil predicates are skipped.
func (wb *WhereBuilder) Add(p Predicate) *WhereBuilder {
	if p != nil {
		wb.preds = append(wb.preds, p)
	}
	return wb
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by predicate constructors.
//
// Parameters:
//   - clause: SQL condition fragment (e.g., "m.run_time > ?")
//   - args: Arguments to bind to placeholders in the clause
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	return wb.Add(Raw(clause, args...))
}

// Predicate returns the accumulated predicates as a single conjunction,
// or nil if nothing was added.
func (wb *WhereBuilder) Predicate() Predicate {
	return And(wb.preds...)
}

// Build constructs the final clause and returns it with arguments.
// Top-level predicates are joined with "AND". Returns ("1=1", []) if no
// predicates were added.
//
// Returns:
//   - string: Complete clause (without "WHERE" keyword)
//   - []interface{}: Arguments to bind to placeholders
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.preds) == 0 {
		return "1=1", []interface{}{}
	}

	var sb strings.Builder
	args := make([]interface{}, 0, len(wb.preds))
	for i, p := range wb.preds {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		args = p.appendSQL(&sb, args)
	}
	return sb.String(), args
}

// BuildWithPrefix returns the clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of predicates added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.preds)
}

// IsEmpty returns true if no predicates have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.preds) == 0
}
