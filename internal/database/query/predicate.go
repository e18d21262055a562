// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"strings"
)

// Predicate is a typed boolean clause. It compiles to SQL text containing
// only trusted column expressions and "?" placeholders; every caller-supplied
// value travels in the argument list.
//
// Constructors return nil for an absent predicate (for example an empty IN
// set). Builders and the And/Or combinators drop nil predicates, so optional
// filters can be composed without branching at the call site.
type Predicate interface {
	appendSQL(sb *strings.Builder, args []interface{}) []interface{}
}

// Op is a binary comparison operator.
type Op string

// Supported comparison operators.
const (
	OpEq  Op = "="
	OpNe  Op = "<>"
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

type comparison struct {
	column string
	op     Op
	value  interface{}
}

func (c comparison) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString(c.column)
	sb.WriteByte(' ')
	sb.WriteString(string(c.op))
	sb.WriteString(" ?")
	return append(args, c.value)
}

// Compare builds "column op ?".
func Compare(column string, op Op, value interface{}) Predicate {
	return comparison{column: column, op: op, value: value}
}

// Eq builds "column = ?".
func Eq(column string, value interface{}) Predicate { return Compare(column, OpEq, value) }

// Ne builds "column <> ?". Rows where column is NULL never match.
func Ne(column string, value interface{}) Predicate { return Compare(column, OpNe, value) }

// Gte builds "column >= ?".
func Gte(column string, value interface{}) Predicate { return Compare(column, OpGte, value) }

// Lte builds "column <= ?".
func Lte(column string, value interface{}) Predicate { return Compare(column, OpLte, value) }

type membership struct {
	column string
	values []interface{}
}

func (m membership) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString(m.column)
	sb.WriteString(" IN (")
	for i := range m.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('?')
	}
	sb.WriteByte(')')
	return append(args, m.values...)
}

// In builds "column IN (?, ?, ...)". An empty set yields nil (no predicate),
// never a predicate that matches nothing.
func In[T any](column string, values []T) Predicate {
	if len(values) == 0 {
		return nil
	}
	boxed := make([]interface{}, len(values))
	for i, v := range values {
		boxed[i] = v
	}
	return membership{column: column, values: boxed}
}

type between struct {
	column string
	lo, hi interface{}
}

func (b between) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString(b.column)
	sb.WriteString(" BETWEEN ? AND ?")
	return append(args, b.lo, b.hi)
}

// Between builds the inclusive range "column BETWEEN ? AND ?".
func Between(column string, lo, hi interface{}) Predicate {
	return between{column: column, lo: lo, hi: hi}
}

type containsFold struct {
	expr   string
	needle string
}

func (c containsFold) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	// strpos matches the needle literally ("%" and "_" are not wildcards)
	// and exists in both DuckDB and PostgreSQL.
	sb.WriteString("strpos(lower(")
	sb.WriteString(c.expr)
	sb.WriteString("), lower(?)) > 0")
	return append(args, c.needle)
}

// ContainsFold builds a case-insensitive substring match of needle within expr.
// A blank needle yields nil.
func ContainsFold(expr, needle string) Predicate {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return nil
	}
	return containsFold{expr: expr, needle: needle}
}

type group struct {
	op    string
	preds []Predicate
}

func (g group) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteByte('(')
	for i, p := range g.preds {
		if i > 0 {
			sb.WriteByte(' ')
			sb.WriteString(g.op)
			sb.WriteByte(' ')
		}
		args = p.appendSQL(sb, args)
	}
	sb.WriteByte(')')
	return args
}

// And joins predicates conjunctively. Nil predicates are dropped; a single
// remaining predicate is returned as is, and none yields nil.
func And(preds ...Predicate) Predicate {
	return combine("AND", preds)
}

// Or joins predicates disjunctively with the same nil handling as And.
func Or(preds ...Predicate) Predicate {
	return combine("OR", preds)
}

func combine(op string, preds []Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return group{op: op, preds: kept}
	}
}

type exists struct {
	from      string
	correlate string
	where     Predicate
}

func (e exists) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString("EXISTS (SELECT 1 FROM ")
	sb.WriteString(e.from)
	sb.WriteString(" WHERE ")
	sb.WriteString(e.correlate)
	sb.WriteString(" AND ")
	args = e.where.appendSQL(sb, args)
	sb.WriteByte(')')
	return args
}

// Exists builds a correlated "EXISTS (SELECT 1 FROM from WHERE correlate AND where)".
// It yields nil when where is nil, so an absent inner filter adds nothing.
//
//	query.Exists("movie_genre mg JOIN genre g ON g.genre_id = mg.genre_id",
//	    "mg.movie_id = m.movie_id", query.In("g.genre_name", genres))
func Exists(from, correlate string, where Predicate) Predicate {
	if where == nil {
		return nil
	}
	return exists{from: from, correlate: correlate, where: where}
}

type raw struct {
	clause string
	args   []interface{}
}

func (r raw) appendSQL(sb *strings.Builder, args []interface{}) []interface{} {
	sb.WriteString(r.clause)
	return append(args, r.args...)
}

// Raw wraps a fixed SQL fragment with its "?" arguments.
// The clause must never contain caller-supplied text.
func Raw(clause string, args ...interface{}) Predicate {
	return raw{clause: clause, args: args}
}

// Compile renders a predicate to SQL and its arguments.
// A nil predicate compiles to ("", nil).
func Compile(p Predicate) (string, []interface{}) {
	if p == nil {
		return "", nil
	}
	var sb strings.Builder
	args := p.appendSQL(&sb, nil)
	return sb.String(), args
}
