// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"strconv"
	"strings"
)

// Statement is a compiled query with "?" placeholders and its arguments in
// placeholder order. Use Rebind to adapt it to the store's placeholder style.
type Statement struct {
	SQL  string
	Args []interface{}
}

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Asc Direction = iota
	Desc
)

// String returns the SQL keyword for the direction.
func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderTerm is one ORDER BY key. NULL values always sort last regardless of
// direction so missing dates or ratings never lead a result.
type OrderTerm struct {
	Expr      string
	Direction Direction
}

// SelectBuilder assembles a SELECT statement from typed parts. Arguments are
// collected in the textual order of their placeholders: joins, WHERE, HAVING.
type SelectBuilder struct {
	columns  []string
	from     string
	joins    []string
	joinArgs []interface{}
	where    *WhereBuilder
	groupBy  []string
	having   *WhereBuilder
	orderBy  []OrderTerm
	limit    int
}

// Select starts a SELECT with the given column expressions.
func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{
		columns: columns,
		where:   NewWhereBuilder(),
		having:  NewWhereBuilder(),
	}
}

// From sets the FROM clause (table plus optional alias).
func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.from = table
	return s
}

// Join appends a full join clause such as "JOIN genre g ON g.genre_id = mg.genre_id".
// Arguments bind to placeholders inside the clause (for example a derived table).
func (s *SelectBuilder) Join(clause string, args ...interface{}) *SelectBuilder {
	s.joins = append(s.joins, clause)
	s.joinArgs = append(s.joinArgs, args...)
	return s
}

// Where adds a predicate to the WHERE clause. Nil predicates are ignored.
func (s *SelectBuilder) Where(p Predicate) *SelectBuilder {
	s.where.Add(p)
	return s
}

// GroupBy sets the GROUP BY expressions.
func (s *SelectBuilder) GroupBy(exprs ...string) *SelectBuilder {
	s.groupBy = append(s.groupBy, exprs...)
	return s
}

// Having adds a post-aggregation predicate. Nil predicates are ignored.
func (s *SelectBuilder) Having(p Predicate) *SelectBuilder {
	s.having.Add(p)
	return s
}

// OrderBy appends sort keys.
func (s *SelectBuilder) OrderBy(terms ...OrderTerm) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Limit caps the number of rows. Zero means no limit.
func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

// Build compiles the statement.
func (s *SelectBuilder) Build() Statement {
	var sb strings.Builder
	args := make([]interface{}, 0, len(s.joinArgs)+8)

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(s.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(s.from)

	for _, j := range s.joins {
		sb.WriteByte(' ')
		sb.WriteString(j)
	}
	args = append(args, s.joinArgs...)

	if !s.where.IsEmpty() {
		clause, whereArgs := s.where.Build()
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
		args = append(args, whereArgs...)
	}

	if len(s.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(s.groupBy, ", "))
	}

	if !s.having.IsEmpty() {
		clause, havingArgs := s.having.Build()
		sb.WriteString(" HAVING ")
		sb.WriteString(clause)
		args = append(args, havingArgs...)
	}

	if len(s.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		for i, term := range s.orderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(term.Expr)
			sb.WriteByte(' ')
			sb.WriteString(term.Direction.String())
			sb.WriteString(" NULLS LAST")
		}
	}

	if s.limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(strconv.Itoa(s.limit))
	}

	return Statement{SQL: sb.String(), Args: args}
}
