// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package query

import (
	"strconv"
	"strings"
)

// Dialect selects the placeholder style of the target store.
type Dialect int

const (
	// DialectQuestion uses "?" placeholders (DuckDB).
	DialectQuestion Dialect = iota
	// DialectDollar uses "$1, $2, ..." placeholders (PostgreSQL via lib/pq).
	DialectDollar
)

// DialectForDriver returns the placeholder dialect for a database/sql driver name.
func DialectForDriver(driver string) Dialect {
	switch driver {
	case "postgres", "pgx":
		return DialectDollar
	default:
		return DialectQuestion
	}
}

// Rebind returns a copy of the statement using the dialect's placeholders.
func (s Statement) Rebind(d Dialect) Statement {
	return Statement{SQL: Rebind(d, s.SQL), Args: s.Args}
}

// Rebind rewrites "?" placeholders for the dialect. Question marks inside
// single-quoted string literals are left untouched.
func Rebind(d Dialect, sql string) string {
	if d != DialectDollar || !strings.Contains(sql, "?") {
		return sql
	}

	var sb strings.Builder
	sb.Grow(len(sql) + 16)

	n := 0
	inQuote := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			sb.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
