// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package query provides SQL query building utilities for the database package.
// It reduces code duplication and provides type-safe query construction.
package query

import (
	"strings"
)

// Column names of the events table referenced by generated clauses.
const (
	ColumnYear      = "year"
	ColumnGroup     = "group_name"
	ColumnEventType = "event_type"
	ColumnLat       = "lat"
	ColumnLon       = "lon"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// It ensures consistent parameter handling and reduces SQL injection risks.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddYearRange(2019, 2021)
//	wb.AddEquals(query.ColumnGroup, "Militia X")
//	whereClause, args := wb.Build()
//	// year BETWEEN ? AND ? AND group_name = ?
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by helper methods.
//
// Parameters:
//   - clause: SQL condition fragment (e.g., "fatalities > ?")
//   - args: Arguments to bind to placeholders in the clause
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddYearRange adds an inclusive year range filter.
// A reversed range is passed through unchanged and matches nothing.
//
// Generates:
//   - "year BETWEEN ? AND ?"
func (wb *WhereBuilder) AddYearRange(startYear, endYear int) *WhereBuilder {
	return wb.AddClause(ColumnYear+" BETWEEN ? AND ?", startYear, endYear)
}

// AddEquals adds an equality filter on a column.
// An empty value means "no filter" and is skipped.
//
// Parameters:
//   - column: trusted column name (use the Column constants)
//   - value: value to match exactly (empty string is skipped)
func (wb *WhereBuilder) AddEquals(column, value string) *WhereBuilder {
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddBox adds an inclusive latitude/longitude containment filter.
//
// Generates:
//   - "lat BETWEEN ? AND ?"
//   - "lon BETWEEN ? AND ?"
func (wb *WhereBuilder) AddBox(minLat, maxLat, minLng, maxLng float64) *WhereBuilder {
	wb.AddClause(ColumnLat+" BETWEEN ? AND ?", minLat, maxLat)
	return wb.AddClause(ColumnLon+" BETWEEN ? AND ?", minLng, maxLng)
}

// AddILike adds a case-insensitive substring match. The term is matched
// literally: LIKE wildcards in the term are escaped.
//
// Generates:
//   - "column ILIKE ? ESCAPE '\'"
func (wb *WhereBuilder) AddILike(column, term string) *WhereBuilder {
	return wb.AddClause(column+` ILIKE ? ESCAPE '\'`, "%"+EscapeLike(term)+"%")
}

// AddNotEmpty requires a column to be neither NULL nor the empty string.
func (wb *WhereBuilder) AddNotEmpty(column string) *WhereBuilder {
	return wb.AddClause(column + " IS NOT NULL AND " + column + " <> ''")
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
//
// Returns:
//   - string: Complete WHERE clause (without "WHERE" keyword)
//   - []interface{}: Arguments to bind to placeholders
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so the term matches literally
// under ESCAPE '\'.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
