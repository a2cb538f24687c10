// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package query

import (
	"github.com/tomtom215/conflictglobe/internal/models"
)

// Predicate is an immutable, parameterized WHERE condition.
//
// Every method returns a new Predicate and leaves the receiver untouched, so a
// base predicate can be shared by the concurrent summary aggregations without
// copying.
type Predicate struct {
	sql  string
	args []interface{}
}

// BaseFilter builds the predicate shared by clustering, drill-down and the
// summary charts: the inclusive year range, plus group and event type
// equality when those filters are non-empty.
func BaseFilter(f models.FilterSet) Predicate {
	wb := NewWhereBuilder().
		AddYearRange(f.StartYear, f.EndYear).
		AddEquals(ColumnGroup, f.Group).
		AddEquals(ColumnEventType, f.EventType)
	return fromBuilder(wb)
}

// WithoutGroup builds the base predicate with the group filter dropped.
// The global event-type distribution uses it.
func WithoutGroup(f models.FilterSet) Predicate {
	return BaseFilter(f.WithoutGroup())
}

// YearRange builds a predicate on the year range alone.
func YearRange(startYear, endYear int) Predicate {
	return fromBuilder(NewWhereBuilder().AddYearRange(startYear, endYear))
}

func fromBuilder(wb *WhereBuilder) Predicate {
	sql, args := wb.Build()
	return Predicate{sql: sql, args: args}
}

// And returns a new predicate with the clause appended.
func (p Predicate) And(clause string, args ...interface{}) Predicate {
	out := Predicate{
		sql:  "(" + p.sql + ") AND (" + clause + ")",
		args: make([]interface{}, 0, len(p.args)+len(args)),
	}
	if p.sql == "" {
		out.sql = clause
	}
	out.args = append(out.args, p.args...)
	out.args = append(out.args, args...)
	return out
}

// AndBox returns a new predicate constrained to the inclusive box.
func (p Predicate) AndBox(b models.Bounds) Predicate {
	sql, args := NewWhereBuilder().AddBox(b.MinLat, b.MaxLat, b.MinLng, b.MaxLng).Build()
	return p.And(sql, args...)
}

// AndNotEmpty returns a new predicate that also excludes NULL and empty values
// of the column.
func (p Predicate) AndNotEmpty(column string) Predicate {
	sql, _ := NewWhereBuilder().AddNotEmpty(column).Build()
	return p.And(sql)
}

// AndILike returns a new predicate with a literal, case-insensitive substring
// match on the column.
func (p Predicate) AndILike(column, term string) Predicate {
	sql, args := NewWhereBuilder().AddILike(column, term).Build()
	return p.And(sql, args...)
}

// SQL returns the condition without the WHERE keyword.
func (p Predicate) SQL() string {
	if p.sql == "" {
		return "1=1"
	}
	return p.sql
}

// Args returns a copy of the bind arguments.
func (p Predicate) Args() []interface{} {
	out := make([]interface{}, len(p.args))
	copy(out, p.args)
	return out
}
