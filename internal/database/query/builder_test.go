// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package query

import (
	"reflect"
	"testing"

	"github.com/tomtom215/conflictglobe/internal/models"
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
}

func TestWhereBuilder_AddYearRange(t *testing.T) {
	wb := NewWhereBuilder().AddYearRange(2019, 2021)

	whereClause, args := wb.Build()
	expected := "year BETWEEN ? AND ?"
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if !reflect.DeepEqual(args, []interface{}{2019, 2021}) {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestWhereBuilder_AddEqualsSkipsEmpty(t *testing.T) {
	wb := NewWhereBuilder().
		AddEquals(ColumnGroup, "").
		AddEquals(ColumnEventType, "Battles")

	whereClause, args := wb.Build()
	if whereClause != "event_type = ?" {
		t.Errorf("Expected %q, got %q", "event_type = ?", whereClause)
	}
	if len(args) != 1 || args[0] != "Battles" {
		t.Errorf("Unexpected args %v", args)
	}
}

func TestWhereBuilder_Combined(t *testing.T) {
	wb := NewWhereBuilder().
		AddYearRange(2000, 2001).
		AddBox(1, 2, 3, 4)

	whereClause, args := wb.BuildWithPrefix()
	expected := "WHERE year BETWEEN ? AND ? AND lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?"
	if whereClause != expected {
		t.Errorf("Expected %q, got %q", expected, whereClause)
	}
	if len(args) != 6 {
		t.Errorf("Expected 6 args, got %d", len(args))
	}
	if wb.Count() != 3 {
		t.Errorf("Expected count 3, got %d", wb.Count())
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{"(re.*gex)", "(re.*gex)"},
	}
	for _, tt := range tests {
		if got := EscapeLike(tt.in); got != tt.want {
			t.Errorf("EscapeLike(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.FilterSet
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "year range only",
			filter:   models.FilterSet{StartYear: 2020, EndYear: 2020},
			wantSQL:  "year BETWEEN ? AND ?",
			wantArgs: []interface{}{2020, 2020},
		},
		{
			name:     "all filters",
			filter:   models.FilterSet{StartYear: 2019, EndYear: 2021, Group: "G", EventType: "T"},
			wantSQL:  "year BETWEEN ? AND ? AND group_name = ? AND event_type = ?",
			wantArgs: []interface{}{2019, 2021, "G", "T"},
		},
		{
			name:     "type only",
			filter:   models.FilterSet{StartYear: 1, EndYear: 2, EventType: "T"},
			wantSQL:  "year BETWEEN ? AND ? AND event_type = ?",
			wantArgs: []interface{}{1, 2, "T"},
		},
		{
			name:     "reversed range passes through",
			filter:   models.FilterSet{StartYear: 2022, EndYear: 2020},
			wantSQL:  "year BETWEEN ? AND ?",
			wantArgs: []interface{}{2022, 2020},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BaseFilter(tt.filter)
			if p.SQL() != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", p.SQL(), tt.wantSQL)
			}
			if !reflect.DeepEqual(p.Args(), tt.wantArgs) {
				t.Errorf("Args = %v, want %v", p.Args(), tt.wantArgs)
			}
		})
	}
}

func TestBaseFilter_EmptyStringsEqualOmitted(t *testing.T) {
	withEmpty := BaseFilter(models.FilterSet{StartYear: 2000, EndYear: 2010, Group: "", EventType: ""})
	omitted := BaseFilter(models.FilterSet{StartYear: 2000, EndYear: 2010})

	if withEmpty.SQL() != omitted.SQL() || !reflect.DeepEqual(withEmpty.Args(), omitted.Args()) {
		t.Errorf("empty filters should equal omitted filters: %q vs %q", withEmpty.SQL(), omitted.SQL())
	}
}

func TestWithoutGroup(t *testing.T) {
	p := WithoutGroup(models.FilterSet{StartYear: 2019, EndYear: 2021, Group: "G", EventType: "T"})

	if p.SQL() != "year BETWEEN ? AND ? AND event_type = ?" {
		t.Errorf("unexpected SQL %q", p.SQL())
	}
	if !reflect.DeepEqual(p.Args(), []interface{}{2019, 2021, "T"}) {
		t.Errorf("unexpected args %v", p.Args())
	}
}

func TestPredicate_Immutable(t *testing.T) {
	base := BaseFilter(models.FilterSet{StartYear: 2019, EndYear: 2021, Group: "G"})
	baseSQL := base.SQL()
	baseArgs := base.Args()

	boxed := base.AndBox(models.Bounds{MinLat: 1, MaxLat: 2, MinLng: 3, MaxLng: 4})
	_ = base.And("fatalities > ?", 10)
	_ = base.AndILike(ColumnGroup, "mil")

	if base.SQL() != baseSQL {
		t.Errorf("base SQL mutated: %q", base.SQL())
	}
	if !reflect.DeepEqual(base.Args(), baseArgs) {
		t.Errorf("base args mutated: %v", base.Args())
	}

	wantSQL := "(year BETWEEN ? AND ? AND group_name = ?) AND (lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?)"
	if boxed.SQL() != wantSQL {
		t.Errorf("boxed SQL = %q, want %q", boxed.SQL(), wantSQL)
	}
	wantArgs := []interface{}{2019, 2021, "G", 1.0, 2.0, 3.0, 4.0}
	if !reflect.DeepEqual(boxed.Args(), wantArgs) {
		t.Errorf("boxed args = %v, want %v", boxed.Args(), wantArgs)
	}

	// Args returns a copy.
	args := boxed.Args()
	args[0] = 0
	if boxed.Args()[0] != 2019 {
		t.Error("Args should return a copy")
	}
}

func TestPredicate_AndILike(t *testing.T) {
	p := YearRange(2000, 2001).AndNotEmpty(ColumnGroup).AndILike(ColumnGroup, "10%_off")

	wantSQL := `((year BETWEEN ? AND ?) AND (group_name IS NOT NULL AND group_name <> '')) AND (group_name ILIKE ? ESCAPE '\')`
	if p.SQL() != wantSQL {
		t.Errorf("SQL = %q, want %q", p.SQL(), wantSQL)
	}
	wantArgs := []interface{}{2000, 2001, `%10\%\_off%`}
	if !reflect.DeepEqual(p.Args(), wantArgs) {
		t.Errorf("Args = %v, want %v", p.Args(), wantArgs)
	}
}

func TestPredicate_ZeroValue(t *testing.T) {
	var p Predicate
	if p.SQL() != "1=1" {
		t.Errorf("zero predicate SQL = %q", p.SQL())
	}
	q := p.And("x = ?", 1)
	if q.SQL() != "x = ?" {
		t.Errorf("And on zero predicate = %q", q.SQL())
	}
}
