// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package validation

import (
	"math"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type boxRequest struct {
	MinLat    float64 `validate:"finite"`
	MaxLat    float64 `validate:"finite"`
	StartYear int     `validate:"gte=0"`
	Limit     int     `validate:"gt=0,max=10000"`
	Term      string  `validate:"max=200"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input boxRequest
	}{
		{"typical", boxRequest{MinLat: -10.5, MaxLat: 12, StartYear: 2020, Limit: 100}},
		{"degenerate box", boxRequest{Limit: 1}},
		{"upper limit", boxRequest{Limit: 10000, Term: strings.Repeat("a", 200)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     boxRequest
		wantField string
		wantTag   string
	}{
		{"NaN latitude", boxRequest{MinLat: math.NaN(), Limit: 1}, "MinLat", "finite"},
		{"infinite latitude", boxRequest{MaxLat: math.Inf(1), Limit: 1}, "MaxLat", "finite"},
		{"zero limit", boxRequest{Limit: 0}, "Limit", "gt"},
		{"negative limit", boxRequest{Limit: -5}, "Limit", "gt"},
		{"limit too high", boxRequest{Limit: 10001}, "Limit", "max"},
		{"negative year", boxRequest{StartYear: -1, Limit: 1}, "StartYear", "gte"},
		{"term too long", boxRequest{Limit: 1, Term: strings.Repeat("x", 201)}, "Term", "max"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}
			if !verr.HasField(tt.wantField) {
				t.Errorf("expected error on field %s, got: %v", tt.wantField, verr)
			}

			found := false
			for _, e := range verr.Errors() {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected tag %s on %s, got: %v", tt.wantTag, tt.wantField, verr.Errors())
			}
		})
	}
}

func TestRequestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&boxRequest{MinLat: math.NaN(), Limit: 0})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(verr.Errors()), verr)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("combined message should join errors: %q", verr.Error())
	}
	if verr.HasField("Term") {
		t.Error("HasField(Term) should be false")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input boxRequest
		want  string
	}{
		{boxRequest{MinLat: math.NaN(), Limit: 1}, "MinLat must be a finite number"},
		{boxRequest{Limit: 0}, "Limit must be greater than 0"},
		{boxRequest{Limit: 20000}, "Limit must be at most 10000"},
		{boxRequest{Limit: 1, Term: strings.Repeat("x", 201)}, "Term must be at most 200 characters"},
	}

	for _, tt := range tests {
		verr := ValidateStruct(&tt.input)
		if verr == nil {
			t.Fatalf("expected error for %+v", tt.input)
		}
		if got := verr.Errors()[0].Error(); got != tt.want {
			t.Errorf("message = %q, want %q", got, tt.want)
		}
	}
}

func TestValidateFinite_IgnoresNonFloat(t *testing.T) {
	t.Parallel()

	type wrapped struct {
		Name string `validate:"finite"`
	}
	if err := ValidateStruct(&wrapped{Name: "NaN"}); err != nil {
		t.Errorf("finite should ignore non-float fields: %v", err)
	}
}
