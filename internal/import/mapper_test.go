// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package eventimport

import (
	"math"
	"testing"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestToEvent(t *testing.T) {
	t.Parallel()

	t.Run("converts core fields", func(t *testing.T) {
		rec := Record{
			ID: " SDN1 ", Date: "2023-04-15", Year: intPtr(2023), Type: "Battles",
			Group1: "Rapid Support Forces", Group2: "Military Forces of Sudan",
			LocationName: "Khartoum", Lat: floatPtr(15.5), Lon: floatPtr(32.56),
			Description: "Clashes.", Fatalities: 12,
		}
		ev, ok := ToEvent(&rec)
		if !ok {
			t.Fatal("ToEvent() rejected a valid record")
		}
		if ev.ID != "SDN1" {
			t.Errorf("ID = %q, want trimmed SDN1", ev.ID)
		}
		if ev.Group != "Rapid Support Forces" {
			t.Errorf("Group = %q, want fallback to group1", ev.Group)
		}
		if ev.Year != 2023 || ev.Lat != 15.5 || ev.Lon != 32.56 || ev.Fatalities != 12 {
			t.Errorf("unexpected event %+v", ev)
		}
		if ev.IsCluster {
			t.Error("imported events must not be clusters")
		}
	})

	t.Run("explicit group wins over group1", func(t *testing.T) {
		rec := Record{ID: "X", Year: intPtr(2020), Group: "Primary", Group1: "Other", Lat: floatPtr(1), Lon: floatPtr(1)}
		ev, _ := ToEvent(&rec)
		if ev.Group != "Primary" {
			t.Errorf("Group = %q, want Primary", ev.Group)
		}
	})

	t.Run("missing actors default to Unknown", func(t *testing.T) {
		rec := Record{ID: "X", Year: intPtr(2020), Group1: "  ", Group2: "NaN", Lat: floatPtr(1), Lon: floatPtr(1)}
		ev, _ := ToEvent(&rec)
		if ev.Group1 != UnknownActor || ev.Group2 != UnknownActor || ev.Group != UnknownActor {
			t.Errorf("actors = %q/%q/%q, want Unknown", ev.Group, ev.Group1, ev.Group2)
		}
	})

	t.Run("year derived from date", func(t *testing.T) {
		rec := Record{ID: "X", Date: "2019-12-31", Lat: floatPtr(1), Lon: floatPtr(1)}
		ev, ok := ToEvent(&rec)
		if !ok || ev.Year != 2019 {
			t.Errorf("ToEvent() = %+v, %v; want year 2019", ev, ok)
		}
	})

	t.Run("negative fatalities clamp to zero", func(t *testing.T) {
		rec := Record{ID: "X", Year: intPtr(2020), Lat: floatPtr(1), Lon: floatPtr(1), Fatalities: -3}
		ev, _ := ToEvent(&rec)
		if ev.Fatalities != 0 {
			t.Errorf("Fatalities = %d, want 0", ev.Fatalities)
		}
	})
}

func TestToEvent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  Record
	}{
		{"missing id", Record{Year: intPtr(2020), Lat: floatPtr(1), Lon: floatPtr(1)}},
		{"blank id", Record{ID: "  ", Year: intPtr(2020), Lat: floatPtr(1), Lon: floatPtr(1)}},
		{"missing lat", Record{ID: "X", Year: intPtr(2020), Lon: floatPtr(1)}},
		{"missing lon", Record{ID: "X", Year: intPtr(2020), Lat: floatPtr(1)}},
		{"infinite lat", Record{ID: "X", Year: intPtr(2020), Lat: floatPtr(math.Inf(1)), Lon: floatPtr(1)}},
		{"no year and no date", Record{ID: "X", Lat: floatPtr(1), Lon: floatPtr(1)}},
		{"unparseable date", Record{ID: "X", Date: "15/04/2023", Lat: floatPtr(1), Lon: floatPtr(1)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, ok := ToEvent(&tt.rec); ok {
				t.Errorf("ToEvent() accepted %+v", tt.rec)
			}
		})
	}
}
