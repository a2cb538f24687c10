// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package cluster

import (
	"fmt"
	"math"
	"testing"

	"github.com/tomtom215/conflictglobe/internal/models"
)

func TestSelectPrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		zoom float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{4.99, 0},
		{5, 1},
		{7.5, 1},
		{8, 2},
		{10.999, 2},
		{11, 3},
		{22, 3},
		{math.Inf(1), 3},
		{math.Inf(-1), 0},
		{math.NaN(), 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("zoom=%v", tt.zoom), func(t *testing.T) {
			t.Parallel()
			if got := SelectPrecision(tt.zoom); got != tt.want {
				t.Errorf("SelectPrecision(%v) = %d, want %d", tt.zoom, got, tt.want)
			}
		})
	}
}

func TestSelectPrecision_Monotonic(t *testing.T) {
	t.Parallel()

	prev := SelectPrecision(-10)
	for z := -10.0; z <= 25; z += 0.05 {
		p := SelectPrecision(z)
		if p < prev {
			t.Fatalf("precision decreased at zoom %v: %d < %d", z, p, prev)
		}
		if p < MinPrecision || p > MaxPrecision {
			t.Fatalf("precision %d out of range at zoom %v", p, z)
		}
		prev = p
	}
}

func TestKeyFor_TruncatesTowardZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		lat, lon  float64
		precision int
		want      BinKey
	}{
		{"positive", 10.7, 20.2, 0, BinKey{10, 20}},
		{"negative half", -0.5, 0.5, 0, BinKey{0, 0}},
		{"negative", -1.5, -20.9, 0, BinKey{-1, -20}},
		{"precision 1", 10.76, -20.24, 1, BinKey{107, -202}},
		{"precision 3", 1.23456, 7.65432, 3, BinKey{1234, 7654}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KeyFor(tt.lat, tt.lon, tt.precision); got != tt.want {
				t.Errorf("KeyFor(%v, %v, %d) = %+v, want %+v", tt.lat, tt.lon, tt.precision, got, tt.want)
			}
		})
	}
}

func TestRound4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{1.23456, 1.2346},
		{-1.23456, -1.2346},
		{-1.23444, -1.2344},
		{10, 10},
		// Rounding follows the binary product, as in DuckDB.
		{0.00015, 0.0001},
		{-0.00015, -0.0001},
		{2.00005, 2.0001},
		{0.00025, 0.0003},
		{math.MaxFloat64, math.MaxFloat64},
	}
	for _, tt := range tests {
		if got := Round4(tt.in); got != tt.want {
			t.Errorf("Round4(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAggregate_NearbyEventsFormOneCluster(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "a", Lat: 10.01, Lon: 20.01, Year: 2020},
		{ID: "b", Lat: 10.03, Lon: 20.04, Year: 2020},
		{ID: "c", Lat: 10.05, Lon: 20.02, Year: 2020},
	}

	clusters := Aggregate(events, SelectPrecision(4))
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Count != 3 {
		t.Errorf("Count = %d, want 3", c.Count)
	}
	if !c.IsCluster {
		t.Error("IsCluster should be true")
	}
	if c.Lat != 10.03 {
		t.Errorf("Lat = %v, want 10.03", c.Lat)
	}
	if c.Lon != Round4((20.01+20.04+20.02)/3) {
		t.Errorf("Lon = %v", c.Lon)
	}
	want := models.Bounds{MinLat: 10.01, MaxLat: 10.05, MinLng: 20.01, MaxLng: 20.04}
	if c.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", c.Bounds, want)
	}
}

func TestAggregate_BoundsContainAllMembers(t *testing.T) {
	t.Parallel()

	events := make([]models.Event, 0, 300)
	for i := 0; i < 300; i++ {
		events = append(events, models.Event{
			ID:  fmt.Sprintf("e%d", i),
			Lat: -30 + float64(i%37)*1.37,
			Lon: 100 - float64(i%53)*2.11,
		})
	}

	for p := MinPrecision; p <= MaxPrecision; p++ {
		clusters := Aggregate(events, p)
		if got := Total(clusters); got != len(events) {
			t.Errorf("precision %d: total = %d, want %d", p, got, len(events))
		}
		for _, c := range clusters {
			members := 0
			for _, ev := range events {
				if Contains(c.Bounds, ev.Lat, ev.Lon) {
					members++
				}
			}
			if members != c.Count {
				t.Errorf("precision %d: cluster at (%v,%v) has %d members in bounds, count %d", p, c.Lat, c.Lon, members, c.Count)
			}
		}
	}
}

func TestAggregate_SortedAndCapped(t *testing.T) {
	t.Parallel()

	events := make([]models.Event, 0, 2600)
	for i := 0; i < 2500; i++ {
		events = append(events, models.Event{
			ID:  fmt.Sprintf("e%d", i),
			Lat: float64(i/50) + 0.5,
			Lon: float64(i%50) + 0.5,
		})
	}
	// Make one cell heavier than the rest.
	for i := 0; i < 100; i++ {
		events = append(events, models.Event{ID: fmt.Sprintf("h%d", i), Lat: 45.5, Lon: 45.5})
	}

	clusters := Aggregate(events, 0)
	if len(clusters) != MaxClusters {
		t.Fatalf("len = %d, want %d", len(clusters), MaxClusters)
	}
	if clusters[0].Count != 101 {
		t.Errorf("first cluster count = %d, want 101", clusters[0].Count)
	}
	for i := 1; i < len(clusters); i++ {
		a, b := clusters[i-1], clusters[i]
		if a.Count < b.Count {
			t.Fatalf("not sorted by count at %d", i)
		}
		if a.Count == b.Count && (a.Lat > b.Lat || (a.Lat == b.Lat && a.Lon > b.Lon)) {
			t.Fatalf("tie not broken by lat/lon at %d", i)
		}
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	clusters := Aggregate(nil, 2)
	if clusters == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(clusters) != 0 {
		t.Errorf("len = %d, want 0", len(clusters))
	}
}

func TestAggregate_SkipsNonFinite(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: "ok", Lat: 1, Lon: 1},
		{ID: "nan", Lat: math.NaN(), Lon: 1},
		{ID: "inf", Lat: 1, Lon: math.Inf(1)},
	}
	clusters := Aggregate(events, 0)
	if Total(clusters) != 1 {
		t.Errorf("total = %d, want 1", Total(clusters))
	}
}

func TestContains_Inclusive(t *testing.T) {
	t.Parallel()

	b := models.Bounds{MinLat: 1, MaxLat: 2, MinLng: 3, MaxLng: 4}
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{1, 3, true},
		{2, 4, true},
		{1.5, 3.5, true},
		{0.999, 3, false},
		{1, 4.001, false},
	}
	for _, tt := range tests {
		if got := Contains(b, tt.lat, tt.lon); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
		}
	}

	zero := models.Bounds{}
	if Contains(zero, 0.0001, 0) {
		t.Error("degenerate box should only contain its point")
	}
	if !Contains(zero, 0, 0) {
		t.Error("degenerate box should contain (0,0)")
	}
}
