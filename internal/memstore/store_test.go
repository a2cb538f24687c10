// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package memstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/conflictglobe/internal/cluster"
	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/models"
)

func fixtureEvents() []models.Event {
	return []models.Event{
		{ID: "E01", Lat: 10.01, Lon: 20.01, Year: 2019, Group: "Alpha Front", Type: "Battles"},
		{ID: "E02", Lat: 10.03, Lon: 20.02, Year: 2020, Group: "Alpha Front", Type: "Battles"},
		{ID: "E03", Lat: 10.05, Lon: 20.04, Year: 2020, Group: "Beta Militia", Type: "Riots"},
		{ID: "E04", Lat: -10.5, Lon: -20.5, Year: 2020, Group: "Beta Militia", Type: "Battles"},
		{ID: "E05", Lat: -10.7, Lon: -20.9, Year: 2021, Group: "", Type: "Protests"},
		{ID: "E06", Lat: 45.0, Lon: 90.0, Year: 2021, Group: "100% Rebels", Type: ""},
		{ID: "E07", Lat: 45.2, Lon: 90.1, Year: 2021, Group: "100 Rebels", Type: "Protests"},
		{ID: "E08", Lat: 0.5, Lon: 0.5, Year: 2022, Group: "A_B", Type: "Riots"},
		{ID: "E09", Lat: -0.5, Lon: -0.5, Year: 2022, Group: "AxB", Type: "Riots"},
	}
}

func newTestStore(t *testing.T, events []models.Event) *Store {
	t.Helper()
	s := New()
	n, err := s.InsertEvents(context.Background(), events)
	if err != nil {
		t.Fatalf("InsertEvents() error: %v", err)
	}
	if n != len(events) {
		t.Fatalf("InsertEvents() = %d, want %d", n, len(events))
	}
	return s
}

var allYears = models.FilterSet{StartYear: 1900, EndYear: 2100}

var allFixtureIDs = []string{"E01", "E02", "E03", "E04", "E05", "E06", "E07", "E08", "E09"}

func TestGetClusters_NearbyEventsShareCluster(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, []models.Event{
		{ID: "N1", Lat: 10.01, Lon: 20.01, Year: 2020},
		{ID: "N2", Lat: 10.03, Lon: 20.02, Year: 2020},
		{ID: "N3", Lat: 10.05, Lon: 20.04, Year: 2020},
	})

	clusters, err := s.GetClusters(context.Background(), models.FilterSet{StartYear: 2020, EndYear: 2020}, cluster.SelectPrecision(4))
	if err != nil {
		t.Fatalf("GetClusters() error: %v", err)
	}
	if len(clusters) != 1 || clusters[0].Count != 3 {
		t.Fatalf("clusters = %+v, want one cluster of 3", clusters)
	}
	want := models.Bounds{MinLat: 10.01, MaxLat: 10.05, MinLng: 20.01, MaxLng: 20.04}
	if clusters[0].Bounds != want {
		t.Errorf("bounds = %+v, want %+v", clusters[0].Bounds, want)
	}
}

func TestGetClusters_SumEqualsMatchingCount(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, database.GenerateMockEvents(500, 2015, 2022))
	ctx := context.Background()

	filters := []models.FilterSet{
		{StartYear: 2015, EndYear: 2022},
		{StartYear: 2018, EndYear: 2019, EventType: "Protests"},
		{StartYear: 2015, EndYear: 2022, Group: "Houthis"},
	}

	for _, filter := range filters {
		matching := 0
		for i := range s.events {
			if matches(&s.events[i], filter) {
				matching++
			}
		}
		for p := cluster.MinPrecision; p <= cluster.MaxPrecision; p++ {
			clusters, err := s.GetClusters(ctx, filter, p)
			if err != nil {
				t.Fatalf("GetClusters() error: %v", err)
			}
			if got := cluster.Total(clusters); got != matching {
				t.Errorf("filter %+v precision %d: sum %d, want %d", filter, p, got, matching)
			}
		}
	}
}

func TestGetClusters_BoundsRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, database.GenerateMockEvents(800, 2018, 2022))
	ctx := context.Background()
	filter := models.FilterSet{StartYear: 2019, EndYear: 2021, EventType: "Battles"}

	for p := cluster.MinPrecision; p <= cluster.MaxPrecision; p++ {
		clusters, err := s.GetClusters(ctx, filter, p)
		if err != nil {
			t.Fatalf("GetClusters() error: %v", err)
		}
		for _, c := range clusters {
			events, err := s.GetEventsInBounds(ctx, filter, c.Bounds, c.Count+50)
			if err != nil {
				t.Fatalf("GetEventsInBounds() error: %v", err)
			}
			if len(events) != c.Count {
				t.Fatalf("precision %d: drill-down %d events, cluster count %d", p, len(events), c.Count)
			}
		}
	}
}

func TestGetClusters_Cap(t *testing.T) {
	t.Parallel()

	events := make([]models.Event, 0, cluster.MaxClusters+1)
	for i := 0; i <= cluster.MaxClusters; i++ {
		events = append(events, models.Event{
			ID:   fmt.Sprintf("C%05d", i),
			Lat:  float64(i%80) + 0.5,
			Lon:  float64(i/80) + 0.5,
			Year: 2020,
		})
	}
	s := newTestStore(t, events)

	clusters, err := s.GetClusters(context.Background(), allYears, 0)
	if err != nil {
		t.Fatalf("GetClusters() error: %v", err)
	}
	if len(clusters) != cluster.MaxClusters {
		t.Errorf("got %d clusters, want %d", len(clusters), cluster.MaxClusters)
	}
}

func TestGetClusters_FilterEmptiness(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())

	for _, f := range []models.FilterSet{
		{StartYear: 2022, EndYear: 2019},
		{StartYear: 1800, EndYear: 1801},
		{StartYear: 2019, EndYear: 2022, EventType: "Nothing"},
	} {
		clusters, err := s.GetClusters(context.Background(), f, 2)
		if err != nil {
			t.Fatalf("GetClusters() error: %v", err)
		}
		if clusters == nil || len(clusters) != 0 {
			t.Errorf("filter %+v: got %#v, want empty non-nil", f, clusters)
		}
	}
}

func TestGetClusters_InvalidPrecision(t *testing.T) {
	t.Parallel()

	s := New()
	if _, err := s.GetClusters(context.Background(), allYears, 4); !errors.Is(err, database.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestGetEventsInBounds(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())
	world := models.Bounds{MinLat: -90, MaxLat: 90, MinLng: -180, MaxLng: 180}

	tests := []struct {
		name    string
		filter  models.FilterSet
		box     models.Bounds
		limit   int
		wantIDs []string
	}{
		{"inclusive edges", allYears, models.Bounds{MinLat: 10.01, MaxLat: 10.05, MinLng: 20.01, MaxLng: 20.04}, 10, []string{"E01", "E02", "E03"}},
		{"across zero", allYears, models.Bounds{MinLat: -1, MaxLat: 1, MinLng: -1, MaxLng: 1}, 10, []string{"E08", "E09"}},
		{"type filter", models.FilterSet{StartYear: 1900, EndYear: 2100, EventType: "Protests"}, world, 10, []string{"E05", "E07"}},
		{"limit", allYears, world, 3, []string{"E01", "E02", "E03"}},
		{"degenerate box", allYears, models.Bounds{}, 10, []string{}},
		{"inverted box", allYears, models.Bounds{MinLat: 50, MaxLat: 40, MinLng: 80, MaxLng: 100}, 10, []string{}},
		{"huge latitude span", allYears, models.Bounds{MinLat: -1e20, MaxLat: 1e20, MinLng: -180, MaxLng: 180}, 10, allFixtureIDs},
		{"huge longitude span", allYears, models.Bounds{MinLat: -90, MaxLat: 90, MinLng: -1e300, MaxLng: 1e300}, 10, allFixtureIDs},
		{"huge span one side", allYears, models.Bounds{MinLat: 40, MaxLat: 1e20, MinLng: 0, MaxLng: 1e20}, 10, []string{"E06", "E07"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			events, err := s.GetEventsInBounds(context.Background(), tt.filter, tt.box, tt.limit)
			if err != nil {
				t.Fatalf("GetEventsInBounds() error: %v", err)
			}
			ids := make([]string, len(events))
			for i := range events {
				ids[i] = events[i].ID
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestGetEventsInBounds_InvalidArguments(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	if _, err := s.GetEventsInBounds(ctx, allYears, models.Bounds{}, 0); !errors.Is(err, database.ErrInvalidArgument) {
		t.Errorf("limit 0: error = %v", err)
	}
	box := models.Bounds{MinLat: 0, MaxLat: math.Inf(1), MinLng: 0, MaxLng: 1}
	if _, err := s.GetEventsInBounds(ctx, allYears, box, 5); !errors.Is(err, database.ErrInvalidArgument) {
		t.Errorf("infinite box: error = %v", err)
	}
}

func TestInsertEvents_Idempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())

	n, err := s.InsertEvents(context.Background(), fixtureEvents())
	if err != nil {
		t.Fatalf("InsertEvents() error: %v", err)
	}
	if n != 0 || s.Len() != len(fixtureEvents()) {
		t.Errorf("re-import inserted %d (len %d), want 0 (len %d)", n, s.Len(), len(fixtureEvents()))
	}

	dup := []models.Event{{ID: "D", Lat: 1, Lon: 1, Year: 2020}, {ID: "D", Lat: 2, Lon: 2, Year: 2020}}
	if n, _ := s.InsertEvents(context.Background(), dup); n != 1 {
		t.Errorf("duplicate ids in one batch inserted %d, want 1", n)
	}
}

func TestInsertEvents_InvalidBatchLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	s := New()
	batch := []models.Event{{ID: "OK", Lat: 1, Lon: 1}, {ID: "", Lat: 1, Lon: 1}}
	if _, err := s.InsertEvents(context.Background(), batch); !errors.Is(err, database.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestGetSummary(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())
	summary, err := s.GetSummary(context.Background(), models.FilterSet{StartYear: 1900, EndYear: 2100, Group: "Beta Militia"})
	if err != nil {
		t.Fatalf("GetSummary() error: %v", err)
	}

	want := models.Summary{
		ByYear:  []models.YearCount{{Year: "2020", Count: 2}},
		ByGroup: []models.GroupCount{{Group: "Beta Militia", Count: 2}},
		ByEventTypeGlobal: []models.TypeCount{
			{Type: "Battles", Count: 3}, {Type: "Riots", Count: 3}, {Type: "Protests", Count: 2},
		},
		EventTypeCountsForSelectedGroup: []models.TypeCount{{Type: "Battles", Count: 1}, {Type: "Riots", Count: 1}},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("GetSummary() = %+v\nwant %+v", summary, want)
	}

	noGroup, err := s.GetSummary(context.Background(), allYears)
	if err != nil {
		t.Fatalf("GetSummary() error: %v", err)
	}
	if noGroup.EventTypeCountsForSelectedGroup != nil {
		t.Errorf("selected group counts present without group filter: %v", noGroup.EventTypeCountsForSelectedGroup)
	}
	if len(noGroup.ByYear) != 4 || noGroup.ByYear[0].Year != "2019" {
		t.Errorf("ByYear = %v, want 4 years ascending from 2019", noGroup.ByYear)
	}
}

func TestFacets(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())
	ctx := context.Background()

	opts, err := s.GetFilterOptions(ctx, 2021, 2021)
	if err != nil {
		t.Fatalf("GetFilterOptions() error: %v", err)
	}
	wantOpts := models.FilterOptions{Groups: []string{"100 Rebels", "100% Rebels"}, EventTypes: []string{"Protests"}}
	if !reflect.DeepEqual(opts, wantOpts) {
		t.Errorf("GetFilterOptions() = %v, want %v", opts, wantOpts)
	}

	searches := []struct {
		term  string
		limit int
		want  []string
	}{
		{"100%", 20, []string{"100% Rebels"}},
		{"a_b", 20, []string{"A_B"}},
		{"MILITIA", 20, []string{"Beta Militia"}},
		{"a", 2, []string{"A_B", "Alpha Front"}},
		{" \t", 20, []string{}},
	}
	for _, tt := range searches {
		got, err := s.SearchGroups(ctx, tt.term, 1900, 2100, tt.limit)
		if err != nil {
			t.Fatalf("SearchGroups(%q) error: %v", tt.term, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SearchGroups(%q) = %#v, want %#v", tt.term, got, tt.want)
		}
	}

	dr, err := s.GetDataRange(ctx)
	if err != nil {
		t.Fatalf("GetDataRange() error: %v", err)
	}
	if dr != (models.DataRange{MinYear: 2019, MaxYear: 2022}) {
		t.Errorf("GetDataRange() = %+v", dr)
	}
}

func TestGetDataRange_Empty(t *testing.T) {
	t.Parallel()

	dr, err := New().GetDataRange(context.Background())
	if err != nil {
		t.Fatalf("GetDataRange() error: %v", err)
	}
	if dr.MinYear != models.DefaultMinYear || dr.MaxYear != time.Now().Year() {
		t.Errorf("GetDataRange() = %+v, want default", dr)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	ctx := context.Background()
	if err := s.Ping(ctx); !errors.Is(err, database.ErrStoreUnavailable) {
		t.Errorf("Ping() = %v, want ErrStoreUnavailable", err)
	}
	if _, err := s.GetClusters(ctx, allYears, 0); !errors.Is(err, database.ErrStoreUnavailable) {
		t.Errorf("GetClusters() = %v, want ErrStoreUnavailable", err)
	}
	if _, err := s.InsertEvents(ctx, fixtureEvents()); !errors.Is(err, database.ErrStoreUnavailable) {
		t.Errorf("InsertEvents() = %v, want ErrStoreUnavailable", err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, fixtureEvents())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.GetSummary(ctx, allYears); !errors.Is(err, context.Canceled) {
		t.Errorf("GetSummary() = %v, want context.Canceled", err)
	}
}

func TestConcurrentReadsAndWrites(t *testing.T) {
	t.Parallel()

	s := New()
	events := database.GenerateMockEvents(400, 2018, 2022)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(batch []models.Event) {
			defer wg.Done()
			if _, err := s.InsertEvents(ctx, batch); err != nil {
				t.Errorf("InsertEvents() error: %v", err)
			}
		}(events[i*100 : (i+1)*100])
		go func() {
			defer wg.Done()
			if _, err := s.GetClusters(ctx, allYears, 1); err != nil {
				t.Errorf("GetClusters() error: %v", err)
			}
			if _, err := s.GetSummary(ctx, allYears); err != nil {
				t.Errorf("GetSummary() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if s.Len() != len(events) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(events))
	}
}
