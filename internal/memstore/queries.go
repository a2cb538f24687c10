// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package memstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/conflictglobe/internal/cluster"
	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// GetClusters bins the matching events at the given precision.
func (s *Store) GetClusters(ctx context.Context, filter models.FilterSet, precision int) ([]models.Cluster, error) {
	if precision < cluster.MinPrecision || precision > cluster.MaxPrecision {
		return nil, fmt.Errorf("%w: precision %d out of range", database.ErrInvalidArgument, precision)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	matching := make([]models.Event, 0, len(s.events))
	for i := range s.events {
		if matches(&s.events[i], filter) {
			matching = append(matching, s.events[i])
		}
	}
	clusters := cluster.Aggregate(matching, precision)

	s.log.LogQuery(ctx, "clusters", time.Since(start), len(clusters), nil)
	return clusters, nil
}

// GetEventsInBounds returns up to limit matching events inside the inclusive
// box, ordered by id.
func (s *Store) GetEventsInBounds(ctx context.Context, filter models.FilterSet, box models.Bounds, limit int) ([]models.Event, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", database.ErrInvalidArgument, limit)
	}
	if !box.IsFinite() {
		return nil, fmt.Errorf("%w: box coordinates must be finite", database.ErrInvalidArgument)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	events := []models.Event{}
	for _, pos := range s.index.candidates(box) {
		ev := &s.events[pos]
		if cluster.Contains(box, ev.Lat, ev.Lon) && matches(ev, filter) {
			events = append(events, *ev)
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	if len(events) > limit {
		events = events[:limit]
	}

	s.log.LogQuery(ctx, "events_in_bounds", time.Since(start), len(events), nil)
	return events, nil
}

// distinct returns the sorted, distinct, non-empty labels of events passing keep.
func (s *Store) distinct(label func(*models.Event) string, keep func(*models.Event) bool) []string {
	seen := make(map[string]struct{})
	for i := range s.events {
		ev := &s.events[i]
		if !keep(ev) {
			continue
		}
		if v := label(ev); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func groupOf(ev *models.Event) string { return ev.Group }
func typeOf(ev *models.Event) string  { return ev.Type }

func inYears(startYear, endYear int) func(*models.Event) bool {
	return func(ev *models.Event) bool {
		return ev.Year >= startYear && ev.Year <= endYear
	}
}

// GetFilterOptions lists distinct non-empty groups and event types in range.
func (s *Store) GetFilterOptions(ctx context.Context, startYear, endYear int) (models.FilterOptions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return models.FilterOptions{}, err
	}

	keep := inYears(startYear, endYear)
	return models.FilterOptions{
		Groups:     s.distinct(groupOf, keep),
		EventTypes: s.distinct(typeOf, keep),
	}, nil
}

// SearchGroups returns distinct groups in range containing term
// case-insensitively, sorted ascending and capped at limit.
func (s *Store) SearchGroups(ctx context.Context, term string, startYear, endYear, limit int) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", database.ErrInvalidArgument, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	years := inYears(startYear, endYear)
	groups := s.distinct(groupOf, func(ev *models.Event) bool {
		return years(ev) && strings.Contains(strings.ToLower(ev.Group), needle)
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// GetDataRange returns the min and max event year, or the default range when
// the store is empty.
func (s *Store) GetDataRange(ctx context.Context) (models.DataRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return models.DataRange{}, err
	}

	if len(s.events) == 0 {
		return models.DataRange{MinYear: models.DefaultMinYear, MaxYear: time.Now().Year()}, nil
	}
	dr := models.DataRange{MinYear: s.events[0].Year, MaxYear: s.events[0].Year}
	for i := range s.events {
		dr.MinYear = min(dr.MinYear, s.events[i].Year)
		dr.MaxYear = max(dr.MaxYear, s.events[i].Year)
	}
	return dr, nil
}

type labelCount struct {
	label string
	count int
}

// countBy tallies non-empty labels of matching events, ordered by count
// descending then label ascending.
func (s *Store) countBy(label func(*models.Event) string, filter models.FilterSet) []labelCount {
	counts := make(map[string]int)
	for i := range s.events {
		ev := &s.events[i]
		if !matches(ev, filter) {
			continue
		}
		if v := label(ev); v != "" {
			counts[v]++
		}
	}

	out := make([]labelCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, labelCount{label: k, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].label < out[j].label
	})
	return out
}

func (s *Store) countByYear(filter models.FilterSet) []models.YearCount {
	counts := make(map[int]int)
	for i := range s.events {
		if matches(&s.events[i], filter) {
			counts[s.events[i].Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearCount, len(years))
	for i, y := range years {
		out[i] = models.YearCount{Year: strconv.Itoa(y), Count: counts[y]}
	}
	return out
}

// GetSummary computes the chart aggregations concurrently over one consistent
// snapshot of the store.
func (s *Store) GetSummary(ctx context.Context, filter models.FilterSet) (models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.readable(ctx); err != nil {
		return models.Summary{}, err
	}

	start := time.Now()
	var (
		summary                         models.Summary
		byGroup, byTypeGlobal, selected []labelCount
	)

	var g errgroup.Group
	g.Go(func() error {
		summary.ByYear = s.countByYear(filter)
		return nil
	})
	g.Go(func() error {
		byGroup = s.countBy(groupOf, filter)
		return nil
	})
	g.Go(func() error {
		byTypeGlobal = s.countBy(typeOf, filter.WithoutGroup())
		return nil
	})
	if filter.HasGroup() {
		g.Go(func() error {
			selected = s.countBy(typeOf, filter)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Summary{}, err
	}

	summary.ByGroup = make([]models.GroupCount, len(byGroup))
	for i, lc := range byGroup {
		summary.ByGroup[i] = models.GroupCount{Group: lc.label, Count: lc.count}
	}
	summary.ByEventTypeGlobal = toTypeCounts(byTypeGlobal)
	if filter.HasGroup() {
		summary.EventTypeCountsForSelectedGroup = toTypeCounts(selected)
	}

	s.log.LogQuery(ctx, "summary", time.Since(start), len(summary.ByYear)+len(byGroup), nil)
	return summary, nil
}

func toTypeCounts(in []labelCount) []models.TypeCount {
	out := make([]models.TypeCount, len(in))
	for i, lc := range in {
		out[i] = models.TypeCount{Type: lc.label, Count: lc.count}
	}
	return out
}
