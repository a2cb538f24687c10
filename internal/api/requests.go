// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Request structs carry go-playground/validator tags. Query parsing only
// converts strings to numbers; range and finiteness rules live in the tags.
//
//	req, err := parseClusterEventsRequest(r.URL.Query())
//	if err != nil {
//	    respondError(w, r, http.StatusBadRequest, msgClusterArgs, nil)
//	    return
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil { ... }
package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/conflictglobe/internal/cluster"
	"github.com/tomtom215/conflictglobe/internal/models"
)

const (
	// DefaultSearchLimit is the search_groups limit when none is given.
	DefaultSearchLimit = 20

	// DefaultClusterEventLimit is the events_in_cluster limit when none is given.
	DefaultClusterEventLimit = 100

	// MaxLimit caps the search_groups limit. Drill-down limits are uncapped.
	MaxLimit = 10000

	// MaxSearchTermLength caps the search term, in characters.
	MaxSearchTermLength = 200
)

var errMissingParam = errors.New("missing parameter")

// YearRangeRequest is shared by filter_options and summary.
type YearRangeRequest struct {
	StartYear int
	EndYear   int
}

// EventsRequest represents the query parameters for GET /api/events.
// CenterLat and CenterLng are validated when present but not applied.
type EventsRequest struct {
	StartYear       int
	EndYear         int
	ZoomLevel       float64  `validate:"finite"`
	CenterLat       *float64 `validate:"omitempty,finite"`
	CenterLng       *float64 `validate:"omitempty,finite"`
	GroupFilter     string
	EventTypeFilter string
}

// ClusterEventsRequest represents the query parameters for
// GET /api/events_in_cluster.
type ClusterEventsRequest struct {
	StartYear       int
	EndYear         int
	MinLat          float64 `validate:"finite"`
	MaxLat          float64 `validate:"finite"`
	MinLng          float64 `validate:"finite"`
	MaxLng          float64 `validate:"finite"`
	Limit           int     `validate:"gt=0"`
	GroupFilter     string
	EventTypeFilter string
}

// SearchGroupsRequest represents the query parameters for
// GET /api/search_groups.
type SearchGroupsRequest struct {
	Term      string `validate:"max=200"`
	StartYear int
	EndYear   int
	Limit     int `validate:"gt=0,max=10000"`
}

// Filter converts the request into the store filter set.
func (req *EventsRequest) Filter() models.FilterSet {
	return newFilterSet(req.StartYear, req.EndYear, req.GroupFilter, req.EventTypeFilter)
}

// Precision returns the grid precision for the requested zoom level.
func (req *EventsRequest) Precision() int {
	return cluster.SelectPrecision(req.ZoomLevel)
}

// Filter converts the request into the store filter set.
func (req *ClusterEventsRequest) Filter() models.FilterSet {
	return newFilterSet(req.StartYear, req.EndYear, req.GroupFilter, req.EventTypeFilter)
}

// Bounds returns the containment box.
func (req *ClusterEventsRequest) Bounds() models.Bounds {
	return models.Bounds{MinLat: req.MinLat, MaxLat: req.MaxLat, MinLng: req.MinLng, MaxLng: req.MaxLng}
}

// newFilterSet builds the store filter set. Filters match exactly, so only
// an empty value means no filter.
func newFilterSet(startYear, endYear int, group, eventType string) models.FilterSet {
	return models.FilterSet{
		StartYear: startYear,
		EndYear:   endYear,
		Group:     group,
		EventType: eventType,
	}
}

func parseYearRange(q url.Values) (YearRangeRequest, error) {
	start, err := requiredInt(q, "startYear")
	if err != nil {
		return YearRangeRequest{}, err
	}
	end, err := requiredInt(q, "endYear")
	if err != nil {
		return YearRangeRequest{}, err
	}
	return YearRangeRequest{StartYear: start, EndYear: end}, nil
}

// parseEventsRequest returns msgYearsInvalid, msgZoomInvalid or
// msgCenterInvalid as the client message on failure.
func parseEventsRequest(q url.Values) (EventsRequest, string, error) {
	years, err := parseYearRange(q)
	if err != nil {
		return EventsRequest{}, msgYearsInvalid, err
	}
	zoom, err := optionalFloat(q, "zoomLevel", cluster.DefaultZoom)
	if err != nil {
		return EventsRequest{}, msgZoomInvalid, err
	}
	centerLat, err := optionalFloatPtr(q, "centerLat")
	if err != nil {
		return EventsRequest{}, msgCenterInvalid, err
	}
	centerLng, err := optionalFloatPtr(q, "centerLng")
	if err != nil {
		return EventsRequest{}, msgCenterInvalid, err
	}

	// mapBounds is accepted and ignored.
	return EventsRequest{
		StartYear:       years.StartYear,
		EndYear:         years.EndYear,
		ZoomLevel:       zoom,
		CenterLat:       centerLat,
		CenterLng:       centerLng,
		GroupFilter:     q.Get("groupFilter"),
		EventTypeFilter: q.Get("eventTypeFilter"),
	}, "", nil
}

// parseClusterEventsRequest returns msgClusterArgs or msgLimitInvalid as the
// client message on failure.
func parseClusterEventsRequest(q url.Values) (ClusterEventsRequest, string, error) {
	req := ClusterEventsRequest{
		GroupFilter:     q.Get("groupFilter"),
		EventTypeFilter: q.Get("eventTypeFilter"),
	}

	years, err := parseYearRange(q)
	if err != nil {
		return req, msgClusterArgs, err
	}
	req.StartYear, req.EndYear = years.StartYear, years.EndYear

	for _, p := range []struct {
		key string
		dst *float64
	}{
		{"minLat", &req.MinLat},
		{"maxLat", &req.MaxLat},
		{"minLng", &req.MinLng},
		{"maxLng", &req.MaxLng},
	} {
		if *p.dst, err = requiredFloat(q, p.key); err != nil {
			return req, msgClusterArgs, err
		}
	}

	if req.Limit, err = optionalInt(q, "limit", DefaultClusterEventLimit); err != nil {
		return req, msgLimitInvalid, err
	}
	return req, "", nil
}

// parseSearchGroupsRequest returns msgSearchTermMissing, msgYearsRequired or
// msgLimitInvalid as the client message on failure.
func parseSearchGroupsRequest(q url.Values) (SearchGroupsRequest, string, error) {
	if _, ok := q["term"]; !ok {
		return SearchGroupsRequest{}, msgSearchTermMissing, fmt.Errorf("term: %w", errMissingParam)
	}
	years, err := parseYearRange(q)
	if err != nil {
		return SearchGroupsRequest{}, msgYearsRequired, err
	}
	limit, err := optionalInt(q, "limit", DefaultSearchLimit)
	if err != nil {
		return SearchGroupsRequest{}, msgLimitInvalid, err
	}
	return SearchGroupsRequest{
		Term:      q.Get("term"),
		StartYear: years.StartYear,
		EndYear:   years.EndYear,
		Limit:     limit,
	}, "", nil
}

// requiredInt parses a base-10 integer. Trailing garbage such as "2000abc"
// is rejected.
func requiredInt(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", key, errMissingParam)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func optionalInt(q url.Values, key string, def int) (int, error) {
	if strings.TrimSpace(q.Get(key)) == "" {
		return def, nil
	}
	return requiredInt(q, key)
}

// requiredFloat parses a float. NaN and Inf parse successfully here and are
// rejected by the "finite" validation tag.
func requiredFloat(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", key, errMissingParam)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func optionalFloat(q url.Values, key string, def float64) (float64, error) {
	if strings.TrimSpace(q.Get(key)) == "" {
		return def, nil
	}
	return requiredFloat(q, key)
}

func optionalFloatPtr(q url.Values, key string) (*float64, error) {
	if strings.TrimSpace(q.Get(key)) == "" {
		return nil, nil
	}
	v, err := requiredFloat(q, key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
