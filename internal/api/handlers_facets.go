// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/conflictglobe/internal/validation"
)

// DataRange returns the min and max event year.
//
// @Summary Get data year range
// @Description Returns the earliest and latest event year. An empty store reports 1990 to the current year.
// @Tags Config
// @Produce json
// @Success 200 {object} models.DataRange
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /config/datarange [get]
func (h *Handler) DataRange(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	dr, err := h.store.GetDataRange(r.Context())
	if err != nil {
		respondStoreError(w, r, err, msgDataRangeFailed, msgDataRangeFailed)
		return
	}
	respondJSON(w, r, http.StatusOK, dr)
}

// FilterOptions returns the distinct groups and event types in a year range.
//
// @Summary Get filter options
// @Description Returns alphabetically sorted distinct group names and event types of events within the year range. Blank values are excluded.
// @Tags Filters
// @Produce json
// @Param startYear query int true "First year, inclusive"
// @Param endYear query int true "Last year, inclusive"
// @Success 200 {object} models.FilterOptions
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /filter_options [get]
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	years, err := parseYearRange(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, msgYearsRequired, err)
		return
	}

	opts, err := h.store.GetFilterOptions(r.Context(), years.StartYear, years.EndYear)
	if err != nil {
		respondStoreError(w, r, err, msgFilterOptionsFailed, msgYearsRequired)
		return
	}
	respondJSON(w, r, http.StatusOK, opts)
}

// SearchGroups performs a case-insensitive substring search over group names.
//
// @Summary Search groups
// @Description Returns group names within the year range containing term, case-insensitively, sorted alphabetically. A blank term returns an empty list.
// @Tags Filters
// @Produce json
// @Param term query string true "Substring to search for" maxlength(200)
// @Param startYear query int true "First year, inclusive"
// @Param endYear query int true "Last year, inclusive"
// @Param limit query int false "Maximum names" default(20) minimum(1) maximum(10000)
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /search_groups [get]
func (h *Handler) SearchGroups(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	req, msg, err := parseSearchGroupsRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, msg, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		msg := limitMessage(verr)
		if verr.HasField("Term") {
			msg = fmt.Sprintf(msgSearchTermTooLong, MaxSearchTermLength)
		}
		respondError(w, r, http.StatusBadRequest, msg, verr)
		return
	}

	groups, err := h.store.SearchGroups(r.Context(), req.Term, req.StartYear, req.EndYear, req.Limit)
	if err != nil {
		respondStoreError(w, r, err, msgSearchGroupsFailed, msgLimitInvalid)
		return
	}
	respondJSON(w, r, http.StatusOK, groups)
}

// Summary returns the dashboard chart counts.
//
// @Summary Get event summary
// @Description Returns counts by year (ascending), by group and by event type (descending). byEventTypeGlobal ignores groupFilter. eventTypeCountsForSelectedGroup is present only when groupFilter is set.
// @Tags Events
// @Produce json
// @Param startYear query int true "First year, inclusive"
// @Param endYear query int true "Last year, inclusive"
// @Param groupFilter query string false "Exact group name"
// @Param eventTypeFilter query string false "Exact event type"
// @Success 200 {object} models.Summary
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /events/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	q := r.URL.Query()
	years, err := parseYearRange(q)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, msgYearsRequired, err)
		return
	}

	filter := newFilterSet(years.StartYear, years.EndYear, q.Get("groupFilter"), q.Get("eventTypeFilter"))
	summary, err := h.store.GetSummary(r.Context(), filter)
	if err != nil {
		respondStoreError(w, r, err, msgSummaryFailed, msgYearsRequired)
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}
