// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/conflictglobe/internal/metrics"
	"github.com/tomtom215/conflictglobe/internal/validation"
)

// Events returns grid clusters for the globe.
//
// @Summary Get event clusters
// @Description Bins events matching the filters into a lat/lon grid whose precision follows the zoom level. Each cluster carries its member count, mean centroid and the tight bounding box of its members. At most 2000 clusters are returned, largest first.
// @Tags Events
// @Produce json
// @Param startYear query int true "First year, inclusive"
// @Param endYear query int true "Last year, inclusive"
// @Param zoomLevel query number false "Globe zoom level" default(5)
// @Param groupFilter query string false "Exact group name"
// @Param eventTypeFilter query string false "Exact event type"
// @Param centerLat query number false "View center latitude (validated, not applied)"
// @Param centerLng query number false "View center longitude (validated, not applied)"
// @Param mapBounds query string false "Ignored"
// @Success 200 {array} models.Cluster
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /events [get]
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	req, msg, err := parseEventsRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, msg, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		msg := msgZoomInvalid
		if verr.HasField("CenterLat") || verr.HasField("CenterLng") {
			msg = msgCenterInvalid
		}
		respondError(w, r, http.StatusBadRequest, msg, verr)
		return
	}

	precision := req.Precision()
	clusters, err := h.store.GetClusters(r.Context(), req.Filter(), precision)
	if err != nil {
		respondStoreError(w, r, err, msgEventsFailed, msgYearsInvalid)
		return
	}

	metrics.RecordClustersReturned(strconv.Itoa(precision), len(clusters))
	respondJSON(w, r, http.StatusOK, clusters)
}

// EventsInCluster returns the events inside a cluster's bounding box.
//
// @Summary Drill down into a cluster
// @Description Returns individual events whose coordinates fall inside the inclusive box and match the filters. Passing a cluster's bounds with the filters used to fetch it returns exactly that cluster's members (up to limit).
// @Tags Events
// @Produce json
// @Param startYear query int true "First year, inclusive"
// @Param endYear query int true "Last year, inclusive"
// @Param minLat query number true "Box minimum latitude"
// @Param maxLat query number true "Box maximum latitude"
// @Param minLng query number true "Box minimum longitude"
// @Param maxLng query number true "Box maximum longitude"
// @Param limit query int false "Maximum events" default(100) minimum(1)
// @Param groupFilter query string false "Exact group name"
// @Param eventTypeFilter query string false "Exact event type"
// @Success 200 {array} models.Event
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /events_in_cluster [get]
func (h *Handler) EventsInCluster(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w, r) {
		return
	}

	req, msg, err := parseClusterEventsRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, msg, err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		msg := msgClusterArgs
		if verr.HasField("Limit") {
			msg = limitMessage(verr)
		}
		respondError(w, r, http.StatusBadRequest, msg, verr)
		return
	}

	events, err := h.store.GetEventsInBounds(r.Context(), req.Filter(), req.Bounds(), req.Limit)
	if err != nil {
		respondStoreError(w, r, err, msgClusterEventsFailed, msgClusterArgs)
		return
	}

	respondJSON(w, r, http.StatusOK, events)
}
