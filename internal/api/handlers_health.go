// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/models"
)

// readinessTimeout bounds the store ping behind /api/health/ready.
const readinessTimeout = 2 * time.Second

// HealthLive reports that the process is serving HTTP.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondHealth(w, r, http.StatusOK, models.HealthStatus{Status: "ok"})
}

// HealthReady reports whether the event store answers a ping.
//
// @Summary Readiness probe
// @Description Returns 200 when the event store is reachable, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Failure 503 {object} models.HealthStatus
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondHealth(w, r, http.StatusServiceUnavailable, models.HealthStatus{
			Status: "unavailable",
			Detail: msgDatabaseNotConnected,
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.CtxErr(r.Context(), err).Str("backend", h.store.Backend()).Msg("Readiness check failed")
		respondHealth(w, r, http.StatusServiceUnavailable, models.HealthStatus{
			Status:  "unavailable",
			Backend: h.store.Backend(),
			Detail:  msgDatabaseNotConnected,
		})
		return
	}

	respondHealth(w, r, http.StatusOK, models.HealthStatus{
		Status:  "ready",
		Backend: h.store.Backend(),
	})
}

// respondHealth writes a probe response. Probes are never cached and carry
// no ETag, so every check sees the live status code.
func respondHealth(w http.ResponseWriter, r *http.Request, status int, body models.HealthStatus) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal health response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	writeBody(w, r, data)
}
