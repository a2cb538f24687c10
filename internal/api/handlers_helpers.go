// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/conflictglobe/internal/database"
	"github.com/tomtom215/conflictglobe/internal/logging"
	"github.com/tomtom215/conflictglobe/internal/models"
	"github.com/tomtom215/conflictglobe/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes v as JSON with an ETag. A matching If-None-Match turns
// a 200 into a bodiless 304.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		writeBody(w, r, data)
		return
	}

	etag := generateETag(data)
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("ETag", etag)

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	writeBody(w, r, data)
}

func writeBody(w http.ResponseWriter, r *http.Request, data []byte) {
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a strong ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// etagMatches implements the weak comparison used for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// respondError sends {"error": message}. err, when non-nil, is logged with
// the request and correlation IDs but never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.
			Int("status", status).
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(err.Error())).
			Msg(message)
	}

	respondJSON(w, r, status, models.ErrorResponse{Error: message})
}

// respondStoreError maps a store error to a status code. failure is the
// endpoint's generic 500 message; invalid is its 400 message.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, failure, invalid string) {
	switch {
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// Client went away; nobody reads the response.
		logging.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("Request canceled by client")
	case errors.Is(err, database.ErrStoreUnavailable):
		respondError(w, r, http.StatusServiceUnavailable, msgDatabaseNotConnected, err)
	case errors.Is(err, database.ErrInvalidArgument):
		respondError(w, r, http.StatusBadRequest, invalid, err)
	default:
		respondError(w, r, http.StatusInternalServerError, failure, err)
	}
}

// storeReady answers 503 when the handler was built without a store.
func (h *Handler) storeReady(w http.ResponseWriter, r *http.Request) bool {
	if h.store == nil {
		respondError(w, r, http.StatusServiceUnavailable, msgDatabaseNotConnected, nil)
		return false
	}
	return true
}

// limitMessage picks the client message for a failed Limit validation.
func limitMessage(verr *validation.RequestValidationError) string {
	for _, fe := range verr.Errors() {
		if fe.Field() == "Limit" && fe.Tag() == "max" {
			return fmt.Sprintf(msgLimitTooLarge, MaxLimit)
		}
	}
	return msgLimitInvalid
}
