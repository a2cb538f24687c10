// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package eventimport

import (
	"strconv"
	"strings"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// UnknownActor replaces missing actor names.
const UnknownActor = "Unknown"

// ToEvent converts a record to an event. It returns false when the record
// lacks an id, a finite location or a year.
func ToEvent(rec *Record) (models.Event, bool) {
	id := strings.TrimSpace(rec.ID)
	if id == "" || rec.Lat == nil || rec.Lon == nil {
		return models.Event{}, false
	}

	year, ok := recordYear(rec)
	if !ok {
		return models.Event{}, false
	}

	group1 := actorName(rec.Group1)
	group := strings.TrimSpace(rec.Group)
	if group == "" {
		group = group1
	}

	ev := models.Event{
		ID:           id,
		Lat:          *rec.Lat,
		Lon:          *rec.Lon,
		Year:         year,
		Group:        group,
		Type:         strings.TrimSpace(rec.Type),
		Date:         strings.TrimSpace(rec.Date),
		Description:  rec.Description,
		Fatalities:   max(rec.Fatalities, 0),
		LocationName: strings.TrimSpace(rec.LocationName),
		Group1:       group1,
		Group2:       actorName(rec.Group2),
	}
	if !ev.HasValidLocation() {
		return models.Event{}, false
	}
	return ev, true
}

// recordYear returns the explicit year, or the year prefix of a
// YYYY-MM-DD date.
func recordYear(rec *Record) (int, bool) {
	if rec.Year != nil {
		return *rec.Year, true
	}
	date := strings.TrimSpace(rec.Date)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

func actorName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "nan") {
		return UnknownActor
	}
	return name
}
