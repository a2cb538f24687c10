// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package database

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// mockSeed fixes the generator so every seeded store holds the same events.
const mockSeed = 20240101

// mockRegion is a conflict hotspot used to place synthetic events.
type mockRegion struct {
	name   string
	lat    float64
	lon    float64
	spread float64 // degrees of jitter around the center
	groups []string
}

var mockRegions = []mockRegion{
	{"Khartoum", 15.5007, 32.5599, 1.5, []string{"Rapid Support Forces", "Military Forces of Sudan"}},
	{"Donetsk", 48.0159, 37.8029, 1.0, []string{"Military Forces of Russia", "Military Forces of Ukraine"}},
	{"Goma", -1.6792, 29.2228, 0.8, []string{"M23: March 23 Movement", "Military Forces of the Democratic Republic of Congo"}},
	{"Mogadishu", 2.0469, 45.3182, 1.2, []string{"Al Shabaab", "Military Forces of Somalia"}},
	{"Gao", 16.2666, -0.0440, 2.0, []string{"JNIM: Group for Support of Islam and Muslims", "Islamic State (Sahel)"}},
	{"Maiduguri", 11.8311, 13.1510, 1.0, []string{"Boko Haram", "Military Forces of Nigeria"}},
	{"Sanaa", 15.3694, 44.1910, 1.0, []string{"Houthis", "Military Forces of Yemen"}},
	{"Mandalay", 21.9588, 96.0891, 1.5, []string{"People's Defence Force", "Military Forces of Myanmar"}},
	{"Port-au-Prince", 18.5944, -72.3074, 0.3, []string{"Viv Ansanm", "Police Forces of Haiti"}},
	{"Culiacan", 24.8091, -107.3940, 0.5, []string{"Sinaloa Cartel", "Military Forces of Mexico"}},
}

var mockEventTypes = []string{
	"Battles",
	"Explosions/Remote violence",
	"Violence against civilians",
	"Protests",
	"Riots",
	"Strategic developments",
}

// GenerateMockEvents builds n deterministic synthetic events spread around
// real conflict regions between startYear and endYear inclusive.
func GenerateMockEvents(n, startYear, endYear int) []models.Event {
	if n <= 0 {
		return []models.Event{}
	}
	if endYear < startYear {
		startYear, endYear = endYear, startYear
	}

	rng := rand.New(rand.NewSource(mockSeed)) //nolint:gosec // synthetic data, not security sensitive
	events := make([]models.Event, n)
	for i := range events {
		region := mockRegions[rng.Intn(len(mockRegions))]
		year := startYear + rng.Intn(endYear-startYear+1)
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(28)
		group := region.groups[rng.Intn(len(region.groups))]
		eventType := mockEventTypes[rng.Intn(len(mockEventTypes))]

		events[i] = models.Event{
			ID:           fmt.Sprintf("MOCK%06d", i+1),
			Lat:          region.lat + (rng.Float64()*2-1)*region.spread,
			Lon:          region.lon + (rng.Float64()*2-1)*region.spread,
			Year:         year,
			Group:        group,
			Group1:       group,
			Group2:       "Civilians",
			Type:         eventType,
			Date:         fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Description:  fmt.Sprintf("Synthetic %s event near %s.", eventType, region.name),
			Fatalities:   rng.Intn(12),
			LocationName: region.name,
		}
	}
	return events
}

// SeedMockData inserts synthetic events for local development when the
// store is empty. It returns the number of events inserted.
func (db *DB) SeedMockData(ctx context.Context, n, startYear, endYear int) (int, error) {
	count, err := db.CountEvents(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted, err := db.InsertEvents(ctx, GenerateMockEvents(n, startYear, endYear))
	if err != nil {
		return 0, fmt.Errorf("failed to seed mock events: %w", err)
	}
	db.log.LogSeed(inserted)
	return inserted, nil
}
