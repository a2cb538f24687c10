// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package eventimport loads the ETL's events.json into an event store.
//
// The ETL converts the ACLED CSV export into a JSON array of flat records:
//
//	[
//	  {"id": "SDN1234", "date": "2023-04-15", "year": 2023, "type": "Battles",
//	   "group": "Rapid Support Forces", "group1": "Rapid Support Forces",
//	   "group2": "Military Forces of Sudan", "location_name": "Khartoum",
//	   "lat": 15.5007, "lon": 32.5599, "description": "...", "fatalities": 12}
//	]
//
// # Architecture Integration
//
//	events.json
//	     ↓
//	Importer (this package, streaming decode in batches)
//	     ↓
//	database.EventWriter (DuckDB store or in-memory store)
//
// # Validation
//
// Records without an id, a finite lat/lon, or a year (given directly or
// derivable from the date) are skipped and counted. The group falls back to
// group1, and missing actor names default to "Unknown" as the ETL does.
//
// # Deduplication
//
// Both stores ignore ids they already hold, so importing the same file twice
// inserts nothing the second time. Duplicates are reported separately from
// invalid records.
package eventimport
