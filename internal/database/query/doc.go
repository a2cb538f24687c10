// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

// Package query provides SQL query building utilities for the database package.
//
// # Overview
//
// Two layers are provided. WhereBuilder is the mutable, fluent assembly
// primitive. Predicate is an immutable value produced from it and is what the
// event queries pass around:
//
//	base := query.BaseFilter(models.FilterSet{
//	    StartYear: 2019, EndYear: 2021, Group: "Militia X",
//	})
//	// base.SQL():  "year BETWEEN ? AND ? AND group_name = ?"
//	// base.Args(): [2019, 2021, "Militia X"]
//
//	box := base.AndBox(cluster.Bounds)
//	// "(year BETWEEN ? AND ? AND group_name = ?) AND (lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?)"
//
// # Filter Semantics
//
//   - The year range is always applied and is inclusive on both ends
//   - Empty group or event type filters are omitted, never matched literally
//   - WithoutGroup drops the group filter for the global type distribution
//   - Boxes are inclusive on all four edges
//
// # SQL Injection Prevention
//
// All values are bound through ? placeholders. Column names come from the
// Column constants only. ILIKE terms are escaped with EscapeLike so user
// input containing % or _ is matched literally.
//
// # Thread Safety
//
// WhereBuilder instances are not thread-safe. Predicate values are immutable
// and safe to share between goroutines.
package query
