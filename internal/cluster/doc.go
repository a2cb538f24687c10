// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

/*
Package cluster implements adaptive grid clustering of point events.

The globe renders clusters at overview zoom levels and individual events on
drill-down. Clustering is a fixed-grid bin-and-summarize pass: each event is
assigned to a cell of side 10^-precision degrees, and each non-empty cell
becomes one Cluster carrying its member count, mean centroid and the true
extrema of its members.

Precision Selection:

	zoom < 5        -> 0  (1 degree cells)
	5 <= zoom < 8   -> 1  (0.1 degree cells)
	8 <= zoom < 11  -> 2  (0.01 degree cells)
	zoom >= 11      -> 3  (0.001 degree cells)

Bin Keys:

Bin keys truncate toward zero rather than flooring. An event at lat -0.5
shares the 0 bin with an event at lat 0.5 at precision 0. The DuckDB store uses
trunc() in SQL, and Aggregate uses math.Trunc, so both backends produce the
same cells.

Output Contract:

  - Sorted by count descending, ties by centroid lat then lon ascending
  - At most MaxClusters entries
  - Bounds are inclusive: a drill-down over a cluster's Bounds with the same
    filters returns exactly Count events

Aggregate is the in-process implementation used by the memory store and as a
reference for the SQL implementation in tests.
*/
package cluster
