// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package memstore

import (
	"math"

	"github.com/tomtom215/conflictglobe/internal/models"
)

// defaultCellSize is the grid index cell edge in degrees.
const defaultCellSize = 1.0

// maxCellIndex bounds cell coordinates so that huge finite box edges such as
// 1e20 convert to int without overflow. Every event beyond the bound shares
// the edge cell, which box queries still reach.
const maxCellIndex = 1 << 40

// cellKey identifies one index cell.
type cellKey struct {
	X, Y int
}

// gridIndex divides the plane into fixed-size cells so box queries only
// visit cells that overlap the box instead of scanning every event.
//
// Time Complexity:
//   - Insert: O(1)
//   - Box query: O(c + k) where c = overlapped cells and k = their entries
//
// The index stores positions into the owning Store's event slice and is
// guarded by the Store's mutex.
type gridIndex struct {
	cellSize float64
	cells    map[cellKey][]int
}

func newGridIndex(cellSize float64) *gridIndex {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &gridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

// keyFor returns the cell containing a point.
func (g *gridIndex) keyFor(lat, lon float64) cellKey {
	return cellKey{
		X: g.cellIndex(lon),
		Y: g.cellIndex(lat),
	}
}

// cellIndex floors coord to a cell coordinate clamped to ±maxCellIndex.
func (g *gridIndex) cellIndex(coord float64) int {
	f := math.Floor(coord / g.cellSize)
	switch {
	case f > maxCellIndex:
		return maxCellIndex
	case f < -maxCellIndex:
		return -maxCellIndex
	}
	return int(f)
}

// insert records the event position pos at lat/lon.
func (g *gridIndex) insert(pos int, lat, lon float64) {
	key := g.keyFor(lat, lon)
	g.cells[key] = append(g.cells[key], pos)
}

// candidates returns the positions of every entry in cells overlapping the
// box. Callers must still test containment; cells overhang the box edges.
func (g *gridIndex) candidates(box models.Bounds) []int {
	lo := g.keyFor(box.MinLat, box.MinLng)
	hi := g.keyFor(box.MaxLat, box.MaxLng)
	if hi.X < lo.X || hi.Y < lo.Y {
		return nil
	}

	// Sparse data with a huge box: walking occupied cells is cheaper than
	// walking the box.
	span := float64(hi.X-lo.X+1) * float64(hi.Y-lo.Y+1)
	var out []int
	if span > float64(len(g.cells)) {
		for key, positions := range g.cells {
			if key.X >= lo.X && key.X <= hi.X && key.Y >= lo.Y && key.Y <= hi.Y {
				out = append(out, positions...)
			}
		}
		return out
	}

	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			out = append(out, g.cells[cellKey{X: x, Y: y}]...)
		}
	}
	return out
}

// numCells returns the number of non-empty cells.
func (g *gridIndex) numCells() int {
	return len(g.cells)
}
