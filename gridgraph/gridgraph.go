// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Optional horizontal wrap (an infinitely repeating pattern)
//   - Straight-line walks along a slope
//   - Counting “land” cells met on such a walk
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
		WrapX:         opts.WrapX,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// ParseRunes builds a GridGraph from text rows, mapping each rune through legend.
// A rune missing from legend yields ErrUnknownCell with its position.
func ParseRunes(rows []string, legend map[rune]int, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range []rune(row) {
			v, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, r, x, y)
			}
			values[y] = append(values[y], v)
		}
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// With WrapX every column is in bounds.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	if y < 0 || y >= gg.Height {
		return false
	}

	return gg.WrapX || (x >= 0 && x < gg.Width)
}

// At returns the value stored at (x,y) and whether the cell exists.
func (gg *GridGraph) At(x, y int) (int, bool) {
	if !gg.InBounds(x, y) {
		return 0, false
	}

	return gg.CellValues[y][gg.column(x)], true
}

// IsLand reports whether (x,y) exists and holds a value ≥ LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	v, ok := gg.At(x, y)

	return ok && v >= gg.LandThreshold
}

// Walk returns the cells visited moving (dx,dy) per step from (0,0), starting
// cell included, until the next step leaves the grid.
// Returns ErrBadStep if dy < 1.
// Complexity: O(H/dy).
func (gg *GridGraph) Walk(dx, dy int) ([]Cell, error) {
	if dy < 1 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadStep, dx, dy)
	}
	cells := make([]Cell, 0, ceilDiv(gg.Height, dy))
	for x, y := 0, 0; gg.InBounds(x, y); x, y = x+dx, y+dy {
		cells = append(cells, Cell{X: x, Y: y, Value: gg.CellValues[y][gg.column(x)]})
	}

	return cells, nil
}

// CountAlong counts land cells on Walk(dx, dy).
func (gg *GridGraph) CountAlong(dx, dy int) (int, error) {
	cells, err := gg.Walk(dx, dy)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range cells {
		if c.Value >= gg.LandThreshold {
			n++
		}
	}

	return n, nil
}

// Index maps (x,y) to a row‑major index: y*Width + x, after wrapping x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + gg.column(x)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// column resolves x to a stored column, wrapping when WrapX is set.
func (gg *GridGraph) column(x int) int {
	if !gg.WrapX {
		return x
	}

	return floorMod(x, gg.Width)
}

// floorMod returns a mod m in [0, m) for positive m.
func floorMod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

func ceilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}
