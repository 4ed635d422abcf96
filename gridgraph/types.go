// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/aoc2020.
package gridgraph

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid (X unwrapped when WrapX is set)
	Value int // Grid value at (X mod Width, Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// WrapX repeats the grid infinitely to the right (and left): column x
	// resolves to x mod Width. Rows never wrap.
	WrapX bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), WrapX=false.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// WrapX and LandThreshold are set from GridOptions during construction.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
	WrapX         bool
}
