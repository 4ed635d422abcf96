// Package gridgraph treats a 2D grid of cells as a graph, enabling
// slope walks over a map that may repeat horizontally.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - WrapX makes column x resolve to x mod Width, so the map repeats forever
//     to the right.
//   - Walk follows a straight slope (dx,dy) from the top-left corner until it
//     falls past the bottom row; CountAlong counts the land cells met.
//   - ParseRunes turns text rows into cell values through a legend.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - Walk, CountAlong: O(H/dy), Memory: O(H/dy).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.WrapX: repeat columns horizontally.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: ParseRunes met a symbol outside its legend.
//   - ErrBadStep: a slope with dy < 1.
package gridgraph
