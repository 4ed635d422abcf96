package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownCell indicates a symbol missing from the legend passed to ParseRunes.
	ErrUnknownCell = errors.New("gridgraph: unknown cell symbol")
	// ErrBadStep indicates a slope that never moves down the grid.
	ErrBadStep = errors.New("gridgraph: step must move at least one row down")
)
