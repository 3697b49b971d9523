package grid

import "errors"

// Sentinel errors for grid construction and lookups.
var (
	// ErrMalformedInput indicates an empty or non-rectangular input table, or
	// a cost too large for path totals to fit in an int.
	ErrMalformedInput = errors.New("grid: input table must be non-empty and rectangular")
	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// Cell is a single grid point with its original coordinates and cost.
type Cell struct {
	Row, Col int // position within the input table
	Cost     int // cost of stepping onto this cell, may be negative
}

// Grid is a column-major view of a rectangular cost table.
// It is immutable once built: every accessor hands out copies.
type Grid struct {
	rows, cols int
	columns    [][]Cell // columns[c][r]
}
