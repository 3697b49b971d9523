package grid

import (
	"fmt"
	"math"
)

// New builds a Grid from a non-empty, rectangular, row-major table.
// The input is copied, so later changes to table do not leak into the Grid.
// Returns ErrMalformedInput if table has no rows, a row is empty,
// any row length differs from the first, or a cost lies outside ±CostLimit(C),
// where C is the column count.
// Complexity: O(R×C) time and memory.
func New(table [][]int) (*Grid, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}
	h, w := len(table), len(table[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrMalformedInput)
	}
	for r, row := range table {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformedInput, r, len(row), w)
		}
	}

	limit := CostLimit(w)
	for r, row := range table {
		for c, v := range row {
			if v > limit || v < -limit {
				return nil, fmt.Errorf("%w: cost %d at (%d,%d) exceeds ±%d", ErrMalformedInput, v, r, c, limit)
			}
		}
	}

	columns := make([][]Cell, w)
	for c := 0; c < w; c++ {
		col := make([]Cell, h)
		for r := 0; r < h; r++ {
			col[r] = Cell{Row: r, Col: c, Cost: table[r][c]}
		}
		columns[c] = col
	}

	return &Grid{rows: h, cols: w, columns: columns}, nil
}

// CostLimit returns the largest cost magnitude accepted for a grid with cols
// columns. Any path total, and any candidate total during a fold, then fits
// in an int.
func CostLimit(cols int) int {
	if cols < 1 {
		cols = 1
	}

	return math.MaxInt / (cols + 1)
}

// Rows returns the number of rows (the height of every column).
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns, which is also the length of every path.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Column returns a copy of column c ordered by row.
// It returns nil when c is out of range.
func (g *Grid) Column(c int) []Cell {
	if c < 0 || c >= g.Cols() {
		return nil
	}
	out := make([]Cell, g.rows)
	copy(out, g.columns[c])

	return out
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) (Cell, error) {
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}

	return g.columns[col][row], nil
}

// Table returns the grid back in its original row-major form.
func (g *Grid) Table() [][]int {
	out := make([][]int, g.Rows())
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = g.columns[c][r].Cost
		}
	}

	return out
}

// Above returns the row reached by stepping "up" from row in a grid of n rows.
// The last row wraps to row 0. n must be ≥ 1.
// Complexity: O(1).
func Above(row, n int) int {
	return (row + 1) % n
}

// Below returns the row reached by stepping "down" from row in a grid of n rows.
// Row 0 wraps to the last row. n must be ≥ 1.
// Complexity: O(1).
func Below(row, n int) int {
	return (row - 1 + n) % n
}
