// Package grid holds the immutable cost grid walked by the sweep engine.
//
// What:
//
//   - Cell is a single (row, column, cost) point.
//   - Grid reorganizes a row-major [][]int table into columns of cells,
//     each cell tagged with its original coordinates.
//   - Above and Below implement circular row adjacency: the first and the
//     last row are neighbors.
//
// Why:
//
//   - The sweep consumes the grid one column at a time, right to left, so a
//     column-major layout keeps every fold step a plain slice walk.
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - Column:       O(R).
//   - Above, Below: O(1).
//
// Errors:
//
//   - ErrMalformedInput: the table is empty, has an empty row, is ragged, or
//     holds a cost beyond CostLimit, which would overflow a path total.
//   - ErrOutOfRange:     At was called with coordinates outside the grid.
package grid
