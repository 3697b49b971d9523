// Package sweep finds the minimum-cost left-to-right path through a grid
// with a right-to-left dynamic-programming sweep.
//
// 🚀 Movement rule:
//
//	From (r, c) a path may step to (Above(r), c+1), (r, c+1) or
//	(Below(r), c+1). Row arithmetic wraps, so the first and the last row
//	are adjacent. A path visits every column exactly once.
//
// ✨ Algorithm:
//
//	The last column seeds one single-cell path per row. Each fold then
//	consumes the column to the left: for every row it picks the cheapest of
//	the three reachable continuations and extends it with the row's cell.
//	After the leftmost column, the cheapest row wins.
//
//	Ties between continuations are broken by a fixed priority:
//	above, then same row, then below. Ties between rows of the final fold go
//	to the lowest row index. The result is fully deterministic.
//
// ⚙️ Usage:
//
//	g, _ := grid.New(table)
//	res, err := sweep.Find(g, sweep.WithThreshold(50))
//	fmt.Println(res.Success, res.TotalCost, res.Rows())
//
// Performance:
//
//   - Time:   O(R·C)
//   - Memory: O(R·C) worst case for the shared path nodes, O(R) per fold.
//
// Errors:
//
//   - ErrEmptyGrid:  nil grid or a grid without rows or columns.
//   - ErrBadWorkers: WithWorkers was given a value below 1.
package sweep
