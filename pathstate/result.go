package pathstate

import "github.com/katalvlaran/pathcost/grid"

// Result is a finalized path ready for reporting.
//
// Success is true only when the whole path was kept and its total does not
// exceed the threshold. Complete is false when the path was cut short.
type Result struct {
	Cells     []grid.Cell
	TotalCost int
	Success   bool
	Complete  bool
}

// Finalize judges p against threshold.
//
//  1. Total within threshold → the whole path, Success and Complete.
//  2. Over threshold, truncate=false → the whole path, not successful.
//  3. Over threshold, truncate=true → the prefix up to, but excluding, the
//     first cell whose cost would push the running total over threshold.
//     The prefix may be empty when the first cell alone is too expensive.
//
// A nil path finalizes to an empty, unsuccessful result.
func (p *Path) Finalize(threshold int, truncate bool) Result {
	if p == nil {
		return Result{Cells: []grid.Cell{}}
	}
	cells := p.Cells()
	if p.total <= threshold {
		return Result{Cells: cells, TotalCost: p.total, Success: true, Complete: true}
	}
	if !truncate {
		return Result{Cells: cells, TotalCost: p.total, Complete: true}
	}

	sum, keep := 0, 0
	for _, c := range cells {
		if sum+c.Cost > threshold {
			break
		}
		sum += c.Cost
		keep++
	}

	return Result{Cells: cells[:keep:keep], TotalCost: sum}
}

// Rows returns the row index of each cell, left to right.
func (r Result) Rows() []int {
	out := make([]int, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Row
	}

	return out
}
