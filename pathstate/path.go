package pathstate

import "github.com/katalvlaran/pathcost/grid"

// Path is an immutable, structurally shared sequence of cells.
// The zero value is not usable; build paths with New and Extend.
type Path struct {
	cell  grid.Cell
	next  *Path // continuation one column to the right, nil at the right edge
	total int   // cost of cell plus next.total
	steps int
}

// New starts a path from its rightmost cell.
func New(seed grid.Cell) *Path {
	return &Path{cell: seed, total: seed.Cost, steps: 1}
}

// Extend returns a new path with c prepended on the left.
// The receiver stays valid and unchanged.
// Complexity: O(1).
func (p *Path) Extend(c grid.Cell) *Path {
	return &Path{cell: c, next: p, total: p.total + c.Cost, steps: p.steps + 1}
}

// Head returns the leftmost cell.
func (p *Path) Head() grid.Cell {
	return p.cell
}

// Next returns the continuation to the right of the head, nil at the end.
func (p *Path) Next() *Path {
	return p.next
}

// TotalCost returns the sum of all cell costs on the path.
func (p *Path) TotalCost() int {
	return p.total
}

// Len returns the number of cells, one per folded column.
func (p *Path) Len() int {
	return p.steps
}

// Cells returns the cells in left-to-right order.
// Complexity: O(Len).
func (p *Path) Cells() []grid.Cell {
	out := make([]grid.Cell, 0, p.steps)
	for n := p; n != nil; n = n.next {
		out = append(out, n.cell)
	}

	return out
}
