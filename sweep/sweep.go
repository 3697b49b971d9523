package sweep

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/pathcost/grid"
	"github.com/katalvlaran/pathcost/pathstate"
)

// Find computes the cheapest path through g and finalizes it against the
// configured threshold.
//
// Steps:
//  1. Apply options over DefaultOptions and validate them.
//  2. Best(g) runs the sweep.
//  3. The winner is finalized with Threshold and Truncate.
//
// A path over the threshold is a normal outcome (Success=false), not an error.
func Find(g *grid.Grid, opts ...Option) (pathstate.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	p, err := run(g, cfg)
	if err != nil {
		return pathstate.Result{}, err
	}

	return p.Finalize(cfg.Threshold, cfg.Truncate), nil
}

// Best runs the sweep and returns the unfinalized cheapest path.
// Only the Workers option affects it.
func Best(g *grid.Grid, opts ...Option) (*pathstate.Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return run(g, cfg)
}

func run(g *grid.Grid, cfg Options) (*pathstate.Path, error) {
	if cfg.Workers < 1 {
		return nil, ErrBadWorkers
	}
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, ErrEmptyGrid
	}

	c := g.Cols()
	if c == 1 {
		return SingleColumn(g.Column(0)), nil
	}

	// Rightmost pair first, then one fold per remaining column, right to left.
	paths, err := FoldPair(g.Column(c-2), g.Column(c-1))
	if err != nil {
		return nil, err
	}
	for col := c - 3; col >= 0; col-- {
		if paths, err = FoldWorkers(g.Column(col), paths, cfg.Workers); err != nil {
			return nil, err
		}
	}

	return cheapest(paths), nil
}

// SingleColumn returns the cheapest cell of col as a one-cell path.
// Ties go to the lowest row. Returns nil for an empty column.
func SingleColumn(col []grid.Cell) *pathstate.Path {
	if len(col) == 0 {
		return nil
	}
	low := col[0]
	for _, c := range col[1:] {
		if c.Cost < low.Cost {
			low = c
		}
	}

	return pathstate.New(low)
}

// FoldPair pairs every cell of left with its cheapest reachable cell in
// right, the last column of the grid. Each returned path has two cells.
// Returns ErrLengthMismatch if left and right differ in length.
func FoldPair(left, right []grid.Cell) ([]*pathstate.Path, error) {
	seeds := make([]*pathstate.Path, len(right))
	for i, c := range right {
		seeds[i] = pathstate.New(c)
	}

	return Fold(left, seeds)
}

// Fold extends the best continuation reachable from every row of left.
// right[i] must be the cheapest path from row i of the column immediately
// to the right of left.
//
// For row i the candidates are right[Above(i)], right[i] and right[Below(i)];
// the cheapest is extended with left[i]. Ties prefer above, then same,
// then below.
// Returns ErrLengthMismatch if len(left) != len(right) and ErrNilPath if
// right holds a nil path.
// Complexity: O(R).
func Fold(left []grid.Cell, right []*pathstate.Path) ([]*pathstate.Path, error) {
	if err := checkFold(left, right); err != nil {
		return nil, err
	}
	out := make([]*pathstate.Path, len(left))
	foldRange(left, right, out, 0, len(left))

	return out, nil
}

// FoldWorkers is Fold with rows split into contiguous chunks across up to
// workers goroutines. Each goroutine writes its own chunk of the output and
// only reads right, so the result equals Fold(left, right). Errors are
// those of Fold.
func FoldWorkers(left []grid.Cell, right []*pathstate.Path, workers int) ([]*pathstate.Path, error) {
	if err := checkFold(left, right); err != nil {
		return nil, err
	}
	n := len(left)
	if workers <= 1 || n < 2 {
		return Fold(left, right)
	}
	if workers > n {
		workers = n
	}

	out := make([]*pathstate.Path, n)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			foldRange(left, right, out, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return out, nil
}

func checkFold(left []grid.Cell, right []*pathstate.Path) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: left %d, right %d", ErrLengthMismatch, len(left), len(right))
	}
	for i, p := range right {
		if p == nil {
			return fmt.Errorf("%w: row %d", ErrNilPath, i)
		}
	}

	return nil
}

// foldRange fills out[lo:hi].
func foldRange(left []grid.Cell, right []*pathstate.Path, out []*pathstate.Path, lo, hi int) {
	n := len(left)
	for i := lo; i < hi; i++ {
		a, c := grid.Above(i, n), grid.Below(i, n)
		cost := left[i].Cost
		k := pick(right[a].TotalCost()+cost, right[i].TotalCost()+cost, right[c].TotalCost()+cost)
		next := right[i]
		switch k {
		case above:
			next = right[a]
		case below:
			next = right[c]
		}
		out[i] = next.Extend(left[i])
	}
}

type choice int

const (
	above choice = iota
	same
	below
)

// pick applies the tie-break priority above > same > below.
func pick(sumAbove, sumSame, sumBelow int) choice {
	if sumAbove <= sumSame && sumAbove <= sumBelow {
		return above
	}
	if sumSame <= sumBelow {
		return same
	}

	return below
}

// cheapest returns the path with the lowest total; ties go to the lowest row.
func cheapest(paths []*pathstate.Path) *pathstate.Path {
	var best *pathstate.Path
	for _, p := range paths {
		if best == nil || p.TotalCost() < best.TotalCost() {
			best = p
		}
	}

	return best
}
