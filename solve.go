package pathcost

import (
	"io"
	"strings"

	"github.com/katalvlaran/pathcost/grid"
	"github.com/katalvlaran/pathcost/pathstate"
	"github.com/katalvlaran/pathcost/sweep"
	"github.com/katalvlaran/pathcost/textgrid"
)

// Solve parses text, builds the grid and runs the sweep.
// Errors come from textgrid, grid or sweep and can be matched with errors.Is.
func Solve(text string, opts ...sweep.Option) (pathstate.Result, error) {
	return SolveReader(strings.NewReader(text), opts...)
}

// SolveReader is Solve over an io.Reader.
func SolveReader(r io.Reader, opts ...sweep.Option) (pathstate.Result, error) {
	table, err := textgrid.Parse(r)
	if err != nil {
		return pathstate.Result{}, err
	}
	g, err := grid.New(table)
	if err != nil {
		return pathstate.Result{}, err
	}

	return sweep.Find(g, opts...)
}
