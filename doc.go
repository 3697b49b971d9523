// Package pathcost finds the cheapest left-to-right walk through an integer
// grid whose rows wrap around.
//
// 🚀 What is a walk?
//
//	A walk takes one cell from every column. From row r it may continue in
//	the next column at row r, the row above or the row below; the first
//	and last rows are neighbors. A walk succeeds when its total cost does
//	not exceed a threshold (50 by default).
//
// Under the hood, everything is organized in small subpackages:
//
//	grid/       — immutable column-major grid and wrap adjacency
//	pathstate/  — persistent path chains and their finalization
//	sweep/      — the right-to-left dynamic-programming sweep
//	textgrid/   — the comma/newline text format
//	report/     — "Yes/No, cost, [rows]" text and JSON rendering
//	server/     — HTTP and websocket front-end with Prometheus metrics
//	cmd/pathcost — command-line entry point
//
// Quick example:
//
//	res, err := pathcost.Solve("3,4,1\n6,1,8\n5,9,3")
//	fmt.Println(report.Text(res))
package pathcost
