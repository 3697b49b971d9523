// Package pathstate models a path through the grid as it is built by the
// right-to-left sweep.
//
// A Path is a persistent chain of cells: its head is the leftmost cell and
// every node points at the continuation to its right. Extend never touches
// the receiver; it allocates one node that shares the whole continuation.
// Rows of one fold that pick the same cheap continuation therefore share it
// instead of copying it, and no two rows can observe each other's changes
// because there are none.
//
// Each node caches the total cost of the chain starting at it, so TotalCost
// is O(1) and always equals the sum of Cells.
//
// Finalize turns a Path into a Result judged against a cost threshold.
// A path whose total exceeds the threshold is either reported as is or,
// by default, cut before the first step that would overrun the threshold.
package pathstate
