// Package bfs solves mazes by breadth-first search, returning a path with
// the fewest edges between two cells.
//
// What:
//
//   - Solve(m, start, end, opts...): level-order exploration over a FIFO
//     queue. Cells are marked visited at enqueue time — not at dequeue —
//     which bounds every cell to at most one queue entry and is exactly
//     what makes the first arrival at any cell the shortest one.
//   - Parent links live in a row-major came-from table parallel to the
//     grid, so path reconstruction walks plain indices instead of chasing
//     per-node allocations.
//
// Why:
//
//   - On arbitrary wall configurations BFS returns a minimal path by edge
//     count; on a perfect maze it agrees with dfs, since a spanning tree
//     admits exactly one path.
//
// Semantics:
//
//   - All visited markers are reset before the search; "no path" is a
//     normal outcome (Found == false, nil error); start == end succeeds
//     with a single-element path; neighbors are enqueued in the canonical
//     direction order {Up, Down, Left, Right}.
//
// Complexity:
//
//   - Time: O(W×H). Memory: O(W×H) for the queue and came-from table.
//
// Options:
//
//   - WithOnVisit(fn)      hook invoked per dequeued cell with its depth.
//   - WithOnEnqueue(fn)    hook invoked per enqueued cell with its depth.
//
// Errors:
//
//   - ErrMazeNil            a nil maze was supplied.
//   - ErrInvalidPosition    start or end lies outside the grid.
package bfs
