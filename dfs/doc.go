// Package dfs solves mazes by depth-first exploration, returning the first
// complete path found.
//
// What:
//
//   - Solve(m, start, end, opts...): recursive exploration from start.
//     Each step marks the current cell visited, extends the path, and tries
//     accessible unvisited neighbors in the canonical direction order
//     {Up, Down, Left, Right}; the first recursive success propagates
//     immediately, and failures backtrack by truncating the path.
//
// Why:
//
//   - On a perfect maze the unique path is returned as-is; side by side
//     with bfs it demonstrates how the two strategies explore the same
//     grid differently while agreeing on tree-shaped mazes.
//
// Semantics:
//
//   - All visited markers are reset before the search, so the result never
//     depends on generation leftovers or a previous solve; markers are left
//     as the search set them, so reset again before comparing solves.
//   - "No path" is a normal outcome: Result.Found is false and the error is
//     nil. start == end succeeds with a single-element path.
//   - DFS does not seek the shortest path.
//
// Complexity:
//
//   - Time: O(W×H). Recursion depth is bounded by the maze area.
//
// Options:
//
//   - WithOnVisit(fn)    hook invoked per visited cell, in exploration order.
//
// Errors:
//
//   - ErrMazeNil            a nil maze was supplied.
//   - ErrInvalidPosition    start or end lies outside the grid.
package dfs
