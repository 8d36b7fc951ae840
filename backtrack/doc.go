// Package backtrack generates perfect mazes by recursive backtracking over
// a maze.Maze, implemented iteratively with an explicit stack so grid size
// never meets a call-stack limit.
//
// What:
//
//   - Generate(m, opts...): reset the grid to fully walled, then carve
//     depth-first from a start cell, always stepping to a uniformly random
//     unvisited raw-grid neighbor and backtracking at dead ends.
//
// Why:
//
//   - Depth-first carving with backtracking yields a spanning tree of the
//     grid graph: no cycles, no unreachable region, exactly one path
//     between any two cells. That is the property the dfs and bfs solvers
//     exploit when their paths are compared side by side.
//
// Complexity:
//
//   - Time: O(W×H). Memory: O(W×H) for the explicit stack.
//
// Options:
//
//   - WithStart(x, y)    carve origin; default (0,0).
//   - WithRand(r)        randomness source; default time-seeded.
//   - WithSeed(seed)     shorthand for a rand.New over a fixed seed.
//   - WithOnCarve(fn)    hook invoked per carved passage, in carve order.
//
// Errors:
//
//   - ErrMazeNil             a nil maze was supplied.
//   - maze.ErrOutOfBounds    the start cell lies outside the grid.
package backtrack
