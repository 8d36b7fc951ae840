// Package labyrinth is an in-memory playground for perfect mazes — from the
// cell-and-wall primitives up to generation, traversal, and console rendering.
//
// 🚀 What is labyrinth?
//
//	A small, focused library that brings together:
//		• Core primitives: directions, positions, wall sets, cells
//		• Maze grid: neighbor queries, paired wall carving, statistics
//		• Generation: recursive backtracking (spanning-tree mazes)
//		• Traversals: DFS (first-success) and BFS (fewest-edges), side by side
//		• Rendering: ASCII box output with path overlays
//
// ✨ Why choose labyrinth?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed neighbor order, seedable generation
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnVisit, OnEnqueue, OnCarve) for custom logic
//
// Everything is organized under flat concern packages:
//
//	core/      — Direction, Position, Walls, and the Cell entity
//	maze/      — the rectangular grid: queries, carving, statistics, snapshots
//	backtrack/ — recursive-backtracking maze generation
//	dfs/       — depth-first solver
//	bfs/       — breadth-first (shortest by edge count) solver
//	render/    — ASCII rendering for consoles
//	cmd/       — mazedemo, a side-by-side solver comparison demo
//
// Quick ASCII example:
//
//	+---+---+---+
//	| *   *   * |
//	+---+---+   +
//	|   |   | * |
//	+   +   +   +
//	|           |
//	+---+---+---+
//
//	a 3×3 perfect maze with the BFS path from (0,0) to (2,1) marked.
//
// Dive into cmd/mazedemo for a runnable end-to-end tour.
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth
