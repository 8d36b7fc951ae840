// Package maze owns the rectangular grid of cells every algorithm in
// labyrinth operates on.
//
// What:
//
//   - Maze holds a width×height grid of core.Cell values, row-major, with
//     the standing invariant grid[y][x].Position() == (x,y) at all times.
//   - Bounds and lookup queries: InBounds, Cell, CellSafe, SetCell.
//   - Neighbor queries in the canonical direction order {Up,Down,Left,Right}:
//     Neighbors (raw grid adjacency), AccessibleNeighbors (through open
//     sides only), UnvisitedNeighbors (raw adjacency minus visited cells).
//   - Paired wall mutation between adjacent cells: RemoveWallBetween and
//     AddWallBetween update both facing sides, so a passage always has two
//     consistent faces; HasPassageBetween reads one face and, by that
//     pairing, speaks for both.
//   - Whole-grid operations: Reset (rebuild with a uniform wall state),
//     ResetVisited, Statistics, Snapshot.
//
// Why:
//
//   - Generation carves passages over raw adjacency; solvers walk only
//     accessible neighbors; renderers consume snapshots. One grid model
//     serves all three without any of them reaching into the others.
//
// Complexity:
//
//   - Lookup and per-pair wall operations: O(1).
//   - Neighbor queries: O(1) (bounded by the four directions).
//   - Reset, ResetVisited, Statistics, Snapshot: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: non-positive width or height at construction.
//   - ErrOutOfBounds: coordinate outside [0,width)×[0,height) where a cell
//     was required (probing queries degrade to an absent result instead).
//   - ErrNotNeighbors: a between-cells operation on non-adjacent cells.
//   - ErrNilCell: a nil *core.Cell where a cell was required.
//   - ErrCellPosition: SetCell with a cell whose position does not match
//     the target slot.
package maze
