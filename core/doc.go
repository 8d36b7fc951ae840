// Package core defines the value layer every other labyrinth package builds
// on: cardinal Directions with their coordinate deltas, grid Positions,
// per-cell Walls, and the Cell entity itself.
//
// What:
//
//   - Direction enumerates {Up, Down, Left, Right}; Directions fixes the
//     canonical iteration order used by every traversal in the library.
//   - Position is a plain (x, y) value with pure translation; it carries no
//     bounds of its own (a Maze rejects coordinates it cannot hold).
//   - Walls packs the four per-side wall booleans into a 4-bit mask, making
//     "all closed" and "all open" trivial constants and wall toggling a
//     single bit operation.
//   - Cell pairs an immutable position (a cell's identity is its coordinate)
//     with a mutable wall set and a transient visited marker.
//
// Complexity: every operation in this package is O(1) except the direction
// subset queries, which scan the fixed four-element direction list.
//
// Errors:
//
//   - ErrInvalidCoordinate: a cell constructor received a negative coordinate.
package core
