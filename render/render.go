// Package render turns a maze into console-friendly ASCII. It consumes
// only the public snapshot surface of maze.Maze — wall state per direction
// plus solver path sequences — never the grid internals.
//
// Layout is the classic lattice: one "+---+" rule per row boundary, "|"
// for vertical walls, and " * " marking cells on a supplied path:
//
//	+---+---+
//	| *   * |
//	+---+   +
//	|   | * |
//	+---+---+
//
// The outer frame is always drawn, even for open mazes, so the output
// stays readable.
package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// ASCII renders m without any path overlay.
func ASCII(m *maze.Maze) string {
	return ASCIIPath(m, nil)
}

// ASCIIPath renders m with every cell on path marked " * ". Positions
// outside the grid are ignored. Complexity: O(W×H).
func ASCIIPath(m *maze.Maze, path []core.Position) string {
	snap := m.Snapshot()

	onPath := make(map[core.Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var b strings.Builder
	// Top boundary.
	b.WriteString("+")
	b.WriteString(strings.Repeat("---+", snap.Width))
	b.WriteString("\n")

	var y, x int
	for y = 0; y < snap.Height; y++ {
		// Cell row: bodies and vertical walls.
		b.WriteString("|")
		for x = 0; x < snap.Width; x++ {
			cs := snap.Cells[y][x]
			if _, ok := onPath[cs.Position]; ok {
				b.WriteString(" * ")
			} else {
				b.WriteString("   ")
			}
			if cs.Walls.Has(core.Right) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row: horizontal walls below this row.
		b.WriteString("+")
		for x = 0; x < snap.Width; x++ {
			if snap.Cells[y][x].Walls.Has(core.Down) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
