package core

import "fmt"

// Position is a 2D integer coordinate on a grid. The zero value is the
// origin. Positions carry no bounds of their own: translation may produce
// negative coordinates, which a Maze will reject at its boundary.
type Position struct {
	X, Y int
}

// Translate returns the position reached by moving dist steps in direction d.
// Pure; no bounds checking at this layer. Complexity: O(1).
func (p Position) Translate(d Direction, dist int) Position {
	dx, dy := d.Delta()

	return Position{X: p.X + dx*dist, Y: p.Y + dy*dist}
}

// ManhattanDistance returns |Δx|+|Δy| between p and other.
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
