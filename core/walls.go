package core

import "math/bits"

// Walls records which of a cell's four sides carry a wall, one bit per
// Direction. A set bit means "wall present". The mapping is total: every
// direction always has exactly one bit, so no partial wall sets exist.
type Walls uint8

const (
	// WallsNone is the fully open wall set.
	WallsNone Walls = 0
	// WallsAll is the fully closed wall set, all four walls present.
	WallsAll Walls = 1<<Up | 1<<Down | 1<<Left | 1<<Right
)

// Has reports whether a wall is present on side d. Complexity: O(1).
func (w Walls) Has(d Direction) bool {
	return w&(1<<d) != 0
}

// With returns a copy of w with a wall added on side d.
// Adding an already present wall is a no-op, not an error.
func (w Walls) With(d Direction) Walls {
	return w | 1<<d
}

// Without returns a copy of w with the wall on side d removed.
// Removing an absent wall is a no-op, not an error.
func (w Walls) Without(d Direction) Walls {
	return w &^ (1 << d)
}

// Count returns the number of walls present, 0..4.
func (w Walls) Count() int {
	return bits.OnesCount8(uint8(w))
}
