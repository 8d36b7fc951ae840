package core

// Direction identifies one of the four cardinal movement directions.
type Direction uint8

const (
	// Up decreases y (grids are row-major and grow downward).
	Up Direction = iota
	// Down increases y.
	Down
	// Left decreases x.
	Left
	// Right increases x.
	Right
)

// Directions lists the four directions in their canonical iteration order
// {Up, Down, Left, Right}. Every neighbor enumeration in the library walks
// this order, which keeps traversals deterministic under a fixed seed.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit coordinate offset of d. Complexity: O(1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}

	return 0, 0
}

// Opposite returns the direction pointing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}

	return "Unknown"
}
