package core

import "errors"

// ErrInvalidCoordinate is returned by cell constructors when a coordinate
// is negative.
var ErrInvalidCoordinate = errors.New("core: cell coordinates must be non-negative")

// Cell is a single maze cell: an immutable position fixed at construction
// (a cell's identity is its coordinate), a wall set mutated in place as
// passages are carved, and a transient visited marker reset between
// algorithm runs.
type Cell struct {
	pos     Position
	walls   Walls
	visited bool
}

// NewCell constructs a fully walled, unvisited cell at (x,y).
// Returns ErrInvalidCoordinate if x or y is negative.
func NewCell(x, y int) (*Cell, error) {
	return NewCellWithWalls(x, y, WallsAll)
}

// NewCellWithWalls constructs a cell at (x,y) with an explicit initial wall
// set. Returns ErrInvalidCoordinate if x or y is negative.
func NewCellWithWalls(x, y int, w Walls) (*Cell, error) {
	if x < 0 || y < 0 {
		return nil, ErrInvalidCoordinate
	}

	return &Cell{pos: Position{X: x, Y: y}, walls: w}, nil
}

// Position returns the cell's coordinate.
func (c *Cell) Position() Position {
	return c.pos
}

// Walls returns the cell's current wall set.
func (c *Cell) Walls() Walls {
	return c.walls
}

// HasWall reports whether side d carries a wall. Complexity: O(1).
func (c *Cell) HasWall(d Direction) bool {
	return c.walls.Has(d)
}

// IsOpen reports whether side d is open (no wall). Complexity: O(1).
func (c *Cell) IsOpen(d Direction) bool {
	return !c.walls.Has(d)
}

// WalledDirections returns the walled subset of the four directions,
// in the canonical order {Up, Down, Left, Right}.
func (c *Cell) WalledDirections() []Direction {
	return c.matchingDirections(true)
}

// OpenDirections returns the open subset of the four directions,
// in the canonical order {Up, Down, Left, Right}.
func (c *Cell) OpenDirections() []Direction {
	return c.matchingDirections(false)
}

func (c *Cell) matchingDirections(walled bool) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if c.walls.Has(d) == walled {
			out = append(out, d)
		}
	}

	return out
}

// RemoveWall opens side d in place. Idempotent.
func (c *Cell) RemoveWall(d Direction) {
	c.walls = c.walls.Without(d)
}

// AddWall closes side d in place. Idempotent.
func (c *Cell) AddWall(d Direction) {
	c.walls = c.walls.With(d)
}

// NeighborPosition returns the coordinate one step away in direction d.
// Pure; does not validate grid bounds.
func (c *Cell) NeighborPosition(d Direction) Position {
	return c.pos.Translate(d, 1)
}

// ManhattanDistance returns |Δx|+|Δy| between this cell and p.
func (c *Cell) ManhattanDistance(p Position) int {
	return c.pos.ManhattanDistance(p)
}

// ManhattanDistanceTo is ManhattanDistance against another cell's position.
func (c *Cell) ManhattanDistanceTo(other *Cell) int {
	return c.pos.ManhattanDistance(other.pos)
}

// IsAdjacentTo reports whether other sits at Manhattan distance exactly 1.
// Diagonal neighbors are never adjacent.
func (c *Cell) IsAdjacentTo(other *Cell) bool {
	return other != nil && c.pos.ManhattanDistance(other.pos) == 1
}

// Visited reports the transient visited marker.
func (c *Cell) Visited() bool {
	return c.visited
}

// MarkVisited sets the visited marker.
func (c *Cell) MarkVisited() {
	c.visited = true
}

// Reset clears the visited marker; walls are untouched.
func (c *Cell) Reset() {
	c.visited = false
}

// WallCount returns how many of the four walls are present, 0..4.
func (c *Cell) WallCount() int {
	return c.walls.Count()
}
