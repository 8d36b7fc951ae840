package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Maze owns a rectangular grid of cells. Width and height are fixed for the
// life of the instance; Reset may reallocate the grid array but never its
// dimensions. The maze exclusively owns its cells: query methods return
// direct references for the caller's convenience within a synchronous call
// chain, not for long-term aliasing.
type Maze struct {
	width  int
	height int
	grid   [][]core.Cell // grid[y][x] sits at position (x,y)
}

// New constructs a width×height maze. Every cell starts fully walled and
// unvisited unless WithOpenWalls is supplied. Returns ErrInvalidDimension
// for non-positive dimensions. Complexity: O(W×H).
func New(width, height int, opts ...Option) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, width, height)
	}

	cfg := config{walls: core.WallsAll}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Maze{width: width, height: height}
	m.Reset(cfg.walls)

	return m, nil
}

// NewOpen constructs a width×height maze with every wall removed.
func NewOpen(width, height int) (*Maze, error) {
	return New(width, height, WithOpenWalls())
}

// Width returns the horizontal cell count.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the vertical cell count.
func (m *Maze) Height() int {
	return m.height
}

// Reset rebuilds the grid with every cell set to the supplied wall state and
// the visited marker cleared. Dimensions never change, and each cell is
// constructed at its own coordinate, so the grid/cell-position invariant
// holds throughout. Complexity: O(W×H).
func (m *Maze) Reset(walls core.Walls) {
	grid := make([][]core.Cell, m.height)
	var y, x int
	for y = 0; y < m.height; y++ {
		grid[y] = make([]core.Cell, m.width)
		for x = 0; x < m.width; x++ {
			// Coordinates are loop indices, always non-negative.
			c, _ := core.NewCellWithWalls(x, y, walls)
			grid[y][x] = *c
		}
	}
	m.grid = grid
}

// ResetVisited clears every cell's visited marker; walls are untouched.
// Solvers call this before searching so runs never share visited state.
func (m *Maze) ResetVisited() {
	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x].Reset()
		}
	}
}

// InBounds reports whether (x,y) lies within [0,width)×[0,height).
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// InBoundsPos is InBounds for a Position value.
func (m *Maze) InBoundsPos(p core.Position) bool {
	return m.InBounds(p.X, p.Y)
}

// Cell returns the cell at (x,y), or ErrOutOfBounds if the coordinate lies
// outside the grid. Complexity: O(1).
func (m *Maze) Cell(x, y int) (*core.Cell, error) {
	if !m.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}

	return &m.grid[y][x], nil
}

// CellAt is Cell for a Position value.
func (m *Maze) CellAt(p core.Position) (*core.Cell, error) {
	return m.Cell(p.X, p.Y)
}

// CellSafe returns the cell at (x,y) and true, or nil and false when the
// coordinate is out of bounds. Meant for speculative probes near edges,
// where "no cell there" is a normal outcome rather than a caller error.
func (m *Maze) CellSafe(x, y int) (*core.Cell, bool) {
	if !m.InBounds(x, y) {
		return nil, false
	}

	return &m.grid[y][x], true
}

// SetCell replaces the cell stored at (x,y). The supplied cell must carry
// position (x,y): the grid/cell-position invariant is enforced here at the
// boundary. Returns ErrNilCell, ErrOutOfBounds, or ErrCellPosition.
func (m *Maze) SetCell(x, y int, c *core.Cell) error {
	if c == nil {
		return ErrNilCell
	}
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, x, y, m.width, m.height)
	}
	if p := c.Position(); p.X != x || p.Y != y {
		return fmt.Errorf("%w: cell %v into slot (%d,%d)", ErrCellPosition, p, x, y)
	}
	m.grid[y][x] = *c

	return nil
}
