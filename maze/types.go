// Package maze defines the grid entity, its sentinel errors, and the
// structural summary types exposed to presentation code.
package maze

import (
	"errors"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("maze: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: position outside grid bounds")

	// ErrNotNeighbors indicates a between-cells operation on cells that are
	// not Manhattan-adjacent.
	ErrNotNeighbors = errors.New("maze: cells are not adjacent")

	// ErrNilCell indicates a nil cell where one was required.
	ErrNilCell = errors.New("maze: cell is nil")

	// ErrCellPosition indicates a SetCell whose cell does not carry the
	// coordinate of the target slot.
	ErrCellPosition = errors.New("maze: cell position does not match grid slot")
)

// Stats summarizes a maze's current structural and traversal state, as
// produced by a single full scan in Statistics.
type Stats struct {
	// TotalCells is width×height.
	TotalCells int

	// VisitedCells counts cells whose visited marker is set; it reflects
	// whatever algorithm ran last.
	VisitedCells int

	// UnvisitedCells is TotalCells − VisitedCells.
	UnvisitedCells int

	// TotalWalls counts the wall faces still present, up to 4 per cell.
	TotalWalls int

	// RemovedWalls counts the wall faces carved away: 4·TotalCells − TotalWalls.
	// A carved passage removes two faces, one on each endpoint cell.
	RemovedWalls int

	// Connectivity is RemovedWalls / (4·TotalCells), in [0,1]. It is a
	// structural property of the wall configuration, independent of any
	// particular solve.
	Connectivity float64
}

// CellState is the rendering-oriented view of one cell: everything
// presentation code needs, detached from the live grid.
type CellState struct {
	Position core.Position
	Walls    core.Walls
	Visited  bool
}

// Snapshot is a full structural copy of a maze, row-major: Cells[y][x]
// describes the cell at (x,y).
type Snapshot struct {
	Width, Height int
	Cells         [][]CellState
}

// Option configures Maze construction.
type Option func(*config)

type config struct {
	walls core.Walls
}

// WithOpenWalls constructs the maze fully open instead of fully walled.
func WithOpenWalls() Option {
	return func(c *config) {
		c.walls = core.WallsNone
	}
}
