// Package dfs defines options, errors, and the result type for the
// depth-first maze solver.
package dfs

import (
	"errors"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for DFS solving.
var (
	// ErrMazeNil is returned when a nil *maze.Maze is passed to Solve.
	ErrMazeNil = errors.New("dfs: maze is nil")

	// ErrInvalidPosition is returned when start or end lies outside the
	// grid; it is raised before any search work begins.
	ErrInvalidPosition = errors.New("dfs: start or end outside maze bounds")
)

// Option configures DFS solving via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// OnVisit, if non-nil, is invoked when a cell is first visited,
	// in exploration order (including dead-end branches).
	OnVisit func(p core.Position)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}

// WithOnVisit registers a hook to run on every visited cell.
func WithOnVisit(fn func(p core.Position)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a depth-first solve.
type Result struct {
	// Path holds the positions from start to end inclusive when Found is
	// true, nil otherwise. On a perfect maze it is the unique path.
	Path []core.Position

	// Found reports whether a path exists. A false Found is a normal,
	// representable outcome, distinct from an error.
	Found bool

	// Visited counts the cells the search marked visited, dead ends
	// included.
	Visited int
}
