// Package bfs defines options, errors, and the result type for the
// breadth-first maze solver.
package bfs

import (
	"errors"

	"github.com/katalvlaran/labyrinth/core"
)

// Sentinel errors for BFS solving.
var (
	// ErrMazeNil is returned when a nil *maze.Maze is passed to Solve.
	ErrMazeNil = errors.New("bfs: maze is nil")

	// ErrInvalidPosition is returned when start or end lies outside the
	// grid; it is raised before any search work begins.
	ErrInvalidPosition = errors.New("bfs: start or end outside maze bounds")
)

// Option configures BFS solving via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// OnEnqueue, if non-nil, is invoked when a cell joins the queue,
	// with its depth (#edges) from the start. Each cell fires at most once.
	OnEnqueue func(p core.Position, depth int)

	// OnVisit, if non-nil, is invoked when a cell is dequeued, with its
	// depth from the start.
	OnVisit func(p core.Position, depth int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: nil,
		OnVisit:   nil,
	}
}

// WithOnEnqueue registers a hook to run on every enqueued cell.
func WithOnEnqueue(fn func(p core.Position, depth int)) Option {
	return func(o *Options) {
		o.OnEnqueue = fn
	}
}

// WithOnVisit registers a hook to run on every dequeued cell.
func WithOnVisit(fn func(p core.Position, depth int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a breadth-first solve.
type Result struct {
	// Path holds the positions from start to end inclusive when Found is
	// true, nil otherwise. Its edge count is minimal among all existing
	// paths between the endpoints.
	Path []core.Position

	// Found reports whether a path exists. A false Found is a normal,
	// representable outcome, distinct from an error.
	Found bool

	// Visited counts the cells the search marked visited (enqueued).
	Visited int
}
