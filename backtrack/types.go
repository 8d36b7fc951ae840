// Package backtrack defines options and error definitions for
// recursive-backtracking maze generation.
package backtrack

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/labyrinth/core"
)

// ErrMazeNil is returned when a nil *maze.Maze is passed to Generate.
var ErrMazeNil = errors.New("backtrack: maze is nil")

// Option configures maze generation via functional arguments.
type Option func(*Options)

// Options holds configurable parameters for Generate.
type Options struct {
	// StartX, StartY locate the carve origin. Default (0,0).
	StartX, StartY int

	// Rand supplies randomness for neighbor selection. When nil, Generate
	// seeds a generator from the clock; supply a fixed-seed source for
	// reproducible mazes.
	Rand *rand.Rand

	// OnCarve, if non-nil, is invoked after each carved passage with the
	// two endpoint positions, in carve order. A spanning tree over V cells
	// fires it exactly V−1 times.
	OnCarve func(from, to core.Position)
}

// DefaultOptions returns Options with origin (0,0), clock-seeded
// randomness, and no carve hook.
func DefaultOptions() Options {
	return Options{
		StartX:  0,
		StartY:  0,
		Rand:    nil,
		OnCarve: nil,
	}
}

// WithStart sets the carve origin. Bounds are validated by Generate.
func WithStart(x, y int) Option {
	return func(o *Options) {
		o.StartX, o.StartY = x, y
	}
}

// WithRand sets the randomness source. A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed installs a randomness source over a fixed seed, so the same
// seed and dimensions always carve the same maze.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithOnCarve registers a hook to run after every carved passage.
func WithOnCarve(fn func(from, to core.Position)) Option {
	return func(o *Options) {
		o.OnCarve = fn
	}
}
