package backtrack

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// Generate rebuilds m as a perfect maze. Prior wall and visited state is
// discarded: the grid is reset to fully walled, then a depth-first carve
// from the start cell removes walls until every cell has been reached. On
// return every cell is visited and the passage graph is a spanning tree of
// the grid, so exactly one path exists between any two cells.
//
// Unvisited-neighbor selection uses raw grid adjacency, not accessibility:
// generation is about carving passages, not following existing ones.
//
// Returns ErrMazeNil for a nil maze and maze.ErrOutOfBounds when the start
// lies outside the grid; an invalid start leaves m untouched.
func Generate(m *maze.Maze, opts ...Option) error {
	// 1. Validate input maze.
	if m == nil {
		return ErrMazeNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 3. Validate the start before touching any state.
	if _, err := m.Cell(o.StartX, o.StartY); err != nil {
		return err
	}

	// 4. Fresh fully walled grid, no visited markers.
	m.Reset(core.WallsAll)

	// 5. Seed the carve stack with the start cell.
	start, _ := m.Cell(o.StartX, o.StartY)
	start.MarkVisited()
	stack := []*core.Cell{start}

	// 6. Depth-first carve with explicit backtracking stack.
	var curr, next *core.Cell
	var candidates []*core.Cell
	for len(stack) > 0 {
		curr = stack[len(stack)-1]

		candidates = m.UnvisitedNeighbors(curr)
		if len(candidates) == 0 {
			// Dead end: backtrack.
			stack = stack[:len(stack)-1]

			continue
		}

		next = candidates[o.Rand.Intn(len(candidates))]
		// Candidates come from the neighbor query; the pair is always
		// adjacent, so the carve cannot fail.
		_ = m.RemoveWallBetween(curr, next)
		next.MarkVisited()
		if o.OnCarve != nil {
			o.OnCarve(curr.Position(), next.Position())
		}
		stack = append(stack, next)
	}

	return nil
}
