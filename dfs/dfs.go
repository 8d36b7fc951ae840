package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// walker encapsulates mutable state during a depth-first solve.
type walker struct {
	m    *maze.Maze
	opts Options
	end  core.Position
	path []core.Position
	seen int
}

// Solve searches for a path from start to end by depth-first exploration.
// Neighbors are tried in the canonical direction order {Up,Down,Left,Right}
// through open walls only, and the first complete path found is returned.
//
// Returns ErrMazeNil for a nil maze and ErrInvalidPosition when either
// endpoint lies outside the grid. An exhausted search is not an error:
// the Result carries Found == false.
func Solve(m *maze.Maze, start, end core.Position, opts ...Option) (*Result, error) {
	// 1. Validate input maze.
	if m == nil {
		return nil, ErrMazeNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Reject out-of-bounds endpoints before any search work.
	if !m.InBoundsPos(start) || !m.InBoundsPos(end) {
		return nil, fmt.Errorf("%w: start=%v end=%v on %d×%d grid",
			ErrInvalidPosition, start, end, m.Width(), m.Height())
	}

	// 4. Fresh visited state, independent of whatever ran before.
	m.ResetVisited()

	// 5. Explore from the start cell.
	w := &walker{m: m, opts: o, end: end}
	startCell, _ := m.CellAt(start)

	res := &Result{}
	if w.explore(startCell) {
		res.Path = w.path
		res.Found = true
	}
	res.Visited = w.seen

	return res, nil
}

// explore visits c, extends the path, and recurses into accessible
// unvisited neighbors. Returns true as soon as the end is reached; on
// failure the path entry is removed again (backtrack) and false reported
// upward.
func (w *walker) explore(c *core.Cell) bool {
	c.MarkVisited()
	w.seen++

	p := c.Position()
	w.path = append(w.path, p)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(p)
	}

	if p == w.end {
		return true
	}

	for _, n := range w.m.AccessibleNeighbors(c) {
		if n.Visited() {
			continue
		}
		if w.explore(n) {
			// First success wins; no further search.
			return true
		}
	}

	// Dead end: drop this cell from the path.
	w.path = w.path[:len(w.path)-1]

	return false
}
