package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// walker encapsulates mutable state during a breadth-first solve. Cell
// identity is the row-major index y*width + x; cameFrom and depth are
// tables parallel to the grid keyed by that index.
type walker struct {
	m        *maze.Maze
	opts     Options
	width    int
	queue    []core.Position
	cameFrom []int // enqueuing parent's index, -1 for start/untouched
	depth    []int // #edges from start, valid once enqueued
	res      *Result
}

// Solve searches for a path from start to end in level order. The returned
// path has the fewest edges among all existing paths between the endpoints;
// ties are broken by the canonical direction order {Up,Down,Left,Right}.
//
// Returns ErrMazeNil for a nil maze and ErrInvalidPosition when either
// endpoint lies outside the grid. An empty queue without reaching the end
// is not an error: the Result carries Found == false.
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

	// 5. Prepare walker with capacity hints sized to the grid.
	n := m.Width() * m.Height()
	w := &walker{
		m:        m,
		opts:     o,
		width:    m.Width(),
		queue:    make([]core.Position, 0, n),
		cameFrom: make([]int, n),
		depth:    make([]int, n),
		res:      &Result{},
	}
	for i := range w.cameFrom {
		w.cameFrom[i] = -1
	}

	// 6. Seed the queue with the start cell (no parent) and run.
	startCell, _ := m.CellAt(start)
	startCell.MarkVisited()
	w.enqueue(start, 0, -1)
	w.loop(end)

	return w.res, nil
}

// index maps a position to its row-major table key.
func (w *walker) index(p core.Position) int {
	return p.Y*w.width + p.X
}

// position inverts index.
func (w *walker) position(idx int) core.Position {
	return core.Position{X: idx % w.width, Y: idx / w.width}
}

// enqueue records the parent link and depth for p, fires OnEnqueue, and
// appends p to the queue. The caller has already marked p's cell visited.
func (w *walker) enqueue(p core.Position, depth, parent int) {
	i := w.index(p)
	w.cameFrom[i] = parent
	w.depth[i] = depth
	w.res.Visited++
	if w.opts.OnEnqueue != nil {
		w.opts.OnEnqueue(p, depth)
	}
	w.queue = append(w.queue, p)
}

// loop processes the queue until the end is dequeued or the queue empties.
func (w *walker) loop(end core.Position) {
	var p core.Position
	var d int
	for len(w.queue) > 0 {
		p = w.queue[0]
		w.queue = w.queue[1:]
		d = w.depth[w.index(p)]

		if w.opts.OnVisit != nil {
			w.opts.OnVisit(p, d)
		}

		if p == end {
			w.res.Path = w.reconstruct(end)
			w.res.Found = true

			return
		}

		w.enqueueNeighbors(p, d)
	}
}

// enqueueNeighbors marks every accessible unvisited neighbor of p visited
// and appends it to the queue. Marking happens at enqueue time: each cell
// enters the queue at most once.
func (w *walker) enqueueNeighbors(p core.Position, depth int) {
	c, _ := w.m.CellAt(p)
	parent := w.index(p)
	for _, n := range w.m.AccessibleNeighbors(c) {
		if n.Visited() {
			continue
		}
		n.MarkVisited()
		w.enqueue(n.Position(), depth+1, parent)
	}
}

// reconstruct walks the came-from table from end back to the start and
// reverses, yielding the start..end path inclusive.
func (w *walker) reconstruct(end core.Position) []core.Position {
	path := make([]core.Position, 0, w.depth[w.index(end)]+1)
	for i := w.index(end); i != -1; i = w.cameFrom[i] {
		path = append(path, w.position(i))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
