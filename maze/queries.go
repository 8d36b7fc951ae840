package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Neighbors returns the grid-adjacent cells of c that exist within bounds,
// ignoring walls, in the canonical direction order {Up, Down, Left, Right}.
// Cells near an edge yield fewer than four. Complexity: O(1).
func (m *Maze) Neighbors(c *core.Cell) []*core.Cell {
	out := make([]*core.Cell, 0, len(core.Directions))
	var p core.Position
	for _, d := range core.Directions {
		p = c.NeighborPosition(d)
		if n, ok := m.CellSafe(p.X, p.Y); ok {
			out = append(out, n)
		}
	}

	return out
}

// AccessibleNeighbors returns the neighbors of c reachable through an open
// (wall-free) side. It iterates c's own open-direction set rather than the
// full direction list, so it reflects exactly the doors carved into that
// cell; the paired mutation in RemoveWallBetween/AddWallBetween keeps the
// two faces of every passage consistent, so the view from either endpoint
// agrees. Complexity: O(1).
func (m *Maze) AccessibleNeighbors(c *core.Cell) []*core.Cell {
	out := make([]*core.Cell, 0, len(core.Directions))
	var p core.Position
	for _, d := range c.OpenDirections() {
		p = c.NeighborPosition(d)
		if n, ok := m.CellSafe(p.X, p.Y); ok {
			out = append(out, n)
		}
	}

	return out
}

// UnvisitedNeighbors returns Neighbors(c) filtered to cells whose visited
// marker is clear. Walls are ignored: generation carves passages through
// raw grid adjacency, it does not follow existing ones.
func (m *Maze) UnvisitedNeighbors(c *core.Cell) []*core.Cell {
	out := make([]*core.Cell, 0, len(core.Directions))
	for _, n := range m.Neighbors(c) {
		if !n.Visited() {
			out = append(out, n)
		}
	}

	return out
}

// DirectionBetween returns the direction leading from cell from to the
// Manhattan-adjacent cell to. Returns ErrNilCell for nil cells and
// ErrNotNeighbors when the cells are not adjacent.
func (m *Maze) DirectionBetween(from, to *core.Cell) (core.Direction, error) {
	if from == nil || to == nil {
		return 0, ErrNilCell
	}
	if !from.IsAdjacentTo(to) {
		return 0, fmt.Errorf("%w: %v and %v", ErrNotNeighbors, from.Position(), to.Position())
	}

	fp, tp := from.Position(), to.Position()
	switch {
	case tp.Y == fp.Y-1:
		return core.Up, nil
	case tp.Y == fp.Y+1:
		return core.Down, nil
	case tp.X == fp.X-1:
		return core.Left, nil
	default:
		return core.Right, nil
	}
}

// RemoveWallBetween carves a passage between two adjacent cells, opening
// both facing sides so the passage has two consistent faces. Idempotent.
// Returns ErrNotNeighbors when the cells are not Manhattan-adjacent.
func (m *Maze) RemoveWallBetween(a, b *core.Cell) error {
	d, err := m.DirectionBetween(a, b)
	if err != nil {
		return err
	}
	a.RemoveWall(d)
	b.RemoveWall(d.Opposite())

	return nil
}

// AddWallBetween closes the passage between two adjacent cells, walling
// both facing sides. Idempotent. Returns ErrNotNeighbors when the cells
// are not Manhattan-adjacent.
func (m *Maze) AddWallBetween(a, b *core.Cell) error {
	d, err := m.DirectionBetween(a, b)
	if err != nil {
		return err
	}
	a.AddWall(d)
	b.AddWall(d.Opposite())

	return nil
}

// HasPassageBetween reports whether a and b are adjacent and the side of a
// facing b is open. False for non-neighbors. Paired mutation guarantees the
// symmetric check from b gives the same answer.
func (m *Maze) HasPassageBetween(a, b *core.Cell) bool {
	d, err := m.DirectionBetween(a, b)
	if err != nil {
		return false
	}

	return a.IsOpen(d)
}
