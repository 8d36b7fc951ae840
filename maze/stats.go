package maze

// Statistics scans the grid once and summarizes its current state. The
// visited count reflects whatever algorithm ran last; Connectivity depends
// only on the wall configuration. Complexity: O(W×H).
func (m *Maze) Statistics() Stats {
	s := Stats{TotalCells: m.width * m.height}
	var y, x int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			c := &m.grid[y][x]
			if c.Visited() {
				s.VisitedCells++
			}
			s.TotalWalls += c.WallCount()
		}
	}
	s.UnvisitedCells = s.TotalCells - s.VisitedCells
	s.RemovedWalls = 4*s.TotalCells - s.TotalWalls
	s.Connectivity = float64(s.RemovedWalls) / float64(4*s.TotalCells)

	return s
}

// Snapshot copies the maze's full per-cell structural state — wall state in
// all four directions, visited marker, position — detached from the live
// grid, so renderers never reach into internals. Complexity: O(W×H).
func (m *Maze) Snapshot() Snapshot {
	snap := Snapshot{
		Width:  m.width,
		Height: m.height,
		Cells:  make([][]CellState, m.height),
	}
	var y, x int
	for y = 0; y < m.height; y++ {
		snap.Cells[y] = make([]CellState, m.width)
		for x = 0; x < m.width; x++ {
			c := &m.grid[y][x]
			snap.Cells[y][x] = CellState{
				Position: c.Position(),
				Walls:    c.Walls(),
				Visited:  c.Visited(),
			}
		}
	}

	return snap
}
