package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleMaze_RemoveWallBetween shows paired wall carving: opening one
// passage updates both facing sides, so the passage reads the same from
// either endpoint.
func ExampleMaze_RemoveWallBetween() {
	m, _ := maze.New(2, 1)
	a, _ := m.Cell(0, 0)
	b, _ := m.Cell(1, 0)

	fmt.Println(m.HasPassageBetween(a, b), m.HasPassageBetween(b, a))

	_ = m.RemoveWallBetween(a, b)
	fmt.Println(m.HasPassageBetween(a, b), m.HasPassageBetween(b, a))
	// Output:
	// false false
	// true true
}

// ExampleMaze_Statistics reads the structural summary of a carved grid.
func ExampleMaze_Statistics() {
	m, _ := maze.New(2, 2)
	a, _ := m.Cell(0, 0)
	b, _ := m.Cell(1, 0)
	_ = m.RemoveWallBetween(a, b)

	s := m.Statistics()
	fmt.Printf("cells=%d removed=%d connectivity=%.3f\n", s.TotalCells, s.RemovedWalls, s.Connectivity)
	// Output:
	// cells=4 removed=2 connectivity=0.125
}
