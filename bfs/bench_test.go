package bfs_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/backtrack"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkSolve_PerfectMaze measures the corner-to-corner solve on a
// carved 50×50 maze, the worst case for path length on a tree.
func BenchmarkSolve_PerfectMaze(b *testing.B) {
	m, err := maze.New(50, 50)
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	if err = backtrack.Generate(m, backtrack.WithSeed(1)); err != nil {
		b.Fatalf("Generate error: %v", err)
	}
	start := core.Position{X: 0, Y: 0}
	end := core.Position{X: 49, Y: 49}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(m, start, end)
	}
}

// BenchmarkSolve_OpenGrid measures the frontier-heavy open-grid case,
// where every cell has four accessible neighbors.
func BenchmarkSolve_OpenGrid(b *testing.B) {
	m, err := maze.NewOpen(50, 50)
	if err != nil {
		b.Fatalf("NewOpen error: %v", err)
	}
	start := core.Position{X: 0, Y: 0}
	end := core.Position{X: 49, Y: 49}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Solve(m, start, end)
	}
}
