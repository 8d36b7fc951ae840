// Command mazedemo generates a perfect maze and solves it corner to corner
// with both traversal strategies, printing the maze, the two solution
// paths, and summary statistics for a side-by-side comparison.
//
// Usage:
//
//	mazedemo -width 8 -height 8 -seed 42
//
// A seed of 0 picks one from the clock, so each run carves a fresh maze.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/labyrinth/backtrack"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

func main() {
	width := flag.Int("width", 8, "maze width in cells")
	height := flag.Int("height", 8, "maze height in cells")
	seed := flag.Int64("seed", 0, "generation seed; 0 picks one from the clock")
	flag.Parse()

	m, err := maze.New(*width, *height)
	if err != nil {
		log.Fatalf("construct maze: %v", err)
	}

	var genOpts []backtrack.Option
	if *seed != 0 {
		genOpts = append(genOpts, backtrack.WithSeed(*seed))
	}
	if err = backtrack.Generate(m, genOpts...); err != nil {
		log.Fatalf("generate: %v", err)
	}

	start := core.Position{X: 0, Y: 0}
	end := core.Position{X: *width - 1, Y: *height - 1}

	fmt.Printf("Maze %d×%d, start %v, end %v\n\n", *width, *height, start, end)
	fmt.Println(render.ASCII(m))

	dfsRes, err := dfs.Solve(m, start, end)
	if err != nil {
		log.Fatalf("dfs solve: %v", err)
	}
	report(m, "DFS", dfsRes.Path, dfsRes.Found, dfsRes.Visited)

	bfsRes, err := bfs.Solve(m, start, end)
	if err != nil {
		log.Fatalf("bfs solve: %v", err)
	}
	report(m, "BFS", bfsRes.Path, bfsRes.Found, bfsRes.Visited)

	stats := m.Statistics()
	fmt.Printf("cells=%d  walls=%d  removed=%d  passages=%d  connectivity=%.3f\n",
		stats.TotalCells, stats.TotalWalls, stats.RemovedWalls, stats.RemovedWalls/2, stats.Connectivity)
}

// report prints one solver's outcome with its path drawn over the maze.
func report(m *maze.Maze, name string, path []core.Position, found bool, visited int) {
	if !found {
		fmt.Printf("%s: no path\n\n", name)

		return
	}
	fmt.Printf("%s: %d steps, %d cells visited\n%s\n", name, len(path)-1, visited, render.ASCIIPath(m, path))
}
