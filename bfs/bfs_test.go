package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/backtrack"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/maze"
)

// TestSolve_Errors verifies nil-maze and out-of-bounds endpoint rejection.
func TestSolve_Errors(t *testing.T) {
	origin := core.Position{X: 0, Y: 0}
	_, err := bfs.Solve(nil, origin, origin)
	assert.ErrorIs(t, err, bfs.ErrMazeNil)

	m, err := maze.New(3, 3)
	require.NoError(t, err)

	_, err = bfs.Solve(m, core.Position{X: -1, Y: 0}, origin)
	assert.ErrorIs(t, err, bfs.ErrInvalidPosition)
	_, err = bfs.Solve(m, origin, core.Position{X: 0, Y: 3})
	assert.ErrorIs(t, err, bfs.ErrInvalidPosition)
}

// TestSolve_SingleCell covers the 1×1 maze: a single-element path.
func TestSolve_SingleCell(t *testing.T) {
	m, err := maze.New(1, 1)
	require.NoError(t, err)

	origin := core.Position{X: 0, Y: 0}
	res, err := bfs.Solve(m, origin, origin)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []core.Position{origin}, res.Path)
}

// TestSolve_NoPath checks the fully walled grid between distinct cells.
func TestSolve_NoPath(t *testing.T) {
	m, err := maze.New(2, 2)
	require.NoError(t, err)

	res, err := bfs.Solve(m, core.Position{X: 0, Y: 0}, core.Position{X: 1, Y: 1})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

// TestSolve_OpenGrid3x3 checks the corner-to-corner path on a 3×3 open
// maze: exactly 5 positions (4 edges, the Manhattan optimum).
func TestSolve_OpenGrid3x3(t *testing.T) {
	m, err := maze.NewOpen(3, 3)
	require.NoError(t, err)

	res, err := bfs.Solve(m, core.Position{X: 0, Y: 0}, core.Position{X: 2, Y: 2})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Path, 5)
}

// TestSolve_ManhattanOptimal checks that on an open maze every returned
// path has |Δx|+|Δy|+1 positions, for a spread of endpoint pairs.
func TestSolve_ManhattanOptimal(t *testing.T) {
	m, err := maze.NewOpen(6, 4)
	require.NoError(t, err)

	pairs := []struct{ start, end core.Position }{
		{core.Position{X: 0, Y: 0}, core.Position{X: 5, Y: 3}},
		{core.Position{X: 5, Y: 0}, core.Position{X: 0, Y: 3}},
		{core.Position{X: 2, Y: 1}, core.Position{X: 2, Y: 3}},
		{core.Position{X: 4, Y: 2}, core.Position{X: 4, Y: 2}},
	}
	for _, tc := range pairs {
		t.Run(fmt.Sprintf("%v→%v", tc.start, tc.end), func(t *testing.T) {
			res, solveErr := bfs.Solve(m, tc.start, tc.end)
			require.NoError(t, solveErr)
			require.True(t, res.Found)
			assert.Len(t, res.Path, tc.start.ManhattanDistance(tc.end)+1)
		})
	}
}

// TestSolve_AgreesWithDFS checks the spanning-tree consequence: on a
// freshly generated maze the unique path is canonical, so both solvers
// return it element for element.
func TestSolve_AgreesWithDFS(t *testing.T) {
	for _, seed := range []int64{1, 17, 99} {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			m, err := maze.New(7, 7)
			require.NoError(t, err)
			require.NoError(t, backtrack.Generate(m, backtrack.WithSeed(seed)))

			start := core.Position{X: 0, Y: 0}
			end := core.Position{X: 6, Y: 6}

			bfsRes, err := bfs.Solve(m, start, end)
			require.NoError(t, err)
			dfsRes, err := dfs.Solve(m, start, end)
			require.NoError(t, err)

			require.True(t, bfsRes.Found)
			require.True(t, dfsRes.Found)
			assert.Equal(t, bfsRes.Path, dfsRes.Path, "a perfect maze has one path only")
		})
	}
}

// TestSolve_ShortestOnCyclicGrid checks minimality off the tree case: an
// open grid admits many routes, and BFS must return one with the fewest
// edges.
func TestSolve_ShortestOnCyclicGrid(t *testing.T) {
	m, err := maze.NewOpen(5, 5)
	require.NoError(t, err)

	start := core.Position{X: 0, Y: 0}
	end := core.Position{X: 4, Y: 4}
	bfsRes, err := bfs.Solve(m, start, end)
	require.NoError(t, err)
	require.True(t, bfsRes.Found)

	dfsRes, err := dfs.Solve(m, start, end)
	require.NoError(t, err)
	require.True(t, dfsRes.Found)

	assert.Len(t, bfsRes.Path, 9, "Manhattan optimum on an open grid")
	assert.LessOrEqual(t, len(bfsRes.Path), len(dfsRes.Path),
		"no other existing path may be shorter")
}

// TestSolve_EnqueueOnce checks the visited-at-enqueue discipline through
// the hooks: every cell joins the queue at most once, with non-decreasing
// depth.
func TestSolve_EnqueueOnce(t *testing.T) {
	m, err := maze.New(6, 6)
	require.NoError(t, err)
	require.NoError(t, backtrack.Generate(m, backtrack.WithSeed(13)))

	enqueued := make(map[core.Position]int)
	lastDepth := 0
	res, err := bfs.Solve(m, core.Position{X: 0, Y: 0}, core.Position{X: 5, Y: 5},
		bfs.WithOnEnqueue(func(p core.Position, _ int) { enqueued[p]++ }),
		bfs.WithOnVisit(func(_ core.Position, depth int) {
			assert.GreaterOrEqual(t, depth, lastDepth, "dequeue depths must be non-decreasing")
			lastDepth = depth
		}))
	require.NoError(t, err)
	require.True(t, res.Found)

	for p, n := range enqueued {
		assert.Equal(t, 1, n, "cell %v enqueued %d times", p, n)
	}
	assert.Equal(t, res.Visited, len(enqueued))
}
