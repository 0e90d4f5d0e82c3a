package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

func corridor(t *testing.T) *grid.Grid {
	t.Helper()
	// 2x3, open along the top row and down the right column:
	// (0,0)-(0,1)-(0,2)
	//               |
	// (1,0) (1,1)-(1,2)
	g, err := grid.New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 0}), g.Index(grid.Coord{Row: 0, Col: 1})))
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 1}), g.Index(grid.Coord{Row: 0, Col: 2})))
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 2}), g.Index(grid.Coord{Row: 1, Col: 2})))
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 1, Col: 2}), g.Index(grid.Coord{Row: 1, Col: 1})))
	return g
}

func TestReachable(t *testing.T) {
	g := corridor(t)
	assert.Equal(t, 5, Reachable(g, grid.Coord{Row: 0, Col: 0}))
	assert.Equal(t, 1, Reachable(g, grid.Coord{Row: 1, Col: 0}), "sealed cell")
	assert.Equal(t, 0, Reachable(g, grid.Coord{Row: 9, Col: 9}), "outside")
}

func TestPath(t *testing.T) {
	g := corridor(t)

	path := Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}, path)

	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}}, Path(g, grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 0, Col: 1}))
	assert.Nil(t, Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 0}))
}

func TestPathStaticLevel(t *testing.T) {
	s := maze.Default()

	assert.Equal(t, len(maze.PassableCells(s)), Reachable(s, maze.DefaultStart),
		"every open tile of the built-in level is connected")

	path := Path(s, maze.DefaultStart, s.Goal())
	require.NotEmpty(t, path)
	assert.Equal(t, maze.DefaultStart, path[0])
	assert.Equal(t, s.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		d, ok := grid.DirectionBetween(path[i-1], path[i])
		require.True(t, ok)
		assert.True(t, s.CanMove(path[i-1], d))
	}

	assert.Nil(t, Path(s, grid.Coord{Row: 0, Col: 0}, s.Goal()), "start on a wall")
}
