package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyGrid(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := New(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestNewWiresNeighbors(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)
	require.Equal(t, 12, g.Len())

	t.Run("corner has two neighbors", func(t *testing.T) {
		cell := g.Cell(Coord{0, 0})
		assert.Equal(t, []int{g.Index(Coord{0, 1}), g.Index(Coord{1, 0})}, cell.Neighbors)
	})

	t.Run("interior has four neighbors in up right down left order", func(t *testing.T) {
		cell := g.Cell(Coord{1, 1})
		assert.Equal(t, []int{
			g.Index(Coord{0, 1}),
			g.Index(Coord{1, 2}),
			g.Index(Coord{2, 1}),
			g.Index(Coord{1, 0}),
		}, cell.Neighbors)
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for i := 0; i < g.Len(); i++ {
			for _, n := range g.At(i).Neighbors {
				assert.Contains(t, g.At(n).Neighbors, i)
			}
		}
	})

	t.Run("all walls start closed", func(t *testing.T) {
		for i := 0; i < g.Len(); i++ {
			assert.Equal(t, [4]bool{true, true, true, true}, g.At(i).Walls)
			assert.False(t, g.At(i).Visited)
		}
	})
}

func TestCarve(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Carve(g.Index(Coord{0, 0}), g.Index(Coord{0, 1})))
	assert.False(t, g.HasWall(Coord{0, 0}, Right))
	assert.False(t, g.HasWall(Coord{0, 1}, Left))
	assert.True(t, g.HasWall(Coord{0, 0}, Down))

	require.NoError(t, g.Carve(g.Index(Coord{1, 1}), g.Index(Coord{0, 1})))
	assert.False(t, g.HasWall(Coord{1, 1}, Up))
	assert.False(t, g.HasWall(Coord{0, 1}, Down))

	assert.Equal(t, 2, g.Passages())

	err = g.Carve(g.Index(Coord{0, 0}), g.Index(Coord{1, 1}))
	assert.ErrorIs(t, err, ErrNotAdjacent)

	err = g.Carve(0, 99)
	assert.ErrorIs(t, err, ErrNotAdjacent)
}

func TestCanMove(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Carve(0, 1))

	assert.True(t, g.CanMove(Coord{0, 0}, Right))
	assert.True(t, g.CanMove(Coord{0, 1}, Left))
	assert.False(t, g.CanMove(Coord{0, 0}, Down))
	assert.False(t, g.CanMove(Coord{0, 0}, Up), "boundary")
	assert.False(t, g.CanMove(Coord{0, 0}, Left), "boundary")
	assert.False(t, g.CanMove(Coord{5, 5}, Up), "outside")
}

func TestCanMoveBoundaryWithOpenWall(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)
	// Even with the flag cleared by hand, the grid edge stays closed.
	g.Cell(Coord{0, 0}).Walls[Up] = false
	assert.False(t, g.CanMove(Coord{0, 0}, Up))
}

func TestReset(t *testing.T) {
	g, err := New(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Carve(0, 1))
	g.At(0).Visited = true

	g.Reset()
	assert.Zero(t, g.Passages())
	assert.False(t, g.At(0).Visited)
}

func TestString(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Carve(0, 1))

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, g.String())
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
		dr, dc   int
		name     string
	}{
		{Up, Down, -1, 0, "up"},
		{Right, Left, 0, 1, "right"},
		{Down, Up, 1, 0, "down"},
		{Left, Right, 0, -1, "left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
			dr, dc := tt.dir.Delta()
			assert.Equal(t, tt.dr, dr)
			assert.Equal(t, tt.dc, dc)
			assert.Equal(t, tt.name, tt.dir.String())

			from := Coord{5, 5}
			got, ok := DirectionBetween(from, from.Add(tt.dir))
			assert.True(t, ok)
			assert.Equal(t, tt.dir, got)
		})
	}

	_, ok := DirectionBetween(Coord{0, 0}, Coord{1, 1})
	assert.False(t, ok, "diagonal")
	_, ok = DirectionBetween(Coord{0, 0}, Coord{0, 0})
	assert.False(t, ok, "same cell")
}
