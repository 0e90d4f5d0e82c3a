package entity

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/generator"
	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

func held(dirs ...grid.Direction) Held {
	var h Held
	for _, d := range dirs {
		h[d] = true
	}
	return h
}

func TestPlayerBlockedByWalls(t *testing.T) {
	// Only the right side of (0,0) is open
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 0}), g.Index(grid.Coord{Row: 0, Col: 1})))

	p := NewPlayer(grid.Coord{})

	assert.False(t, p.Move(g, held(grid.Left)))
	assert.Equal(t, grid.Coord{}, p.Pos)

	assert.False(t, p.Move(g, held(grid.Up, grid.Down)))
	assert.Equal(t, grid.Coord{}, p.Pos)

	assert.True(t, p.Move(g, held(grid.Right)))
	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, p.Pos)

	p.Reset()
	assert.Equal(t, grid.Coord{}, p.Pos)
}

func TestPlayerAppliesDirectionsInOrder(t *testing.T) {
	// Right then down is open; down then right is not
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 0}), g.Index(grid.Coord{Row: 0, Col: 1})))
	require.NoError(t, g.Carve(g.Index(grid.Coord{Row: 0, Col: 1}), g.Index(grid.Coord{Row: 1, Col: 1})))

	p := NewPlayer(grid.Coord{})
	assert.True(t, p.Move(g, held(grid.Right, grid.Down)))
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, p.Pos)
}

func TestPlayerNeverCrossesWalls(t *testing.T) {
	g, err := grid.New(8, 8)
	require.NoError(t, err)
	generator.NewSeeded(g, 99).Run()

	rng := rand.New(rand.NewPCG(3, 4))
	p := NewPlayer(grid.Coord{})
	for i := 0; i < 2000; i++ {
		var h Held
		for _, d := range grid.Directions {
			h[d] = rng.IntN(2) == 0
		}
		before := p.Pos
		p.Move(g, h)
		require.True(t, g.InBounds(p.Pos))
		if p.Pos != before {
			assert.True(t, reachableWithin(g, before, p.Pos, 4),
				"%v -> %v jumped a wall", before, p.Pos)
		}
	}
}

// reachableWithin checks that to can be walked to from from in at most
// limit open steps.
func reachableWithin(m maze.Maze, from, to grid.Coord, limit int) bool {
	frontier := []grid.Coord{from}
	for i := 0; i <= limit; i++ {
		var next []grid.Coord
		for _, c := range frontier {
			if c == to {
				return true
			}
			for _, d := range grid.Directions {
				if m.CanMove(c, d) {
					next = append(next, c.Add(d))
				}
			}
		}
		frontier = next
	}
	return false
}

func TestNewEnemies(t *testing.T) {
	s := maze.Default()
	rng := rand.New(rand.NewPCG(1, 2))

	enemies := NewEnemies(5, s, rng)
	require.Len(t, enemies, 5)
	for i, e := range enemies {
		assert.True(t, s.Passable(e.Pos), "enemy %d spawned in a wall", i)
		if i%2 == 0 {
			assert.Equal(t, ColorRed, e.Color)
		} else {
			assert.Equal(t, ColorBlue, e.Color)
		}
	}

	assert.Nil(t, NewEnemies(0, s, rng))
}

func TestEnemyWanderRespectsWalls(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	generator.NewSeeded(g, 5).Run()

	rng := rand.New(rand.NewPCG(7, 8))
	enemies := NewEnemies(4, g, rng)
	for i := 0; i < 1000; i++ {
		for _, e := range enemies {
			before := e.Pos
			moved := e.Wander(g, rng)
			require.True(t, g.InBounds(e.Pos))
			if !moved {
				assert.Equal(t, before, e.Pos)
				continue
			}
			d, ok := grid.DirectionBetween(before, e.Pos)
			require.True(t, ok)
			assert.False(t, g.HasWall(before, d))
		}
	}
}

func TestEnemyBoxedIn(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 1))
	e := &Enemy{Pos: grid.Coord{Row: 1, Col: 1}}
	for i := 0; i < 50; i++ {
		assert.False(t, e.Wander(g, rng))
	}
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, e.Pos)
}

func TestRunner(t *testing.T) {
	s := maze.Default()
	const frame = 100 * time.Millisecond // 12px per frame at 120px/s

	t.Run("starts centred", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		assert.Equal(t, 45.0, r.X)
		assert.Equal(t, 45.0, r.Y)
		assert.Equal(t, maze.DefaultStart, r.Cell())
	})

	t.Run("slides within a cell then snaps into the next", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		assert.True(t, r.Move(s, held(grid.Right), frame))
		assert.InDelta(t, 57.0, r.X, 1e-9)
		assert.Equal(t, maze.DefaultStart, r.Cell())

		assert.True(t, r.Move(s, held(grid.Right), frame))
		assert.Equal(t, grid.Coord{Row: 1, Col: 2}, r.Cell())
		assert.Equal(t, 75.0, r.X)
		assert.Equal(t, 45.0, r.Y)
	})

	t.Run("stops before a wall cell", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		assert.True(t, r.Move(s, held(grid.Left), frame))
		assert.InDelta(t, 33.0, r.X, 1e-9)
		assert.False(t, r.Move(s, held(grid.Left), frame))
		assert.InDelta(t, 33.0, r.X, 1e-9)
		assert.Equal(t, maze.DefaultStart, r.Cell())
	})

	t.Run("huge frames move at most one cell", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		assert.True(t, r.Move(s, held(grid.Right), 10*time.Second))
		assert.Equal(t, grid.Coord{Row: 1, Col: 2}, r.Cell())
	})

	t.Run("reset", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		r.Move(s, held(grid.Right), frame)
		r.Reset()
		assert.Equal(t, 45.0, r.X)
		assert.Equal(t, maze.DefaultStart, r.Cell())
	})

	t.Run("zero elapsed time does nothing", func(t *testing.T) {
		r := NewRunner(maze.DefaultStart, 30, 120)
		assert.False(t, r.Move(s, held(grid.Right), 0))
	})
}

func TestRunnerNeverEntersWalls(t *testing.T) {
	s := maze.Default()
	rng := rand.New(rand.NewPCG(11, 12))
	r := NewRunner(maze.DefaultStart, 30, 240)

	for i := 0; i < 5000; i++ {
		var h Held
		h[grid.Directions[rng.IntN(4)]] = true
		dt := time.Duration(rng.IntN(200)) * time.Millisecond
		r.Move(s, h, dt)
		require.True(t, s.Passable(r.Cell()), "runner inside wall at %v", r.Cell())
	}
}

func TestHeldAny(t *testing.T) {
	assert.False(t, Held{}.Any())
	assert.True(t, held(grid.Left).Any())
}
