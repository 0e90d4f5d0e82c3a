package entity

import (
	"image/color"
	"math/rand/v2"

	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

var (
	ColorRed  = color.RGBA{0xe6, 0x29, 0x37, 0xff}
	ColorBlue = color.RGBA{0x00, 0x79, 0xf1, 0xff}
)

// Enemy wanders one random step per frame.
type Enemy struct {
	Pos   grid.Coord
	Color color.RGBA
}

// NewEnemies places n enemies on uniformly random passable cells. Colors
// alternate red, blue, red, ...
func NewEnemies(n int, m maze.Maze, rng *rand.Rand) []*Enemy {
	cells := maze.PassableCells(m)
	if n <= 0 || len(cells) == 0 {
		return nil
	}

	enemies := make([]*Enemy, n)
	for i := range enemies {
		clr := ColorRed
		if i%2 == 1 {
			clr = ColorBlue
		}
		enemies[i] = &Enemy{
			Pos:   cells[rng.IntN(len(cells))],
			Color: clr,
		}
	}
	return enemies
}

// Wander draws one of the four directions and takes it if the maze allows.
func (e *Enemy) Wander(m maze.Maze, rng *rand.Rand) bool {
	d := grid.Directions[rng.IntN(len(grid.Directions))]
	if !m.CanMove(e.Pos, d) {
		return false
	}
	e.Pos = e.Pos.Add(d)
	return true
}
