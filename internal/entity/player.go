package entity

import (
	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

// Held is the per-frame set of direction keys being held, indexed by
// grid.Direction.
type Held [4]bool

func (h Held) Any() bool {
	return h[grid.Up] || h[grid.Right] || h[grid.Down] || h[grid.Left]
}

// Player walks the grid one whole cell per held direction per frame.
type Player struct {
	Pos   grid.Coord
	Start grid.Coord
}

func NewPlayer(start grid.Coord) *Player {
	return &Player{Pos: start, Start: start}
}

// Move applies each held direction in up, right, down, left order, each
// from the position left by the previous one. Blocked directions are
// skipped. Reports whether the player ended up somewhere else.
func (p *Player) Move(m maze.Maze, held Held) bool {
	from := p.Pos
	for _, d := range grid.Directions {
		if held[d] && m.CanMove(p.Pos, d) {
			p.Pos = p.Pos.Add(d)
		}
	}
	return p.Pos != from
}

func (p *Player) Reset() {
	p.Pos = p.Start
}
