// Package maze defines the movement capability shared by every maze source
// and the fixed-layout source used by the static variant.
package maze

import "mazerunner/internal/grid"

// Maze answers the only question agents ask of a level: may I step from
// here in that direction?
type Maze interface {
	Rows() int
	Cols() int
	// Passable reports whether an agent may occupy c.
	Passable(c grid.Coord) bool
	// CanMove reports whether a single step from c in d is permitted.
	CanMove(c grid.Coord, d grid.Direction) bool
}

var _ Maze = (*grid.Grid)(nil)
var _ Maze = (*Static)(nil)

// PassableCells lists every cell of m an agent may stand on, row-major.
func PassableCells(m Maze) []grid.Coord {
	cells := make([]grid.Coord, 0, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if p := (grid.Coord{Row: r, Col: c}); m.Passable(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
