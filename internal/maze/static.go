package maze

import (
	"errors"
	"fmt"

	"mazerunner/internal/grid"
)

var ErrInvalidMatrix = errors.New("maze: invalid matrix")

// Tile is a single entry of a static layout.
type Tile int

const (
	Path Tile = iota
	Wall
	Goal
)

// Static is a fixed layout where whole cells are walls rather than the
// sides between them.
type Static struct {
	rows, cols int
	tiles      []Tile
	goal       grid.Coord
}

// NewStatic validates a 0/1/2 matrix: rectangular, known values only and
// exactly one goal.
func NewStatic(matrix [][]int) (*Static, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidMatrix)
	}

	s := &Static{
		rows:  len(matrix),
		cols:  len(matrix[0]),
		tiles: make([]Tile, 0, len(matrix)*len(matrix[0])),
	}

	goals := 0
	for r, row := range matrix {
		if len(row) != s.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, r, len(row), s.cols)
		}
		for c, v := range row {
			t := Tile(v)
			switch t {
			case Path, Wall:
			case Goal:
				goals++
				s.goal = grid.Coord{Row: r, Col: c}
			default:
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrInvalidMatrix, v, r, c)
			}
			s.tiles = append(s.tiles, t)
		}
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: %d goal cells", ErrInvalidMatrix, goals)
	}
	return s, nil
}

// Default returns the built-in 20x20 level. The player starts at (1,1).
func Default() *Static {
	s, err := NewStatic(defaultLayout)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultStart is where the player enters the built-in level.
var DefaultStart = grid.Coord{Row: 1, Col: 1}

func (s *Static) Rows() int        { return s.rows }
func (s *Static) Cols() int        { return s.cols }
func (s *Static) Goal() grid.Coord { return s.goal }

func (s *Static) InBounds(c grid.Coord) bool {
	return c.Row >= 0 && c.Row < s.rows && c.Col >= 0 && c.Col < s.cols
}

// At returns the tile under c; anything outside the matrix reads as Wall.
func (s *Static) At(c grid.Coord) Tile {
	if !s.InBounds(c) {
		return Wall
	}
	return s.tiles[c.Row*s.cols+c.Col]
}

func (s *Static) IsWall(c grid.Coord) bool {
	return s.At(c) == Wall
}

func (s *Static) Passable(c grid.Coord) bool {
	return !s.IsWall(c)
}

func (s *Static) CanMove(c grid.Coord, d grid.Direction) bool {
	return s.Passable(c) && s.Passable(c.Add(d))
}

var defaultLayout = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1},
	{1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 1},
	{1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 1},
	{1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 1},
	{1, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1},
	{1, 0, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 1, 1, 0, 1, 1},
	{1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1},
	{1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1},
	{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}
