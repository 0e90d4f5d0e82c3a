// Package grid holds the rectangular cell model mazes are carved into.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize = errors.New("grid: rows and cols must be positive")
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Cell is a single square of the grid. Neighbors holds indexes into the
// owning grid in up, right, down, left order; boundary sides are omitted.
type Cell struct {
	Coord
	Walls     [4]bool // Top, Right, Bottom, Left
	Visited   bool
	Neighbors []int
}

// Grid stores cells row-major: index = row*cols + col.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New builds a rows x cols grid with every wall present.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &g.cells[r*cols+c]
			cell.Coord = Coord{Row: r, Col: c}
			cell.Walls = [4]bool{true, true, true, true}
			cell.Neighbors = make([]int, 0, 4)
			for _, d := range Directions {
				if n := cell.Coord.Add(d); g.InBounds(n) {
					cell.Neighbors = append(cell.Neighbors, g.Index(n))
				}
			}
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Len() int  { return len(g.cells) }

func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Cell returns the cell at c, or nil when c is outside the grid.
func (g *Grid) Cell(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.Index(c)]
}

func (g *Grid) At(idx int) *Cell {
	return &g.cells[idx]
}

// Carve removes the wall pair between cells a and b.
func (g *Grid) Carve(a, b int) error {
	if a < 0 || a >= len(g.cells) || b < 0 || b >= len(g.cells) {
		return fmt.Errorf("%w: index out of range (%d, %d)", ErrNotAdjacent, a, b)
	}
	from, to := &g.cells[a], &g.cells[b]
	d, ok := DirectionBetween(from.Coord, to.Coord)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, from.Coord, to.Coord)
	}
	from.Walls[d] = false
	to.Walls[d.Opposite()] = false
	return nil
}

// HasWall reports whether the side d of cell c is closed. Positions
// outside the grid count as walled in.
func (g *Grid) HasWall(c Coord, d Direction) bool {
	cell := g.Cell(c)
	if cell == nil {
		return true
	}
	return cell.Walls[d]
}

// Passable is true for every in-bounds cell; a carved grid has no solid cells.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c)
}

// CanMove reports whether one step from c in direction d stays on the grid
// without crossing a wall.
func (g *Grid) CanMove(c Coord, d Direction) bool {
	return g.InBounds(c.Add(d)) && !g.HasWall(c, d)
}

// Passages counts removed wall pairs. Each pair is counted once via the
// right and bottom sides of every cell.
func (g *Grid) Passages() int {
	n := 0
	for i := range g.cells {
		cell := &g.cells[i]
		if cell.Col < g.cols-1 && !cell.Walls[Right] {
			n++
		}
		if cell.Row < g.rows-1 && !cell.Walls[Down] {
			n++
		}
	}
	return n
}

// Reset restores every wall and clears the visited flags.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Walls = [4]bool{true, true, true, true}
		g.cells[i].Visited = false
	}
}

func (g *Grid) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for c := 0; c < g.cols; c++ {
		if g.cells[c].Walls[Up] {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for r := 0; r < g.rows; r++ {
		// Cell row
		if g.cells[r*g.cols].Walls[Left] {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c].Walls[Right] {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c].Walls[Down] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
