package grid

import "fmt"

// Coord is a (row, col) position on a maze.
type Coord struct {
	Row, Col int
}

func (c Coord) Add(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction doubles as the wall index: top, right, bottom, left.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in wall index order.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row and col offsets of one step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionBetween returns the direction leading from a to an orthogonally
// adjacent b.
func DirectionBetween(a, b Coord) (Direction, bool) {
	switch {
	case a.Row-b.Row == 1 && a.Col == b.Col:
		return Up, true
	case a.Col-b.Col == -1 && a.Row == b.Row:
		return Right, true
	case a.Row-b.Row == -1 && a.Col == b.Col:
		return Down, true
	case a.Col-b.Col == 1 && a.Row == b.Row:
		return Left, true
	}
	return 0, false
}
