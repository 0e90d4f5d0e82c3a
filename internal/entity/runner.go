package entity

import (
	"math"
	"time"

	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

// Runner is the pixel-positioned player of the static level. X and Y are
// the sprite centre in maze pixels.
type Runner struct {
	X, Y     float64
	CellSize float64
	Speed    float64 // pixels per second

	start grid.Coord
}

func NewRunner(start grid.Coord, cellSize, speed float64) *Runner {
	r := &Runner{
		CellSize: cellSize,
		Speed:    speed,
		start:    start,
	}
	r.Reset()
	return r
}

func (r *Runner) Start() grid.Coord { return r.start }

// Cell is the cell containing the runner's centre.
func (r *Runner) Cell() grid.Coord {
	return r.cellAt(r.X, r.Y)
}

// Reset puts the runner back on the centre of its start cell.
func (r *Runner) Reset() {
	r.snap(r.start)
}

// Move slides the runner along each held direction by Speed*dt. A step is
// dropped when it would leave the maze, land in an impassable cell or
// skip past a neighbor. Entering a new cell snaps to that cell's centre so
// the runner never grazes corners or drifts along a wall.
func (r *Runner) Move(m maze.Maze, held Held, dt time.Duration) bool {
	// Never travel more than one cell per axis per frame
	step := math.Min(r.Speed*dt.Seconds(), r.CellSize)
	if step <= 0 {
		return false
	}

	moved := false
	for _, d := range grid.Directions {
		if !held[d] {
			continue
		}

		dr, dc := d.Delta()
		nx := r.X + float64(dc)*step
		ny := r.Y + float64(dr)*step

		width := float64(m.Cols()) * r.CellSize
		height := float64(m.Rows()) * r.CellSize
		if nx < 0 || ny < 0 || nx >= width || ny >= height {
			continue
		}

		cur := r.Cell()
		next := r.cellAt(nx, ny)
		switch {
		case next == cur:
			r.X, r.Y = nx, ny
		case next == cur.Add(d) && m.CanMove(cur, d):
			r.snap(next)
		default:
			continue
		}
		moved = true
	}
	return moved
}

func (r *Runner) cellAt(x, y float64) grid.Coord {
	return grid.Coord{
		Row: int(math.Floor(y / r.CellSize)),
		Col: int(math.Floor(x / r.CellSize)),
	}
}

func (r *Runner) snap(c grid.Coord) {
	r.X = (float64(c.Col) + 0.5) * r.CellSize
	r.Y = (float64(c.Row) + 0.5) * r.CellSize
}
