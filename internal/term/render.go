// Package term draws the maze game on a character terminal with tcell and
// turns key events into game input.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"mazerunner/internal/entity"
	"mazerunner/internal/gamemode"
	"mazerunner/internal/grid"
)

// Glyphs
const (
	RuneWall   = '█'
	RuneFloor  = ' '
	RuneSeen   = '·'
	RunePlayer = '@'
	RuneEnemy  = 'X'
	RuneGoal   = '$'
	RuneHint   = '+'
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFloor  = tcell.StyleDefault
	styleSeen   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorTeal).Reverse(true)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGoal   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true).Reverse(true)
)

// Renderer maps maze cells to screen positions. Carved mazes need a
// character between neighboring cells for the wall, static levels are
// drawn one tile per character.
type Renderer struct {
	screen   tcell.Screen
	ShowHint bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Place is the screen position of cell c in the active variant.
func Place(s *gamemode.Session, c grid.Coord) (x, y int) {
	if s.Mode() == gamemode.Mode(s.Procedural) {
		return 2*c.Col + 1, 2*c.Row + 1
	}
	return c.Col, c.Row
}

// Size is the number of columns and rows the maze occupies.
func Size(s *gamemode.Session) (w, h int) {
	m := s.Mode().Maze()
	if s.Mode() == gamemode.Mode(s.Procedural) {
		return 2*m.Cols() + 1, 2*m.Rows() + 1
	}
	return m.Cols(), m.Rows()
}

func (r *Renderer) Draw(s *gamemode.Session) {
	r.screen.Clear()

	if s.Mode() == gamemode.Mode(s.Procedural) {
		r.drawGrid(s.Procedural)
	} else {
		r.drawLevel(s.Static)
	}

	m := s.Mode()
	if r.ShowHint {
		for _, c := range m.Hint() {
			r.set(s, c, RuneHint, styleHint)
		}
	}
	r.set(s, m.Goal(), RuneGoal, styleGoal)
	for _, e := range m.Enemies() {
		r.set(s, e.Pos, RuneEnemy, enemyStyle(e))
	}
	r.set(s, m.PlayerCell(), RunePlayer, stylePlayer)

	_, h := Size(s)
	at := m.PlayerCell()
	r.print(0, h, styleStatus, fmt.Sprintf("%s %s seed=%d at=%d,%d", m.Name(), m.Phase(), m.Seed(), at.Row, at.Col))
	r.print(0, h+1, styleStatus, "arrows move  1/2 variant  r restart  h hint  space skip  esc quit")
	if m.Phase() == gamemode.PhaseWon {
		w, _ := Size(s)
		msg := " You Win! "
		r.print(max(0, (w-len(msg))/2), h/2, styleBanner, msg)
	}

	r.screen.Show()
}

func enemyStyle(e *entity.Enemy) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(e.Color.R), int32(e.Color.G), int32(e.Color.B))).Bold(true)
}

func (r *Renderer) set(s *gamemode.Session, c grid.Coord, ch rune, style tcell.Style) {
	x, y := Place(s, c)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) print(x, y int, style tcell.Style, msg string) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawGrid lays the carved grid out with a wall character on every cell
// corner and on each side that still has a wall.
func (r *Renderer) drawGrid(p *gamemode.Procedural) {
	g := p.Grid()
	for y := 0; y <= 2*g.Rows(); y += 2 {
		for x := 0; x <= 2*g.Cols(); x += 2 {
			r.screen.SetContent(x, y, RuneWall, nil, styleWall)
		}
	}

	cursor := p.Phase() == gamemode.PhaseGenerating && p.Generator().Steps() > 0
	for i := 0; i < g.Len(); i++ {
		cell := g.At(i)
		x, y := 2*cell.Col+1, 2*cell.Row+1

		ch, style := RuneFloor, styleFloor
		if cell.Visited && p.Phase() == gamemode.PhaseGenerating {
			ch, style = RuneSeen, styleSeen
		}
		if cursor && cell.Coord == p.Generator().Current() {
			style = styleCursor
		}
		r.screen.SetContent(x, y, ch, nil, style)

		for _, d := range grid.Directions {
			dr, dc := d.Delta()
			wall := RuneFloor
			if cell.Walls[d] {
				wall = RuneWall
			}
			r.screen.SetContent(x+dc, y+dr, wall, nil, styleWall)
		}
	}
}

func (r *Renderer) drawLevel(s *gamemode.Static) {
	level := s.Level()
	for row := 0; row < level.Rows(); row++ {
		for col := 0; col < level.Cols(); col++ {
			ch := RuneFloor
			if level.IsWall(grid.Coord{Row: row, Col: col}) {
				ch = RuneWall
			}
			r.screen.SetContent(col, row, ch, nil, styleWall)
		}
	}
}
