package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"mazerunner/internal/entity"
	"mazerunner/internal/gamemode"
	"mazerunner/internal/grid"
)

// --- Colors ---
var (
	ColBg      = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	ColVisited = color.RGBA{0x3e, 0x4a, 0x5c, 0xff}
	ColCursor  = color.RGBA{0x4e, 0xcd, 0xc4, 0xff}
	ColWall    = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ColPath    = color.RGBA{0xe8, 0xe2, 0xd0, 0xff}
	ColBlock   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	ColHint    = color.RGBA{0xff, 0xd1, 0x66, 0xff}
	ColBanner  = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
)

const (
	wallWidth  = 2
	bannerSize = 32
)

func newBannerFace() (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load banner font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: bannerSize}, nil
}

// --- DRAW ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	s := g.session
	switch s.Mode() {
	case gamemode.Mode(s.Procedural):
		g.drawGrid(screen, s.Procedural)
	case gamemode.Mode(s.Static):
		g.drawLevel(screen, s.Static)
	}

	m := s.Mode()
	if g.showHint {
		g.drawHint(screen, m.Hint())
	}
	gx, gy := g.cellOrigin(m.Goal())
	g.drawSprite(screen, g.sprites.Goal, gx, gy)
	for _, e := range m.Enemies() {
		g.drawEnemy(screen, e)
	}
	g.drawPlayer(screen)

	g.drawStatus(screen)
	if m.Phase() == gamemode.PhaseWon {
		g.drawBanner(screen, "You Win!")
	}
}

func (g *Game) cellOrigin(c grid.Coord) (float32, float32) {
	size := float32(g.cfg.CellSize)
	return float32(c.Col) * size, float32(c.Row) * size
}

// drawGrid shades visited cells, marks the carving cursor and strokes every
// standing wall.
func (g *Game) drawGrid(screen *ebiten.Image, p *gamemode.Procedural) {
	gr := p.Grid()
	size := float32(g.cfg.CellSize)

	for i := 0; i < gr.Len(); i++ {
		cell := gr.At(i)
		x, y := g.cellOrigin(cell.Coord)
		if cell.Visited {
			vector.DrawFilledRect(screen, x, y, size, size, ColVisited, false)
		}
	}

	if p.Phase() == gamemode.PhaseGenerating && p.Generator().Steps() > 0 {
		x, y := g.cellOrigin(p.Generator().Current())
		vector.DrawFilledRect(screen, x, y, size, size, ColCursor, false)
	}

	for i := 0; i < gr.Len(); i++ {
		cell := gr.At(i)
		x, y := g.cellOrigin(cell.Coord)
		if cell.Walls[grid.Up] {
			vector.StrokeLine(screen, x, y, x+size, y, wallWidth, ColWall, false)
		}
		if cell.Walls[grid.Right] {
			vector.StrokeLine(screen, x+size, y, x+size, y+size, wallWidth, ColWall, false)
		}
		if cell.Walls[grid.Down] {
			vector.StrokeLine(screen, x, y+size, x+size, y+size, wallWidth, ColWall, false)
		}
		if cell.Walls[grid.Left] {
			vector.StrokeLine(screen, x, y, x, y+size, wallWidth, ColWall, false)
		}
	}
}

func (g *Game) drawLevel(screen *ebiten.Image, s *gamemode.Static) {
	level := s.Level()
	size := float32(g.cfg.CellSize)
	for r := 0; r < level.Rows(); r++ {
		for c := 0; c < level.Cols(); c++ {
			at := grid.Coord{Row: r, Col: c}
			col := ColPath
			if level.IsWall(at) {
				col = ColBlock
			}
			x, y := g.cellOrigin(at)
			vector.DrawFilledRect(screen, x, y, size, size, col, false)
		}
	}
}

func (g *Game) drawHint(screen *ebiten.Image, path []grid.Coord) {
	half := float32(g.cfg.CellSize) / 2
	for _, c := range path {
		x, y := g.cellOrigin(c)
		vector.DrawFilledCircle(screen, x+half, y+half, half/4, ColHint, true)
	}
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	size := float32(g.cfg.CellSize)
	inset := size / 6
	x, y := g.cellOrigin(e.Pos)
	vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, e.Color, false)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	s := g.session
	if s.Mode() == gamemode.Mode(s.Static) {
		// The runner glides between cells, so draw it from its centre
		r := s.Static.Runner()
		half := float32(g.cfg.CellSize) / 2
		g.drawSprite(screen, g.sprites.Player, float32(r.X)-half, float32(r.Y)-half)
		return
	}
	x, y := g.cellOrigin(s.Mode().PlayerCell())
	g.drawSprite(screen, g.sprites.Player, x, y)
}

// drawSprite scales img to one cell with its top-left corner at x, y.
func (g *Game) drawSprite(screen, img *ebiten.Image, x, y float32) {
	b := img.Bounds()
	size := float64(g.cfg.CellSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	m := g.session.Mode()
	at := m.PlayerCell()
	msg := fmt.Sprintf("%s %s seed=%d at=%d,%d  1/2 R H Space Esc",
		m.Name(), m.Phase(), m.Seed(), at.Row, at.Col)
	_, h := g.ScreenSize()
	ebitenutil.DebugPrintAt(screen, msg, 2, h-StatusBarHeight+2)
}

func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	w, h := g.ScreenSize()
	tw, th := text.Measure(msg, g.face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(w)-tw)/2, (float64(h-StatusBarHeight)-th)/2)
	op.ColorScale.ScaleWithColor(ColBanner)
	text.Draw(screen, msg, g.face, op)
}
