package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"mazerunner/internal/assets"
	"mazerunner/internal/config"
	"mazerunner/internal/entity"
	"mazerunner/internal/gamemode"
)

// StatusBarHeight is the strip under the maze holding the debug line.
const StatusBarHeight = 20

// Game adapts a gamemode.Session to ebiten's Update/Draw/Layout loop.
type Game struct {
	cfg     config.Config
	log     *logrus.Entry
	session *gamemode.Session

	sprites *assets.Sprites
	sound   *Sound // nil when muted
	face    *text.GoTextFace

	showHint bool
	tick     int
}

func NewGame(cfg config.Config, log *logrus.Entry, sprites *assets.Sprites, sound *Sound) (*Game, error) {
	session, err := gamemode.NewSession(cfg, log)
	if err != nil {
		return nil, err
	}
	face, err := newBannerFace()
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		log:     log,
		session: session,
		sprites: sprites,
		sound:   sound,
		face:    face,
	}, nil
}

// ScreenSize is the pixel size of the active maze plus the status bar.
func (g *Game) ScreenSize() (int, int) {
	m := g.session.Mode().Maze()
	return m.Cols() * g.cfg.CellSize, m.Rows()*g.cfg.CellSize + StatusBarHeight
}

// --- UPDATE ---
func (g *Game) Update() error {
	g.tick++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	// Variant switching
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectVariant(config.VariantProcedural)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectVariant(config.VariantStatic)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHint = !g.showHint
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sound.Play(g.session.SkipGeneration())
	}

	ev := g.session.Update(gamemode.Input{
		Held:    heldKeys(),
		Elapsed: time.Second / time.Duration(ebiten.TPS()),
	})
	g.sound.Play(ev)
	return nil
}

func (g *Game) selectVariant(variant string) {
	g.session.Select(variant)
	ebiten.SetWindowSize(g.ScreenSize())
}

// heldKeys reads the arrow keys in up, right, down, left order.
func heldKeys() entity.Held {
	return entity.Held{
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
	}
}

// Layout: the logical screen always matches the maze, ebiten scales it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
