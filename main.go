package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"mazerunner/internal/assets"
	"mazerunner/internal/config"
	"mazerunner/internal/logging"
)

const WindowTitle = "Maze Runner"

var log = logrus.New()

func main() {
	// 1. Config & Logging
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}
	run := logging.Run(log)
	run.WithFields(cfg.Fields()).Info("starting")

	// 2. Assets (missing sprites are fatal)
	sprites, err := assets.LoadSprites()
	if err != nil {
		run.Fatal("unable to load sprites: ", err)
	}
	defer sprites.Release()

	var sound *Sound
	if cfg.Sound {
		sound = NewSound()
	}

	// 3. Initialize Game
	game, err := NewGame(cfg, run, sprites, sound)
	if err != nil {
		run.Fatal("unable to create game: ", err)
	}

	// 4. Window Setup
	w, h := game.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(cfg.TPS)

	// 5. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		run.Error("game loop: ", err)
		return
	}
	run.Info("window closed")
}
