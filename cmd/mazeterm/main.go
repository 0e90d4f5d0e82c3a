// Command mazeterm plays the maze game in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"mazerunner/internal/config"
	"mazerunner/internal/gamemode"
	"mazerunner/internal/logging"
	"mazerunner/internal/term"
)

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// The screen owns stderr while the game runs
	if cfg.LogFile == "" {
		cfg.LogFile = "mazeterm.log"
	}
	if err := logging.Setup(log, cfg); err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	entry := logging.Run(log)
	entry.WithFields(cfg.Fields()).Info("starting")

	session, err := gamemode.NewSession(cfg, entry)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	var sound *Sound
	if cfg.Sound {
		// Non-fatal, the game runs without sound
		if sound, err = NewSound(); err != nil {
			entry.WithError(err).Warn("audio initialization failed")
		}
	}
	defer sound.Close()

	app := term.NewApp(screen, session, entry, cfg.TPS)
	app.OnEvents = sound.Play
	if err := app.Run(); err != nil {
		return err
	}
	entry.Info("terminal closed")
	return nil
}
