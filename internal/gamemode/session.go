package gamemode

import (
	"time"

	"github.com/sirupsen/logrus"

	"mazerunner/internal/config"
	"mazerunner/internal/maze"
)

// Session is the state a front-end owns: both variants, the active one
// and where new seeds come from.
type Session struct {
	Procedural *Procedural
	Static     *Static

	active   Mode
	nextSeed func() uint64
	log      *logrus.Entry
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// NewSession builds both variants from cfg. A zero cfg.Seed picks one from
// the clock; restarts always draw a fresh seed.
func NewSession(cfg config.Config, log *logrus.Entry) (*Session, error) {
	return newSession(cfg, log, timeSeed)
}

func newSession(cfg config.Config, log *logrus.Entry, seeds func() uint64) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = seeds()
	}

	procedural, err := NewProcedural(ProceduralOptions{
		Rows:          cfg.Rows,
		Cols:          cfg.Cols,
		Enemies:       cfg.Enemies,
		StepsPerFrame: cfg.GenSteps,
		PlayInterval:  cfg.PlayInterval,
	}, seed)
	if err != nil {
		return nil, err
	}

	static := NewStatic(maze.Default(), maze.DefaultStart, StaticOptions{
		CellSize:     cfg.CellSize,
		Speed:        cfg.RunnerSpeed,
		Enemies:      cfg.Enemies,
		PlayInterval: cfg.PlayInterval,
	}, seed)

	s := &Session{
		Procedural: procedural,
		Static:     static,
		nextSeed:   seeds,
		log:        log,
	}
	s.Select(cfg.Variant)
	return s, nil
}

func (s *Session) Mode() Mode { return s.active }

// Select switches the active variant. Unknown names fall back to procedural.
func (s *Session) Select(variant string) {
	next := Mode(s.Procedural)
	if variant == config.VariantStatic {
		next = s.Static
	}
	if next == s.active {
		return
	}
	s.active = next
	s.log.WithFields(logrus.Fields{
		"variant": next.Name(),
		"seed":    next.Seed(),
		"phase":   next.Phase().String(),
	}).Info("variant selected")
}

// Restart reruns the active variant with a new seed.
func (s *Session) Restart() {
	seed := s.nextSeed()
	s.active.Restart(seed)
	s.log.WithFields(logrus.Fields{
		"variant": s.active.Name(),
		"seed":    seed,
	}).Info("restarted")
}

// SkipGeneration finishes an in-progress carve immediately.
func (s *Session) SkipGeneration() Events {
	if s.active != Mode(s.Procedural) {
		return 0
	}
	ev := s.Procedural.Generate()
	s.report(ev)
	return ev
}

func (s *Session) Update(in Input) Events {
	ev := s.active.Update(in)
	s.report(ev)
	return ev
}

func (s *Session) report(ev Events) {
	m := s.active
	if ev.Has(EventGenerated) && m == Mode(s.Procedural) {
		s.log.WithFields(logrus.Fields{
			"seed":     m.Seed(),
			"steps":    s.Procedural.Generator().Steps(),
			"passages": s.Procedural.Grid().Passages(),
		}).Info("maze generated")
		s.log.Debug("maze layout\n" + s.Procedural.Grid().String())
	}
	if ev.Has(EventCaught) {
		s.log.WithField("variant", m.Name()).Info("caught by an enemy, back to start")
	}
	if ev.Has(EventWon) {
		s.log.WithFields(logrus.Fields{
			"variant": m.Name(),
			"seed":    m.Seed(),
		}).Info("goal reached")
	}
}
