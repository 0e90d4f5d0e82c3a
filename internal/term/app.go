package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"mazerunner/internal/config"
	"mazerunner/internal/gamemode"
)

// App runs a session on a terminal screen at a fixed tick rate.
type App struct {
	screen  tcell.Screen
	session *gamemode.Session
	render  *Renderer
	keys    Keys
	log     *logrus.Entry
	frame   time.Duration

	// OnEvents is called with the result of every update, e.g. for sound.
	OnEvents func(gamemode.Events)
}

func NewApp(screen tcell.Screen, session *gamemode.Session, log *logrus.Entry, tps int) *App {
	return &App{
		screen:   screen,
		session:  session,
		render:   NewRenderer(screen),
		log:      log,
		frame:    time.Second / time.Duration(tps),
		OnEvents: func(gamemode.Events) {},
	}
}

// HandleKey applies one key press. It returns false once the user quits.
func (a *App) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	switch a.keys.Handle(ev, now) {
	case ActionQuit:
		a.log.Info("quit requested")
		return false
	case ActionRestart:
		a.session.Restart()
	case ActionHint:
		a.render.ShowHint = !a.render.ShowHint
	case ActionSkip:
		a.OnEvents(a.session.SkipGeneration())
	case ActionProcedural:
		a.session.Select(config.VariantProcedural)
	case ActionStatic:
		a.session.Select(config.VariantStatic)
	}
	return true
}

// Step advances the session by one frame and redraws.
func (a *App) Step(now time.Time) gamemode.Events {
	ev := a.session.Update(gamemode.Input{
		Held:    a.keys.Held(now, HoldWindow(a.session)),
		Elapsed: a.frame,
	})
	a.OnEvents(ev)
	a.render.Draw(a.session)
	return ev
}

// Run polls the screen for input and steps on every tick until the user
// quits or the screen is finalized.
func (a *App) Run() error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	a.render.Draw(a.session)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.HandleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			a.Step(now)
		}
	}
}
