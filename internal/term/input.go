package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"mazerunner/internal/entity"
	"mazerunner/internal/gamemode"
	"mazerunner/internal/grid"
)

// Action is a non-movement command read from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
	ActionHint
	ActionSkip
	ActionProcedural
	ActionStatic
)

var arrows = map[tcell.Key]grid.Direction{
	tcell.KeyUp:    grid.Up,
	tcell.KeyRight: grid.Right,
	tcell.KeyDown:  grid.Down,
	tcell.KeyLeft:  grid.Left,
}

var commands = map[rune]Action{
	'q': ActionQuit,
	'r': ActionRestart,
	'h': ActionHint,
	' ': ActionSkip,
	'1': ActionProcedural,
	'2': ActionStatic,
}

// Keys tracks arrow presses. Terminals only report presses and their
// auto-repeat, never releases, so an arrow counts as held until a window
// after its last press has elapsed.
type Keys struct {
	last  [4]time.Time
	fresh entity.Held
}

// Handle records an arrow press or returns the command bound to the key.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		return commands[ev.Rune()]
	}
	if d, ok := arrows[ev.Key()]; ok {
		k.last[d] = now
		k.fresh[d] = true
	}
	return ActionNone
}

// Held reports every arrow pressed since the previous call or within
// window of now.
func (k *Keys) Held(now time.Time, window time.Duration) entity.Held {
	held := k.fresh
	for d, at := range k.last {
		if !at.IsZero() && now.Sub(at) < window {
			held[d] = true
		}
	}
	k.fresh = entity.Held{}
	return held
}

// HoldWindow is how long one press keeps an arrow held. Cell-stepping
// variants latch a press on their own; the gliding runner needs the key
// down long enough to cross a cell.
func HoldWindow(s *gamemode.Session) time.Duration {
	if s.Mode() != gamemode.Mode(s.Static) {
		return 0
	}
	r := s.Static.Runner()
	if r.Speed <= 0 {
		return 0
	}
	return time.Duration(r.CellSize / r.Speed * float64(time.Second))
}
