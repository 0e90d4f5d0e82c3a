// Package gamemode owns the per-frame game state of both maze variants.
// Front-ends feed it an Input once per frame and draw whatever it exposes.
package gamemode

import (
	"fmt"
	"time"

	"mazerunner/internal/entity"
	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
)

type Phase int

const (
	PhaseGenerating Phase = iota // Maze still being carved
	PhasePlaying                 // Player and enemies moving
	PhaseWon                     // Goal reached, agents frozen until restart
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerating:
		return "generating"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Events reports what happened during one Update so front-ends can play
// sounds and log without diffing state.
type Events uint8

const (
	EventCarved Events = 1 << iota
	EventGenerated
	EventMoved
	EventCaught
	EventWon
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// Input is what the render/input collaborator supplies each frame.
type Input struct {
	Held    entity.Held
	Elapsed time.Duration
}

// Mode is one playable variant.
type Mode interface {
	Name() string
	Update(in Input) Events
	// Resolve checks the caught and goal conditions without moving anyone.
	Resolve() Events
	Restart(seed uint64)
	Phase() Phase
	Seed() uint64

	Maze() maze.Maze
	Start() grid.Coord
	Goal() grid.Coord
	PlayerCell() grid.Coord
	Enemies() []*entity.Enemy
	// Hint is the shortest path from the player to the goal, nil while the
	// maze is not playable.
	Hint() []grid.Coord
}

var (
	_ Mode = (*Procedural)(nil)
	_ Mode = (*Static)(nil)
)

// pacer gates gameplay steps to at most one per interval, remembering any
// direction held in between so short taps are not lost.
type pacer struct {
	interval time.Duration
	elapsed  time.Duration
	pending  entity.Held
}

// tick returns the directions to apply and whether a step is due.
func (p *pacer) tick(in Input) (entity.Held, bool) {
	for d, h := range in.Held {
		p.pending[d] = p.pending[d] || h
	}
	p.elapsed += in.Elapsed
	if p.elapsed < p.interval {
		return entity.Held{}, false
	}
	held := p.pending
	p.elapsed = 0
	p.pending = entity.Held{}
	return held, true
}

func (p *pacer) reset() {
	p.elapsed = 0
	p.pending = entity.Held{}
}

// caught reports whether any enemy shares the player's cell.
func caught(enemies []*entity.Enemy, at grid.Coord) bool {
	for _, e := range enemies {
		if e.Pos == at {
			return true
		}
	}
	return false
}
