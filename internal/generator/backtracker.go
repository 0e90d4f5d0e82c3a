// Package generator carves perfect mazes with a randomized depth-first
// backtracker driven one step at a time.
package generator

import (
	"fmt"
	"math/rand/v2"

	"mazerunner/internal/grid"
)

type State int

const (
	Carving      State = iota // Cursor moved into a fresh cell
	Backtracking              // Cursor popped from the stack
	Done                      // Every cell visited
)

func (s State) String() string {
	switch s {
	case Carving:
		return "carving"
	case Backtracking:
		return "backtracking"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Backtracker owns the carve cursor and its stack for the lifetime of a
// single generation run.
type Backtracker struct {
	grid    *grid.Grid
	rng     *rand.Rand
	state   State
	current int
	stack   []int
	steps   int

	unvisited []int // scratch
}

// New starts a generator at cell (0,0). The grid is expected to be fresh
// (or Reset).
func New(g *grid.Grid, rng *rand.Rand) *Backtracker {
	return &Backtracker{
		grid:      g,
		rng:       rng,
		state:     Carving,
		stack:     make([]int, 0, g.Len()),
		unvisited: make([]int, 0, 4),
	}
}

// NewSeeded is New with a PCG source built from seed.
func NewSeeded(g *grid.Grid, seed uint64) *Backtracker {
	return New(g, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Step advances the carve by exactly one transition and returns the
// resulting state. Once Done, Step is a no-op.
func (b *Backtracker) Step() State {
	if b.state == Done {
		return Done
	}
	b.steps++

	cur := b.grid.At(b.current)
	if !cur.Visited {
		cur.Visited = true
		b.stack = append(b.stack, b.current)
	}

	b.unvisited = b.unvisited[:0]
	for _, n := range cur.Neighbors {
		if !b.grid.At(n).Visited {
			b.unvisited = append(b.unvisited, n)
		}
	}

	switch {
	case len(b.unvisited) > 0:
		next := b.unvisited[b.rng.IntN(len(b.unvisited))]
		// Neighbors are always orthogonal, Carve cannot fail here
		_ = b.grid.Carve(b.current, next)
		b.current = next
		b.state = Carving
	case len(b.stack) > 0:
		b.current = b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.state = Backtracking
	default:
		b.state = Done
	}
	return b.state
}

// Run steps until the maze is complete and returns the number of steps taken.
func (b *Backtracker) Run() int {
	start := b.steps
	for b.Step() != Done {
	}
	return b.steps - start
}

func (b *Backtracker) State() State { return b.state }
func (b *Backtracker) Done() bool   { return b.state == Done }
func (b *Backtracker) Steps() int   { return b.steps }

// Depth is the current length of the backtracking stack.
func (b *Backtracker) Depth() int { return len(b.stack) }

// Current is the cell under the carve head.
func (b *Backtracker) Current() grid.Coord {
	return b.grid.Coord(b.current)
}
