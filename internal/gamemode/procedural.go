package gamemode

import (
	"fmt"
	"math/rand/v2"
	"time"

	"mazerunner/internal/entity"
	"mazerunner/internal/generator"
	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
	"mazerunner/internal/solver"
)

type ProceduralOptions struct {
	Rows, Cols    int
	Enemies       int
	StepsPerFrame int           // Generator steps per Update while carving
	PlayInterval  time.Duration // Minimum time between gameplay steps
}

// Procedural carves a fresh maze on screen, then lets the player race the
// wandering enemies from the top-left cell to the bottom-right one.
type Procedural struct {
	opts ProceduralOptions

	grid    *grid.Grid
	gen     *generator.Backtracker
	rng     *rand.Rand
	seed    uint64
	player  *entity.Player
	enemies []*entity.Enemy
	goal    grid.Coord
	phase   Phase
	pace    pacer
}

func NewProcedural(opts ProceduralOptions, seed uint64) (*Procedural, error) {
	g, err := grid.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, fmt.Errorf("procedural maze: %w", err)
	}
	if opts.StepsPerFrame < 1 {
		opts.StepsPerFrame = 1
	}

	p := &Procedural{
		opts:   opts,
		grid:   g,
		player: entity.NewPlayer(grid.Coord{}),
		goal:   grid.Coord{Row: opts.Rows - 1, Col: opts.Cols - 1},
		pace:   pacer{interval: opts.PlayInterval},
	}
	p.Restart(seed)
	return p, nil
}

func (p *Procedural) Name() string { return "procedural" }

// Restart throws the current maze away and starts carving a new one.
func (p *Procedural) Restart(seed uint64) {
	p.seed = seed
	p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p.grid.Reset()
	p.gen = generator.New(p.grid, p.rng)
	p.player.Reset()
	p.enemies = entity.NewEnemies(p.opts.Enemies, p.grid, p.rng)
	p.phase = PhaseGenerating
	p.pace.reset()
}

func (p *Procedural) Update(in Input) Events {
	switch p.phase {
	case PhaseGenerating:
		return p.carve()
	case PhasePlaying:
		held, due := p.pace.tick(in)
		if !due {
			return 0
		}
		return p.play(held)
	}
	return 0
}

// Generate finishes the carve in one go.
func (p *Procedural) Generate() Events {
	if p.phase != PhaseGenerating {
		return 0
	}
	p.gen.Run()
	p.phase = PhasePlaying
	return EventCarved | EventGenerated
}

func (p *Procedural) carve() Events {
	ev := EventCarved
	for i := 0; i < p.opts.StepsPerFrame; i++ {
		if p.gen.Step() == generator.Done {
			p.phase = PhasePlaying
			ev |= EventGenerated
			break
		}
	}
	return ev
}

func (p *Procedural) play(held entity.Held) Events {
	var ev Events
	if p.player.Move(p.grid, held) {
		ev |= EventMoved
	}
	for _, e := range p.enemies {
		e.Wander(p.grid, p.rng)
	}
	return ev | p.Resolve()
}

func (p *Procedural) Resolve() Events {
	if p.phase != PhasePlaying {
		return 0
	}

	var ev Events
	if caught(p.enemies, p.player.Pos) {
		p.player.Reset()
		ev |= EventCaught
	}
	if p.player.Pos == p.goal {
		p.phase = PhaseWon
		ev |= EventWon
	}
	return ev
}

func (p *Procedural) Hint() []grid.Coord {
	if p.phase != PhasePlaying {
		return nil
	}
	return solver.Path(p.grid, p.player.Pos, p.goal)
}

func (p *Procedural) Phase() Phase                      { return p.phase }
func (p *Procedural) Seed() uint64                      { return p.seed }
func (p *Procedural) Maze() maze.Maze                   { return p.grid }
func (p *Procedural) Grid() *grid.Grid                  { return p.grid }
func (p *Procedural) Generator() *generator.Backtracker { return p.gen }
func (p *Procedural) Start() grid.Coord                 { return p.player.Start }
func (p *Procedural) Goal() grid.Coord                  { return p.goal }
func (p *Procedural) Player() *entity.Player            { return p.player }
func (p *Procedural) PlayerCell() grid.Coord            { return p.player.Pos }
func (p *Procedural) Enemies() []*entity.Enemy          { return p.enemies }
