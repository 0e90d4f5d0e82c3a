package gamemode

import (
	"math/rand/v2"
	"time"

	"mazerunner/internal/entity"
	"mazerunner/internal/grid"
	"mazerunner/internal/maze"
	"mazerunner/internal/solver"
)

type StaticOptions struct {
	CellSize     int
	Speed        float64 // Runner speed, pixels per second
	Enemies      int
	PlayInterval time.Duration // Minimum time between enemy steps
}

// Static is the fixed 20x20 level. The player glides in pixel space while
// enemies still hop whole cells.
type Static struct {
	opts StaticOptions

	level   *maze.Static
	runner  *entity.Runner
	enemies []*entity.Enemy
	rng     *rand.Rand
	seed    uint64
	phase   Phase
	pace    pacer
}

func NewStatic(level *maze.Static, start grid.Coord, opts StaticOptions, seed uint64) *Static {
	s := &Static{
		opts:   opts,
		level:  level,
		runner: entity.NewRunner(start, float64(opts.CellSize), opts.Speed),
		pace:   pacer{interval: opts.PlayInterval},
	}
	s.Restart(seed)
	return s
}

func (s *Static) Name() string { return "static" }

func (s *Static) Restart(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s.runner.Reset()
	s.enemies = entity.NewEnemies(s.opts.Enemies, s.level, s.rng)
	s.phase = PhasePlaying
	s.pace.reset()
}

func (s *Static) Update(in Input) Events {
	if s.phase != PhasePlaying {
		return 0
	}

	var ev Events
	if s.runner.Move(s.level, in.Held, in.Elapsed) {
		ev |= EventMoved
	}
	if _, due := s.pace.tick(Input{Elapsed: in.Elapsed}); due {
		for _, e := range s.enemies {
			e.Wander(s.level, s.rng)
		}
	}
	return ev | s.Resolve()
}

func (s *Static) Resolve() Events {
	if s.phase != PhasePlaying {
		return 0
	}

	var ev Events
	if caught(s.enemies, s.runner.Cell()) {
		s.runner.Reset()
		ev |= EventCaught
	}
	if s.runner.Cell() == s.level.Goal() {
		s.phase = PhaseWon
		ev |= EventWon
	}
	return ev
}

func (s *Static) Hint() []grid.Coord {
	if s.phase != PhasePlaying {
		return nil
	}
	return solver.Path(s.level, s.runner.Cell(), s.level.Goal())
}

func (s *Static) Phase() Phase             { return s.phase }
func (s *Static) Seed() uint64             { return s.seed }
func (s *Static) Maze() maze.Maze          { return s.level }
func (s *Static) Level() *maze.Static      { return s.level }
func (s *Static) Start() grid.Coord        { return s.runner.Start() }
func (s *Static) Goal() grid.Coord         { return s.level.Goal() }
func (s *Static) Runner() *entity.Runner   { return s.runner }
func (s *Static) PlayerCell() grid.Coord   { return s.runner.Cell() }
func (s *Static) Enemies() []*entity.Enemy { return s.enemies }
