package system

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/state"
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// Level owns the simulation context (world + grid) and drives the generation
// pipeline one micro-step at a time: carving, horizontal fill, vertical fill,
// then player spawn.
type Level struct {
	World *ecs.World
	Grid  *grid.Index

	maze   *MazeGenerator
	hfill  *HorizontalFill
	vfill  *VerticalFill
	phase  state.Phase
	player *ecs.Entity
	dots   int
	steps  int
	log    *zap.Logger
}

// NewLevel builds the borders and the seed tile; rng drives carving
func NewLevel(rng *rand.Rand, log *zap.Logger) *Level {
	w := ecs.NewWorld()
	g := grid.New(w)
	MakeBorders(w)

	return &Level{
		World: w,
		Grid:  g,
		maze:  NewMazeGenerator(w, g, rng, log, board.SeedCell),
		hfill: NewHorizontalFill(w, g, log),
		vfill: NewVerticalFill(w, g, log),
		phase: state.PhaseCarving,
		log:   log,
	}
}

// Phase returns the current pipeline phase
func (l *Level) Phase() state.Phase { return l.phase }

// Done reports whether the board is built and the player spawned
func (l *Level) Done() bool { return l.phase == state.PhaseReady }

// Player returns the spawned player, or nil before spawning
func (l *Level) Player() *ecs.Entity { return l.player }

// Maze exposes the carving state machine
func (l *Level) Maze() *MazeGenerator { return l.maze }

// Dots returns the number of pellets spawned
func (l *Level) Dots() int { return l.dots }

// Steps returns the number of micro-steps taken
func (l *Level) Steps() int { return l.steps }

// Step advances exactly one micro-step of the current phase. It is a no-op once Ready.
func (l *Level) Step() state.Phase {
	if l.Done() {
		return l.phase
	}
	l.steps++

	switch l.phase {
	case state.PhaseCarving:
		if l.maze.Step() == MazeDone {
			l.enter(state.PhaseHorizontalFill)
		}
	case state.PhaseHorizontalFill:
		if l.hfill.Step() {
			l.log.Info("horizontal fill finished", zap.Int("blocks", l.hfill.Blocks()))
			l.enter(state.PhaseVerticalFill)
		}
	case state.PhaseVerticalFill:
		if l.vfill.Step() {
			l.log.Info("vertical fill finished",
				zap.Int("blocks", l.vfill.Blocks()),
				zap.Int("empty", l.Grid.Empty()),
			)
			l.enter(state.PhaseSpawning)
		}
	case state.PhaseSpawning:
		l.player = SpawnPlayer(l.World, board.SeedCell)
		l.dots = SpawnDots(l.World, l.Grid, board.SeedCell)
		l.log.Info("player spawned",
			zap.Int("x", board.SeedCell.X),
			zap.Int("y", board.SeedCell.Y),
			zap.Int("dots", l.dots),
		)
		l.enter(state.PhaseReady)
	}
	return l.phase
}

func (l *Level) enter(p state.Phase) {
	l.log.Debug("phase", zap.Stringer("from", l.phase), zap.Stringer("to", p), zap.Int("step", l.steps))
	l.phase = p
}

// Run steps until Ready or until maxSteps micro-steps have been taken
func (l *Level) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		if l.Step() == state.PhaseReady {
			return nil
		}
	}
	return fmt.Errorf("level not ready after %d steps (phase %s)", maxSteps, l.phase)
}
