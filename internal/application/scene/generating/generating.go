// Package generating provides the scene that animates maze construction.
package generating

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/scene"
	"github.com/younwookim/pacmaze/internal/application/system"
	"github.com/younwookim/pacmaze/internal/infrastructure/config"
)

// NextFunc builds the scene shown once the level is ready
type NextFunc func(level *system.Level) scene.Scene

// Generating steps the level a few micro-steps per tick and redraws the
// partial board every frame
type Generating struct {
	level  *system.Level
	render *system.RenderSystem
	steps  int
	next   NextFunc
	ready  bool
	log    *zap.Logger
}

// New creates the generating scene. next is called once, when the level reports Ready.
func New(level *system.Level, cfg config.GenerationConfig, next NextFunc, log *zap.Logger) *Generating {
	return &Generating{
		level:  level,
		render: system.NewRenderSystem(level.World),
		steps:  cfg.StepsPerFrame,
		next:   next,
		log:    log,
	}
}

// Name implements scene.Scene
func (g *Generating) Name() string { return "generating" }

// Level returns the level under construction
func (g *Generating) Level() *system.Level { return g.level }

// Update implements scene.Scene
func (g *Generating) Update(_ float64) (scene.Scene, error) {
	for i := 0; i < g.steps && !g.level.Done(); i++ {
		g.level.Step()
	}
	if !g.level.Done() || g.ready {
		return nil, nil
	}
	g.ready = true

	stats := g.level.Maze().Stats()
	g.log.Info("level ready",
		zap.Int("steps", g.level.Steps()),
		zap.Int("carved", stats.Carved),
		zap.Int("pruned", stats.Pruned),
		zap.Int("backtracks", stats.Backtracks),
		zap.Int("dots", g.level.Dots()),
	)
	if g.next == nil {
		return nil, nil
	}
	return g.next(g.level), nil
}

// Draw implements scene.Scene
func (g *Generating) Draw(screen *ebiten.Image) {
	g.render.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  step %d", g.level.Phase(), g.level.Steps()))
}

// OnEnter implements scene.Scene
func (g *Generating) OnEnter() {
	g.log.Debug("generation started", zap.Int("steps_per_frame", g.steps))
}

// OnExit implements scene.Scene
func (g *Generating) OnExit() {}
