// Package game provides the main loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	log     *zap.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, tps int, log *zap.Logger) *Game {
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
		log:     log,
	}
	g.log.Debug("scene enter", zap.String("scene", initial.Name()))
	g.current.OnEnter()
	return g
}

// Current returns the active scene
func (g *Game) Current() scene.Scene { return g.current }

// Update updates the current scene and handles scene transitions.
// A terminating scene still gets OnExit so it can flush its state.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.log.Info("game terminated", zap.String("scene", g.current.Name()))
			g.current.OnExit()
		}
		return err
	}

	if next != nil {
		g.log.Info("scene transition",
			zap.String("from", g.current.Name()),
			zap.String("to", next.Name()),
		)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
