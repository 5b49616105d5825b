package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/ecs"
	"github.com/younwookim/pacmaze/internal/infrastructure/config"
)

// InputSystem handles player input
type InputSystem struct {
	speed float64 // cells per tick
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.PlayerConfig) *InputSystem {
	return &InputSystem{speed: 1 / float64(cfg.SpeedDivisor)}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Any reports whether a direction is held
func (s InputState) Any() bool {
	return s.Left || s.Right || s.Up || s.Down
}

// GetInput reads the arrow keys
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// Apply queues the requested velocity on every player.
// When several keys are held the last one checked (right, left, up, down) wins.
func (s *InputSystem) Apply(w *ecs.World, input InputState) {
	for _, p := range w.EntitiesByTag(ecs.TagPlayer) {
		mov := w.Movements.MustGet(p.ID())
		if input.Right {
			QueueVelocity(mov, board.Vec{X: s.speed})
		}
		if input.Left {
			QueueVelocity(mov, board.Vec{X: -s.speed})
		}
		if input.Up {
			QueueVelocity(mov, board.Vec{Y: -s.speed})
		}
		if input.Down {
			QueueVelocity(mov, board.Vec{Y: s.speed})
		}
	}
}
