package system

import (
	"slices"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// MovementSystem applies queued velocities to players and resolves overlaps
// against walls and pellets
type MovementSystem struct {
	world *ecs.World
	eaten int
}

// NewMovementSystem creates a movement system over world
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{world: w}
}

// Eaten returns the number of pellets consumed so far
func (s *MovementSystem) Eaten() int { return s.eaten }

// QueueVelocity requests v as the next velocity. A request equal to the applied
// velocity is ignored; otherwise it fills or overwrites the lookahead slot.
func QueueVelocity(m *ecs.Movement, v board.Vec) {
	if m.Current() == v {
		return
	}
	if len(m.Velocities) == 1 {
		m.Velocities = append(m.Velocities, v)
		return
	}
	m.Velocities[1] = v
}

// Update moves every player one tick. The queued velocity is tried first; if it
// runs into a wall the player falls back to the applied one, otherwise the
// queued velocity becomes the applied one.
func (s *MovementSystem) Update() {
	eatenBefore := s.eaten
	for _, p := range s.world.EntitiesByTag(ecs.TagPlayer) {
		mov := s.world.Movements.MustGet(p.ID())
		next, ok := mov.Next()
		if !ok {
			s.world.AddPosition(p.ID(), mov.Current())
			s.collide(p, mov.Current())
			continue
		}

		s.world.AddPosition(p.ID(), next)
		if s.collide(p, next) {
			s.world.AddPosition(p.ID(), mov.Current())
			s.collide(p, mov.Current())
			continue
		}
		mov.Velocities = slices.Delete(mov.Velocities, 0, 1)
	}
	if s.eaten != eatenBefore {
		s.world.Flush()
	}
}

// collide reverts the last move if the player overlaps a wall and consumes any
// overlapped pellet. It reports whether a wall was hit.
func (s *MovementSystem) collide(p *ecs.Entity, vel board.Vec) bool {
	box := s.world.Boxes.MustGet(p.ID())

	hit := false
	for _, t := range s.world.EntitiesByTag(ecs.TagTile) {
		tb, ok := s.world.Boxes.Get(t.ID())
		if ok && box.Rect.Intersects(tb.Rect) {
			hit = true
			break
		}
	}
	for _, d := range s.world.EntitiesByTag(ecs.TagDot) {
		db, ok := s.world.Boxes.Get(d.ID())
		if ok && d.Active() && box.Rect.Intersects(db.Rect) {
			d.Deactivate()
			s.eaten++
		}
	}

	if hit {
		s.world.AddPosition(p.ID(), vel.Scale(-1))
	}
	return hit
}
