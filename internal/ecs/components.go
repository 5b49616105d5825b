package ecs

import (
	"slices"

	"github.com/younwookim/pacmaze/internal/domain/board"
)

// Tile is a grid-aligned block. Carved corridor tiles are 1x1 with Wall unset;
// fill blocks and borders have Wall set and may span several cells.
type Tile struct {
	Pos  board.Cell
	W, H int
	Wall bool

	// Directions still to try while carving from this tile.
	// Each entry is removed at most once and never re-added.
	Directions []board.Direction
}

// NewTile creates a tile with a full direction pool
func NewTile(pos board.Cell, w, h int, wall bool) Tile {
	return Tile{
		Pos:        pos,
		W:          w,
		H:          h,
		Wall:       wall,
		Directions: board.AllDirections(),
	}
}

// Unit reports whether the tile covers a single cell
func (t *Tile) Unit() bool {
	return t.W == 1 && t.H == 1
}

// Covers reports whether c lies inside the tile footprint
func (t *Tile) Covers(c board.Cell) bool {
	return c.X >= t.Pos.X && c.X < t.Pos.X+t.W && c.Y >= t.Pos.Y && c.Y < t.Pos.Y+t.H
}

// RemoveDirection drops d from the pool; it reports whether d was present
func (t *Tile) RemoveDirection(d board.Direction) bool {
	i := slices.Index(t.Directions, d)
	if i < 0 {
		return false
	}
	t.Directions = slices.Delete(t.Directions, i, i+1)
	return true
}

// Placement is the local grid-space position plus its derived world position.
// Write it through World.SetPosition / World.AddPosition so World stays in sync.
type Placement struct {
	Local board.Vec
	World board.Vec
	W, H  float64 // cells
}

// Bounds returns the world-space rectangle covered by the placement
func (p *Placement) Bounds() board.Rect {
	return board.Rect{
		X: p.World.X,
		Y: p.World.Y,
		W: p.W * board.TileSize,
		H: p.H * board.TileSize,
	}
}

// BoundingBox is the world-space collision rectangle
type BoundingBox struct {
	Rect board.Rect
}

// MovementQueueSize is the velocity lookahead capacity
const MovementQueueSize = 2

// Movement is a velocity queue: index 0 is applied, index 1 is the requested turn
type Movement struct {
	Velocities []board.Vec
}

// NewMovement creates a stationary movement component
func NewMovement() Movement {
	v := make([]board.Vec, 1, MovementQueueSize)
	return Movement{Velocities: v}
}

// Current returns the applied velocity
func (m *Movement) Current() board.Vec {
	return m.Velocities[0]
}

// Next returns the queued velocity, if any
func (m *Movement) Next() (board.Vec, bool) {
	if len(m.Velocities) < 2 {
		return board.Vec{}, false
	}
	return m.Velocities[1], true
}

// Dot is a pellet sitting in a corridor cell
type Dot struct {
	Cell board.Cell
	Big  bool
}
