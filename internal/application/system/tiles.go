package system

import (
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// MakeTile creates a tile entity with placement and bounding box at pos.
// The entity is pending until the world is flushed.
func MakeTile(w *ecs.World, pos board.Cell, width, height int, wall bool) *ecs.Entity {
	e := w.CreateEntity(ecs.TagTile)
	w.Tiles.Set(e.ID(), ecs.NewTile(pos, width, height, wall))
	w.Placements.Set(e.ID(), ecs.Placement{W: float64(width), H: float64(height)})
	w.Boxes.Set(e.ID(), ecs.BoundingBox{})
	w.SetPosition(e.ID(), pos.Vec())
	return e
}

// moveTile relocates a tile that has not been placed in the grid yet
func moveTile(w *ecs.World, e *ecs.Entity, pos board.Cell) {
	w.Tiles.MustGet(e.ID()).Pos = pos
	w.SetPosition(e.ID(), pos.Vec())
}

// MakeBorders creates the four outer wall bands and flushes them into the world.
// Borders live outside the interior, so they never enter the grid index.
func MakeBorders(w *ecs.World) []*ecs.Entity {
	borders := []*ecs.Entity{
		MakeTile(w, board.Cell{X: 0, Y: 0}, board.Width, board.Border, true),
		MakeTile(w, board.Cell{X: board.Width - board.Border, Y: 0}, board.Border, board.Height, true),
		MakeTile(w, board.Cell{X: 0, Y: board.Height - board.Border}, board.Width, board.Border, true),
		MakeTile(w, board.Cell{X: 0, Y: 0}, board.Border, board.Height, true),
	}
	w.Flush()
	return borders
}

// IsBorder reports whether any part of the tile lies outside the interior
func IsBorder(t *ecs.Tile) bool {
	return t.Pos.X < board.Border || t.Pos.Y < board.Border ||
		t.Pos.X+t.W > board.Width-board.Border || t.Pos.Y+t.H > board.Height-board.Border
}
