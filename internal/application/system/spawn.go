package system

import (
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// dotSize is the pellet edge in cells; dots are centered in their cell
const dotSize = 0.25

// SpawnPlayer creates the player at cell and strips bounding boxes from every
// corridor tile so the player can walk the carved paths.
func SpawnPlayer(w *ecs.World, at board.Cell) *ecs.Entity {
	p := w.CreateEntity(ecs.TagPlayer)
	w.Placements.Set(p.ID(), ecs.Placement{W: 1, H: 1})
	w.Movements.Set(p.ID(), ecs.NewMovement())
	w.Boxes.Set(p.ID(), ecs.BoundingBox{})
	w.SetPosition(p.ID(), at.Vec())
	w.Flush()

	for _, t := range w.EntitiesByTag(ecs.TagTile) {
		if !w.Tiles.MustGet(t.ID()).Wall {
			w.Boxes.Remove(t.ID())
		}
	}
	return p
}

// SpawnDots puts one pellet on every corridor tile except skip and returns the count
func SpawnDots(w *ecs.World, g *grid.Index, skip board.Cell) int {
	n := 0
	for idx := 0; idx < g.Len(); idx++ {
		occupant := g.At(idx)
		if occupant == nil || w.Tiles.MustGet(occupant.ID()).Wall {
			continue
		}
		cell := g.IndexToCoord(idx)
		if cell == skip {
			continue
		}

		d := w.CreateEntity(ecs.TagDot)
		w.Dots.Set(d.ID(), ecs.Dot{Cell: cell})
		w.Placements.Set(d.ID(), ecs.Placement{W: dotSize, H: dotSize})
		w.Boxes.Set(d.ID(), ecs.BoundingBox{})
		w.SetPosition(d.ID(), cell.Vec().Add(board.Vec{X: (1 - dotSize) / 2, Y: (1 - dotSize) / 2}))
		n++
	}
	w.Flush()
	return n
}
