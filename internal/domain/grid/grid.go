// Package grid maps interior board cells to the tile entities occupying them.
//
// The index is a flat array sized to the interior (index = row*InteriorWidth + col,
// with row/col counted from the first interior cell). A multi-cell wall block is
// referenced from every cell it covers.
package grid

import (
	"fmt"
	"strings"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// Index is the cell -> tile entity relation
type Index struct {
	world *ecs.World
	cells [board.InteriorCells]*ecs.Entity
}

// New creates an empty index reading tile components from world
func New(world *ecs.World) *Index {
	return &Index{world: world}
}

// Len returns the number of interior cells
func (g *Index) Len() int {
	return len(g.cells)
}

// CoordToIndex converts an interior board cell to its linear index.
// It panics if c lies outside the interior.
func (g *Index) CoordToIndex(c board.Cell) int {
	mustInterior(c)
	return (c.Y-board.Border)*board.InteriorWidth + (c.X - board.Border)
}

// IndexToCoord converts a linear index back to its board cell.
// It panics if idx is out of range.
func (g *Index) IndexToCoord(idx int) board.Cell {
	mustIndex(idx)
	return board.Cell{
		X: idx%board.InteriorWidth + board.Border,
		Y: idx/board.InteriorWidth + board.Border,
	}
}

// Place writes e into every cell its tile covers: the full W x H footprint for
// wall blocks, the origin cell otherwise. Footprint cells outside the interior
// are skipped.
func (g *Index) Place(e *ecs.Entity) {
	g.place(e, false)
}

// PlaceVacant is Place restricted to cells that are currently empty
func (g *Index) PlaceVacant(e *ecs.Entity) {
	g.place(e, true)
}

func (g *Index) place(e *ecs.Entity, vacantOnly bool) {
	t := g.world.Tiles.MustGet(e.ID())
	if !t.Wall {
		idx := g.CoordToIndex(t.Pos)
		if !vacantOnly || g.cells[idx] == nil {
			g.cells[idx] = e
		}
		return
	}
	for y := t.Pos.Y; y < t.Pos.Y+t.H; y++ {
		for x := t.Pos.X; x < t.Pos.X+t.W; x++ {
			c := board.Cell{X: x, Y: y}
			if !board.InInterior(c) {
				continue
			}
			idx := g.CoordToIndex(c)
			if vacantOnly && g.cells[idx] != nil {
				continue
			}
			g.cells[idx] = e
		}
	}
}

// Remove marks e inactive and clears the cells that reference it
func (g *Index) Remove(e *ecs.Entity) {
	e.Deactivate()
	t := g.world.Tiles.MustGet(e.ID())
	for y := t.Pos.Y; y < t.Pos.Y+t.H; y++ {
		for x := t.Pos.X; x < t.Pos.X+t.W; x++ {
			c := board.Cell{X: x, Y: y}
			if !board.InInterior(c) {
				continue
			}
			if idx := g.CoordToIndex(c); g.cells[idx] == e {
				g.cells[idx] = nil
			}
		}
	}
}

// IsOccupied reports whether any tile covers c
func (g *Index) IsOccupied(c board.Cell) bool {
	return g.cells[g.CoordToIndex(c)] != nil
}

// OccupantAt returns the tile covering c, or nil
func (g *Index) OccupantAt(c board.Cell) *ecs.Entity {
	return g.cells[g.CoordToIndex(c)]
}

// At returns the occupant of a linear index, or nil
func (g *Index) At(idx int) *ecs.Entity {
	mustIndex(idx)
	return g.cells[idx]
}

// Empty returns the number of unoccupied interior cells
func (g *Index) Empty() int {
	n := 0
	for _, e := range g.cells {
		if e == nil {
			n++
		}
	}
	return n
}

// Rows renders the interior one string per row: '#' wall block, '.' corridor tile,
// ' ' empty.
func (g *Index) Rows() []string {
	rows := make([]string, 0, board.InteriorHeight)
	var sb strings.Builder
	for idx, e := range g.cells {
		switch {
		case e == nil:
			sb.WriteByte(' ')
		case g.world.Tiles.MustGet(e.ID()).Wall:
			sb.WriteByte('#')
		default:
			sb.WriteByte('.')
		}
		if idx%board.InteriorWidth == board.InteriorWidth-1 {
			rows = append(rows, sb.String())
			sb.Reset()
		}
	}
	return rows
}

func mustInterior(c board.Cell) {
	if !board.InInterior(c) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside interior", c.X, c.Y))
	}
}

func mustIndex(idx int) {
	if idx < 0 || idx >= board.InteriorCells {
		panic(fmt.Sprintf("grid: index %d out of range", idx))
	}
}
