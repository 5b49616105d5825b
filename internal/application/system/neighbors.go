package system

import (
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// Neighbor is a bit set over the 8-neighborhood of a cell
type Neighbor uint8

const (
	North Neighbor = 1 << iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var neighborOffsets = [8]struct {
	bit    Neighbor
	dx, dy int
}{
	{North, 0, -1},
	{NorthEast, 1, -1},
	{East, 1, 0},
	{SouthEast, 1, 1},
	{South, 0, 1},
	{SouthWest, -1, 1},
	{West, -1, 0},
	{NorthWest, -1, -1},
}

// NeighborMask collects the neighbors of c whose occupying tile satisfies keep.
// Cells outside the interior never contribute.
func NeighborMask(g *grid.Index, w *ecs.World, c board.Cell, keep func(*ecs.Tile) bool) Neighbor {
	var m Neighbor
	for _, off := range neighborOffsets {
		n := c.Add(off.dx, off.dy)
		if !board.InInterior(n) {
			continue
		}
		occ := g.OccupantAt(n)
		if occ == nil {
			continue
		}
		if keep(w.Tiles.MustGet(occ.ID())) {
			m |= off.bit
		}
	}
	return m
}

// Pattern matches a mask when every Require bit is set and no Forbid bit is
type Pattern struct {
	Name    string
	Require Neighbor
	Forbid  Neighbor
}

// Match reports whether m fits the pattern
func (p Pattern) Match(m Neighbor) bool {
	return m&p.Require == p.Require && m&p.Forbid == 0
}

// DoubleThicknessPatterns are corridor-tile arrangements around a candidate cell
// that would leave it flush against a 2-wide corridor.
var DoubleThicknessPatterns = []Pattern{
	{Name: "corner W-NW-N", Require: West | NorthWest | North},
	{Name: "corner N-NE-E", Require: North | NorthEast | East},
	{Name: "corner E-SE-S", Require: East | SouthEast | South},
	{Name: "corner S-SW-W", Require: South | SouthWest | West},

	{Name: "diagonal NW", Require: NorthWest, Forbid: West | North},
	{Name: "diagonal NE", Require: NorthEast, Forbid: North | East},
	{Name: "diagonal SE", Require: SouthEast, Forbid: East | South},
	{Name: "diagonal SW", Require: SouthWest, Forbid: South | West},

	{Name: "bracket SW-S-N-NW", Require: SouthWest | South | North | NorthWest},
	{Name: "bracket NW-W-E-NE", Require: NorthWest | West | East | NorthEast},
	{Name: "bracket NE-N-S-SE", Require: NorthEast | North | South | SouthEast},
	{Name: "bracket SE-E-W-SW", Require: SouthEast | East | West | SouthWest},
	{Name: "zigzag NW-W-E-SE", Require: NorthWest | West | East | SouthEast},
	{Name: "zigzag NE-N-S-SW", Require: NorthEast | North | South | SouthWest},
	{Name: "zigzag NW-N-S-SE", Require: NorthWest | North | South | SouthEast},
	{Name: "zigzag NE-E-W-SW", Require: NorthEast | East | West | SouthWest},
}

// PrunePatterns mark a corridor tile as a disallowed short branch
var PrunePatterns = []Pattern{
	{Name: "open north", Forbid: West | NorthWest | North | NorthEast | East},
	{Name: "open east", Forbid: North | NorthEast | East | SouthEast | South},
	{Name: "open south", Forbid: East | SouthEast | South | SouthWest | West},
	{Name: "open west", Forbid: South | SouthWest | West | NorthWest | North},

	{Name: "I horizontal", Require: NorthWest | North | NorthEast | SouthWest | South | SouthEast},
	{Name: "I vertical", Require: NorthWest | West | SouthWest | NorthEast | East | SouthEast},
}

// MatchAny returns the first pattern that fits m
func MatchAny(patterns []Pattern, m Neighbor) (Pattern, bool) {
	for _, p := range patterns {
		if p.Match(m) {
			return p, true
		}
	}
	return Pattern{}, false
}

func isCorridor(t *ecs.Tile) bool { return !t.Wall }

func isUnit(t *ecs.Tile) bool { return t.Unit() }
