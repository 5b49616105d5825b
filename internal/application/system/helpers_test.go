package system

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// newBoard returns a world with borders and an empty grid
func newBoard(t *testing.T) (*ecs.World, *grid.Index) {
	t.Helper()
	w := ecs.NewWorld()
	MakeBorders(w)
	return w, grid.New(w)
}

func placeCorridor(w *ecs.World, g *grid.Index, c board.Cell) *ecs.Entity {
	e := MakeTile(w, c, 1, 1, false)
	g.Place(e)
	w.Flush()
	return e
}

func placeWall(w *ecs.World, g *grid.Index, c board.Cell, width, height int) *ecs.Entity {
	e := MakeTile(w, c, width, height, true)
	g.Place(e)
	w.Flush()
	return e
}

func newGenerator(t *testing.T, w *ecs.World, g *grid.Index, seed board.Cell) *MazeGenerator {
	t.Helper()
	return NewMazeGenerator(w, g, rand.New(rand.NewSource(1)), testLogger(t), seed)
}

func setPool(w *ecs.World, e *ecs.Entity, dirs ...board.Direction) {
	w.Tiles.MustGet(e.ID()).Directions = dirs
}

// testLogger keeps per-tile debug lines out of the test output
func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel))
}
