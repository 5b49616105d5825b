package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

func TestMazeState_String(t *testing.T) {
	assert.Equal(t, "Carving", MazeCarving.String())
	assert.Equal(t, "Pruning", MazePruning.String())
	assert.Equal(t, "Backtracking", MazeBacktracking.String())
	assert.Equal(t, "Done", MazeDone.String())
	assert.Equal(t, "Unknown", MazeState(9).String())
}

func TestNewMazeGenerator_PlacesSeed(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.SeedCell)

	path := m.Path()
	require.Len(t, path, 1)
	assert.Same(t, path[0], g.OccupantAt(board.SeedCell))
	assert.True(t, path[0].Active())
	assert.Zero(t, w.Pending())
	assert.Equal(t, MazeCarving, m.State())
}

func TestCarve_ExhaustedPoolReturnsOrigin(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.SeedCell)
	seed := m.Path()[0]

	setPool(w, seed, board.DirUp)
	placeWall(w, g, board.Cell{X: 3, Y: 13}, 1, 1)
	before := len(w.Entities())

	next, candidate := m.carve(seed)
	assert.Same(t, seed, next)
	require.NotNil(t, candidate)
	assert.False(t, candidate.Active())
	assert.Empty(t, w.Tiles.MustGet(seed.ID()).Directions)

	w.Flush()
	assert.Len(t, w.Entities(), before, "the rejected candidate never becomes live")
	assert.False(t, w.Tiles.Has(candidate.ID()))
}

func TestCarve_EmptyPool(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.SeedCell)
	seed := m.Path()[0]
	setPool(w, seed)

	next, candidate := m.carve(seed)
	assert.Same(t, seed, next)
	assert.Nil(t, candidate)
	assert.Zero(t, w.Pending())
}

func TestCarve_Success(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 10, Y: 10})
	seed := m.Path()[0]
	setPool(w, seed, board.DirRight)

	next := m.Carve(seed)
	require.NotSame(t, seed, next)
	tile := w.Tiles.MustGet(next.ID())
	assert.Equal(t, board.Cell{X: 11, Y: 10}, tile.Pos)
	assert.False(t, tile.Wall)
	assert.False(t, g.IsOccupied(tile.Pos), "carved tiles enter the grid when pushed")
	assert.Equal(t, 1, w.Pending())
}

func TestRejects(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 10, Y: 10})
	placeCorridor(w, g, board.Cell{X: 20, Y: 20})

	tests := []struct {
		name     string
		from, to board.Cell
		want     bool
	}{
		{"outside interior", board.Cell{X: 1, Y: 5}, board.Cell{X: 0, Y: 5}, true},
		{"occupied", board.Cell{X: 20, Y: 19}, board.Cell{X: 20, Y: 20}, true},
		{"diagonal touch", board.Cell{X: 11, Y: 12}, board.Cell{X: 11, Y: 11}, true},
		{"along the band", board.Cell{X: 1, Y: 5}, board.Cell{X: 1, Y: 6}, true},
		{"onto the band", board.Cell{X: 2, Y: 5}, board.Cell{X: 1, Y: 5}, false},
		{"off the band", board.Cell{X: 1, Y: 5}, board.Cell{X: 2, Y: 5}, false},
		{"open interior", board.Cell{X: 5, Y: 5}, board.Cell{X: 5, Y: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.rejects(tt.from, tt.to))
		})
	}
}

func TestDoubleThickness(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 20, Y: 20})

	placeCorridor(w, g, board.Cell{X: 5, Y: 5})
	placeCorridor(w, g, board.Cell{X: 6, Y: 5})
	placeCorridor(w, g, board.Cell{X: 5, Y: 6})

	assert.True(t, m.DoubleThickness(board.Cell{X: 6, Y: 6}), "would close a 2x2 block")
	assert.False(t, m.DoubleThickness(board.Cell{X: 7, Y: 5}), "extends a straight run")
	assert.True(t, m.DoubleThickness(board.Cell{X: 7, Y: 4}), "touches only diagonally")

	// Walls never count as corridor neighbors.
	placeWall(w, g, board.Cell{X: 10, Y: 10}, 2, 2)
	assert.False(t, m.DoubleThickness(board.Cell{X: 12, Y: 12}))
}

func TestStep_PrunesExhaustedEnd(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 10, Y: 10})
	seed := m.Path()[0]
	setPool(w, seed, board.DirRight)

	require.Equal(t, MazeCarving, m.Step())
	path := m.Path()
	require.Len(t, path, 2)
	end := path[1]
	endCell := board.Cell{X: 11, Y: 10}
	assert.Same(t, end, g.OccupantAt(endCell))

	setPool(w, end)
	require.Equal(t, MazePruning, m.Step())
	require.Equal(t, MazeCarving, m.Step())

	assert.Equal(t, []*ecs.Entity{seed}, m.Path())
	assert.False(t, g.IsOccupied(endCell))
	assert.False(t, end.Active())
	assert.Equal(t, 1, m.Stats().Pruned)
}

func TestStep_NeverPrunesLoneSeed(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.SeedCell)
	seed := m.Path()[0]
	setPool(w, seed)

	require.Equal(t, MazePruning, m.Step())
	require.Equal(t, MazeDone, m.Step())

	assert.True(t, m.Done())
	assert.True(t, seed.Active())
	assert.Same(t, seed, g.OccupantAt(board.SeedCell))
	assert.Zero(t, m.Stats().Pruned)

	// Done is terminal.
	assert.Equal(t, MazeDone, m.Step())
}

func TestStep_BacktracksFromNonPrunableEnd(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 10, Y: 10})
	seed := m.Path()[0]
	setPool(w, seed, board.DirRight)

	require.Equal(t, MazeCarving, m.Step())
	end := m.Path()[1]

	// A neighbor south-east of the end keeps it from looking like a dead end.
	placeCorridor(w, g, board.Cell{X: 12, Y: 11})
	setPool(w, end)
	setPool(w, seed, board.DirLeft)

	require.Equal(t, MazeBacktracking, m.Step())
	require.Equal(t, MazeCarving, m.Step())

	path := m.Path()
	require.Len(t, path, 2)
	assert.Same(t, seed, path[0])
	assert.Equal(t, board.Cell{X: 9, Y: 10}, w.Tiles.MustGet(path[1].ID()).Pos)
	assert.Same(t, end, g.OccupantAt(board.Cell{X: 11, Y: 10}), "backtracking keeps abandoned tiles")
	assert.Equal(t, 1, m.Stats().Backtracks)
}

func TestStep_BacktrackExhaustedFinishes(t *testing.T) {
	w, g := newBoard(t)
	m := newGenerator(t, w, g, board.Cell{X: 10, Y: 10})
	seed := m.Path()[0]
	setPool(w, seed, board.DirRight)
	require.Equal(t, MazeCarving, m.Step())
	end := m.Path()[1]

	placeCorridor(w, g, board.Cell{X: 12, Y: 11})
	setPool(w, end)
	setPool(w, seed)

	require.Equal(t, MazeBacktracking, m.Step())
	require.Equal(t, MazeDone, m.Step())
	assert.Len(t, m.Path(), 2)
	assert.Zero(t, w.Pending())
}

func TestMazeGenerator_RunsToCompletion(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 2024} {
		w, g := newBoard(t)
		m := NewMazeGenerator(w, g, rand.New(rand.NewSource(seed)), testLogger(t), board.SeedCell)

		for i := 0; i < 200000 && !m.Done(); i++ {
			m.Step()
			require.Zero(t, w.Pending(), "seed %d: world flushed after every step", seed)
		}
		require.True(t, m.Done(), "seed %d", seed)
		assert.Greater(t, m.Stats().Carved, 0, "seed %d", seed)

		assertNoCorridorSquares(t, w, g)
		assertCorridorsInGrid(t, w, g)
	}
}

// assertNoCorridorSquares checks no 2x2 block of corridor tiles exists
func assertNoCorridorSquares(t *testing.T, w *ecs.World, g *grid.Index) {
	t.Helper()
	corridor := func(c board.Cell) bool {
		e := g.OccupantAt(c)
		return e != nil && !w.Tiles.MustGet(e.ID()).Wall
	}
	for y := board.Border; y < board.Height-board.Border-1; y++ {
		for x := board.Border; x < board.Width-board.Border-1; x++ {
			c := board.Cell{X: x, Y: y}
			square := corridor(c) && corridor(c.Add(1, 0)) && corridor(c.Add(0, 1)) && corridor(c.Add(1, 1))
			require.False(t, square, "2x2 corridor at (%d,%d)", x, y)
		}
	}
}

// assertCorridorsInGrid checks every live corridor tile is indexed at its cell
func assertCorridorsInGrid(t *testing.T, w *ecs.World, g *grid.Index) {
	t.Helper()
	for _, e := range w.EntitiesByTag(ecs.TagTile) {
		tile := w.Tiles.MustGet(e.ID())
		if tile.Wall {
			continue
		}
		require.Same(t, e, g.OccupantAt(tile.Pos))
	}
}

func TestRandomDirection_PanicsOnEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.PanicsWithValue(t, "system: direction pool is empty", func() {
		randomDirection(rng, nil)
	})
	assert.Equal(t, board.DirLeft, randomDirection(rng, []board.Direction{board.DirLeft}))
}
