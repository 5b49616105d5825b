package system

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// MazeState is the carving state machine position
type MazeState int

const (
	MazeCarving MazeState = iota
	MazePruning
	MazeBacktracking
	MazeDone
)

// String returns the state name
func (s MazeState) String() string {
	switch s {
	case MazeCarving:
		return "Carving"
	case MazePruning:
		return "Pruning"
	case MazeBacktracking:
		return "Backtracking"
	case MazeDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// MazeStats counts generator events
type MazeStats struct {
	Carved     int
	Pruned     int
	Backtracks int
	Rejected   int
}

// MazeGenerator carves corridor tiles by randomized backtracking.
//
// The current path is a stack of placed corridor tiles; carving extends it from
// the top. Candidates are screened at carve time (bounds, occupancy, double
// thickness, border hugging) so the grid is valid between steps.
type MazeGenerator struct {
	world *ecs.World
	grid  *grid.Index
	rng   *rand.Rand
	log   *zap.Logger

	path  []*ecs.Entity
	state MazeState
	stats MazeStats
}

// NewMazeGenerator places a seed corridor tile at seed and starts carving from it
func NewMazeGenerator(w *ecs.World, g *grid.Index, rng *rand.Rand, log *zap.Logger, seed board.Cell) *MazeGenerator {
	start := MakeTile(w, seed, 1, 1, false)
	g.Place(start)
	w.Flush()

	return &MazeGenerator{
		world: w,
		grid:  g,
		rng:   rng,
		log:   log,
		path:  []*ecs.Entity{start},
		state: MazeCarving,
	}
}

// State returns the current state
func (m *MazeGenerator) State() MazeState { return m.state }

// Stats returns the event counters
func (m *MazeGenerator) Stats() MazeStats { return m.stats }

// Path returns a copy of the current path, seed first
func (m *MazeGenerator) Path() []*ecs.Entity {
	out := make([]*ecs.Entity, len(m.path))
	copy(out, m.path)
	return out
}

// Done reports whether carving has terminated
func (m *MazeGenerator) Done() bool { return m.state == MazeDone }

// Step advances one carve, prune or backtrack step and returns the new state
func (m *MazeGenerator) Step() MazeState {
	switch m.state {
	case MazeCarving:
		m.stepCarve()
	case MazePruning:
		m.stepPrune()
	case MazeBacktracking:
		m.stepBacktrack()
	}
	return m.state
}

func (m *MazeGenerator) stepCarve() {
	end := m.path[len(m.path)-1]
	next := m.Carve(end)
	if next != end {
		m.push(next)
		return
	}

	// drop the rejected candidate before the next adjacency query
	m.world.Flush()
	if m.Prunable(end) {
		m.state = MazePruning
	} else {
		m.state = MazeBacktracking
	}
}

// stepPrune removes the exhausted end tile. A lone seed is never pruned; the
// branch simply stops and its direction pool is left as it is.
func (m *MazeGenerator) stepPrune() {
	if len(m.path) == 1 {
		m.finish()
		return
	}

	end := m.path[len(m.path)-1]
	cell := m.world.Tiles.MustGet(end.ID()).Pos
	m.grid.Remove(end)
	m.path = m.path[:len(m.path)-1]
	m.world.Flush()
	m.stats.Pruned++
	m.log.Debug("pruned", zap.Int("x", cell.X), zap.Int("y", cell.Y), zap.Int("path", len(m.path)))

	m.state = MazeCarving
}

// stepBacktrack walks down the path until an ancestor yields a new tile
func (m *MazeGenerator) stepBacktrack() {
	m.stats.Backtracks++
	for i := len(m.path) - 2; i >= 0; i-- {
		ancestor := m.path[i]
		next := m.Carve(ancestor)
		if next != ancestor {
			m.path = m.path[:i+1]
			m.push(next)
			m.state = MazeCarving
			return
		}
	}
	m.world.Flush()
	m.finish()
}

func (m *MazeGenerator) push(e *ecs.Entity) {
	m.grid.Place(e)
	m.path = append(m.path, e)
	m.world.Flush()
	m.stats.Carved++

	if ce := m.log.Check(zap.DebugLevel, "carved"); ce != nil {
		cell := m.world.Tiles.MustGet(e.ID()).Pos
		ce.Write(zap.Int("x", cell.X), zap.Int("y", cell.Y), zap.Int("path", len(m.path)))
	}
}

func (m *MazeGenerator) finish() {
	m.state = MazeDone
	m.log.Info("carving finished",
		zap.Int("carved", m.stats.Carved),
		zap.Int("pruned", m.stats.Pruned),
		zap.Int("backtracks", m.stats.Backtracks),
		zap.Int("rejected", m.stats.Rejected),
	)
}

// Carve tries to extend from by one corridor tile.
//
// Directions are drawn uniformly from the tile's pool and each drawn direction
// is removed whether or not it succeeds. On success the new pending tile is
// returned (not yet in the grid). If the pool runs dry the candidate is
// deactivated and from itself is returned.
func (m *MazeGenerator) Carve(from *ecs.Entity) *ecs.Entity {
	next, _ := m.carve(from)
	return next
}

func (m *MazeGenerator) carve(from *ecs.Entity) (next, candidate *ecs.Entity) {
	t := m.world.Tiles.MustGet(from.ID())
	if len(t.Directions) == 0 {
		return from, nil
	}

	d := randomDirection(m.rng, t.Directions)
	cell := t.Pos.Step(d)
	candidate = MakeTile(m.world, cell, 1, 1, false)
	t.RemoveDirection(d)

	for m.rejects(t.Pos, cell) {
		m.stats.Rejected++
		if len(t.Directions) == 0 {
			candidate.Deactivate()
			return from, candidate
		}
		d = randomDirection(m.rng, t.Directions)
		cell = t.Pos.Step(d)
		t.RemoveDirection(d)
		moveTile(m.world, candidate, cell)
	}
	return candidate, candidate
}

func (m *MazeGenerator) rejects(from, cell board.Cell) bool {
	if !board.InInterior(cell) {
		return true
	}
	if m.grid.IsOccupied(cell) {
		return true
	}
	if m.DoubleThickness(cell) {
		return true
	}
	return board.OnBoundaryBand(from) && board.OnBoundaryBand(cell)
}

// DoubleThickness reports whether a corridor tile at c would match one of
// DoubleThicknessPatterns against the corridor tiles already placed
func (m *MazeGenerator) DoubleThickness(c board.Cell) bool {
	_, ok := MatchAny(DoubleThicknessPatterns, NeighborMask(m.grid, m.world, c, isCorridor))
	return ok
}

// Prunable reports whether the tile sits in a prune pattern of 1x1 neighbors
func (m *MazeGenerator) Prunable(e *ecs.Entity) bool {
	c := m.world.Tiles.MustGet(e.ID()).Pos
	_, ok := MatchAny(PrunePatterns, NeighborMask(m.grid, m.world, c, isUnit))
	return ok
}

// randomDirection picks uniformly from pool; an empty pool is a programming error
func randomDirection(rng *rand.Rand, pool []board.Direction) board.Direction {
	if len(pool) == 0 {
		panic("system: direction pool is empty")
	}
	return pool[rng.Intn(len(pool))]
}
