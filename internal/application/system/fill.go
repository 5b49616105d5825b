package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/domain/grid"
	"github.com/younwookim/pacmaze/internal/ecs"
)

// HorizontalFill sweeps the interior row by row, turning each run of two or more
// empty cells into one wall block. Each Step stops right after materializing a
// block and resumes from the cell that ended the run.
type HorizontalFill struct {
	world   *ecs.World
	grid    *grid.Index
	log     *zap.Logger
	counter int
	blocks  int
}

// NewHorizontalFill creates a pass positioned at the first interior cell
func NewHorizontalFill(w *ecs.World, g *grid.Index, log *zap.Logger) *HorizontalFill {
	return &HorizontalFill{world: w, grid: g, log: log}
}

// Done reports whether the sweep has covered every interior cell
func (f *HorizontalFill) Done() bool { return f.counter >= f.grid.Len() }

// Counter returns the sweep position (row-major index)
func (f *HorizontalFill) Counter() int { return f.counter }

// Blocks returns the number of wall blocks created
func (f *HorizontalFill) Blocks() int { return f.blocks }

// Step runs the sweep until one block is placed or the board ends
func (f *HorizontalFill) Step() bool {
	run := 0
	for ; f.counter < f.grid.Len(); f.counter++ {
		occupant := f.grid.At(f.counter)
		if occupant == nil {
			run++
		}
		rowEnd := f.counter%board.InteriorWidth == board.InteriorWidth-1
		if occupant == nil && !rowEnd {
			continue
		}

		if run > 1 {
			last := f.grid.IndexToCoord(f.counter)
			if occupant != nil {
				last.X--
			}
			start := board.Cell{X: last.X - run + 1, Y: last.Y}
			f.grid.Place(MakeTile(f.world, start, run, 1, true))
			f.blocks++
			f.log.Debug("horizontal block", zap.Int("x", start.X), zap.Int("y", start.Y), zap.Int("len", run))
			break
		}
		run = 0
	}
	f.world.Flush()
	return f.Done()
}

// VerticalFill sweeps the interior column by column. A run collects empty cells
// and cells already covered by wall blocks; it ends at a corridor tile or the
// bottom of the column. Runs holding at least one empty cell become a vertical
// wall block that claims only the still-empty cells.
//
// A run of one is a pocket hemmed in by corridor tiles on all four sides; it is
// sealed with a 1x1 block so no interior cell stays empty.
type VerticalFill struct {
	world   *ecs.World
	grid    *grid.Index
	log     *zap.Logger
	counter int
	blocks  int
}

// NewVerticalFill creates a pass positioned at the top of the first column
func NewVerticalFill(w *ecs.World, g *grid.Index, log *zap.Logger) *VerticalFill {
	return &VerticalFill{world: w, grid: g, log: log}
}

// Done reports whether the sweep has covered every interior cell
func (f *VerticalFill) Done() bool { return f.counter >= f.grid.Len() }

// Counter returns the sweep position (row-major index, walked column-wise)
func (f *VerticalFill) Counter() int { return f.counter }

// Blocks returns the number of wall blocks created
func (f *VerticalFill) Blocks() int { return f.blocks }

// Step runs the sweep until one block is placed or the board ends
func (f *VerticalFill) Step() bool {
	run := 0
	empty := false
	for f.counter < f.grid.Len() {
		occupant := f.grid.At(f.counter)
		wall := occupant != nil && f.world.Tiles.MustGet(occupant.ID()).Wall
		switch {
		case occupant == nil:
			run++
			empty = true
		case wall:
			run++
		}

		cell := f.grid.IndexToCoord(f.counter)
		corridor := occupant != nil && !wall
		bottom := cell.Y == board.Height-board.Border-1
		if corridor || bottom {
			if empty {
				last := cell.Y
				if corridor {
					last--
				}
				start := board.Cell{X: cell.X, Y: last - run + 1}
				f.grid.PlaceVacant(MakeTile(f.world, start, 1, run, true))
				f.blocks++
				f.log.Debug("vertical block", zap.Int("x", start.X), zap.Int("y", start.Y), zap.Int("len", run))
				f.counter = nextInColumn(f.counter)
				break
			}
			run = 0
			empty = false
		}
		f.counter = nextInColumn(f.counter)
	}
	f.world.Flush()
	return f.Done()
}

// nextInColumn steps a row-major index down its column, wrapping to the top of
// the next column; past the last column it returns the interior cell count.
func nextInColumn(idx int) int {
	col := idx % board.InteriorWidth
	colBottom := col + (board.InteriorHeight-1)*board.InteriorWidth
	if idx != colBottom {
		return idx + board.InteriorWidth
	}
	if col != board.InteriorWidth-1 {
		return col + 1
	}
	return idx + 1
}
