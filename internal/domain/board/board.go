// Package board holds the fixed board geometry and the local/world coordinate transform.
package board

const (
	// Width and Height are the full board size in cells, border included
	Width  = 28
	Height = 30

	// Border is the thickness of the outer wall band in cells
	Border = 1

	// InteriorWidth and InteriorHeight bound the playable region
	InteriorWidth  = Width - 2*Border  // 26
	InteriorHeight = Height - 2*Border // 28

	// InteriorCells is the number of playable cells
	InteriorCells = InteriorWidth * InteriorHeight

	// TileSize is the edge length of one cell in world pixels
	TileSize = 8

	// OffsetX and OffsetY shift local cells in world space.
	// The y offset reserves a header band above the board.
	OffsetX = 0
	OffsetY = 3
)

// SeedCell is where carving starts and where the player spawns
var SeedCell = Cell{X: 3, Y: 14}

// ScreenWidth returns the logical screen width in pixels
func ScreenWidth() int { return Width * TileSize }

// ScreenHeight returns the logical screen height in pixels (header band included)
func ScreenHeight() int { return (Height + OffsetY) * TileSize }

// Cell is an integer board coordinate
type Cell struct {
	X, Y int
}

// Add returns the cell shifted by (dx, dy)
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbor of c in direction d
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Vec returns the cell as a local position
func (c Cell) Vec() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// InInterior reports whether c lies inside the playable region
func InInterior(c Cell) bool {
	return c.X >= Border && c.X < Width-Border && c.Y >= Border && c.Y < Height-Border
}

// OnBoundaryBand reports whether c is an interior cell touching the border
func OnBoundaryBand(c Cell) bool {
	return c.X == Border || c.X == Width-Border-1 || c.Y == Border || c.Y == Height-Border-1
}

// Vec is a position in local grid space (cells, fractional while moving)
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v * s
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// ToWorld converts a local position to world pixels
func ToWorld(local Vec) Vec {
	return Vec{
		X: TileSize * (local.X + OffsetX),
		Y: TileSize * (local.Y + OffsetY),
	}
}

// ToLocal converts world pixels back to a local position
func ToLocal(world Vec) Vec {
	return Vec{
		X: world.X/TileSize - OffsetX,
		Y: world.Y/TileSize - OffsetY,
	}
}

// Rect is an axis-aligned rectangle in world space
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.X+r.W, o.X+o.W)
	bottom := min(r.Y+r.H, o.Y+o.H)
	return left < right && top < bottom
}
