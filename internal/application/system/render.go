package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pacmaze/internal/ecs"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{0, 0, 0, 255}
	colorBorder   = color.RGBA{144, 238, 144, 255}
	colorWall     = color.RGBA{210, 4, 45, 255}
	colorCorridor = color.RGBA{255, 255, 255, 255}
	colorPlayer   = color.RGBA{255, 219, 88, 255}
	colorDot      = color.RGBA{255, 184, 151, 255}
	colorUnknown  = color.RGBA{255, 0, 255, 255}
)

// RenderSystem draws every live entity that has a placement
type RenderSystem struct {
	world *ecs.World
}

// NewRenderSystem creates a renderer over world
func NewRenderSystem(w *ecs.World) *RenderSystem {
	return &RenderSystem{world: w}
}

// Draw clears the screen and draws entities in insertion order
func (r *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	for _, e := range r.world.Entities() {
		p, ok := r.world.Placements.Get(e.ID())
		if !ok {
			continue
		}
		b := p.Bounds()
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.colorOf(e), false)
	}
}

func (r *RenderSystem) colorOf(e *ecs.Entity) color.RGBA {
	switch e.Tag() {
	case ecs.TagPlayer:
		return colorPlayer
	case ecs.TagDot:
		return colorDot
	case ecs.TagTile:
		t := r.world.Tiles.MustGet(e.ID())
		switch {
		case IsBorder(t):
			return colorBorder
		case t.Wall:
			return colorWall
		default:
			return colorCorridor
		}
	default:
		return colorUnknown
	}
}
