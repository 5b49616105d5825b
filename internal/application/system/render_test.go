package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/ecs"
)

func TestRenderSystem_ColorOf(t *testing.T) {
	w, g := newBoard(t)
	corridor := placeCorridor(w, g, board.Cell{X: 5, Y: 5})
	wall := placeWall(w, g, board.Cell{X: 6, Y: 5}, 2, 1)
	player := SpawnPlayer(w, board.Cell{X: 5, Y: 5})
	placeCorridor(w, g, board.Cell{X: 8, Y: 5})
	SpawnDots(w, g, board.Cell{X: 5, Y: 5})
	border := w.EntitiesByTag(ecs.TagTile)[0]
	dot := w.EntitiesByTag(ecs.TagDot)[0]

	r := NewRenderSystem(w)
	assert.Equal(t, colorBorder, r.colorOf(border))
	assert.Equal(t, colorWall, r.colorOf(wall))
	assert.Equal(t, colorCorridor, r.colorOf(corridor))
	assert.Equal(t, colorPlayer, r.colorOf(player))
	assert.Equal(t, colorDot, r.colorOf(dot))
	assert.Equal(t, colorUnknown, r.colorOf(w.CreateEntity(ecs.TagEnemy)))
}

func TestRenderSystem_Draw(t *testing.T) {
	w, g := newBoard(t)
	placeCorridor(w, g, board.SeedCell)
	// An entity without a placement is skipped.
	w.CreateEntity(ecs.TagEnemy)
	w.Flush()

	screen := ebiten.NewImage(board.ScreenWidth(), board.ScreenHeight())
	assert.NotPanics(t, func() { NewRenderSystem(w).Draw(screen) })
}
