package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/younwookim/pacmaze/internal/application/system"
	"github.com/younwookim/pacmaze/internal/domain/board"
)

func TestFrame_ReadyBoard(t *testing.T) {
	level := system.NewLevel(rand.New(rand.NewSource(11)), zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)))
	require.NoError(t, level.Run(200000))

	rows := frame(level)
	require.Len(t, rows, board.Height)

	edge := strings.Repeat("#", board.Width)
	assert.Equal(t, edge, rows[0])
	assert.Equal(t, edge, rows[board.Height-1])

	for y, row := range rows {
		runes := []rune(row)
		require.Len(t, runes, board.Width, "row %d", y)
		assert.Equal(t, '#', runes[0])
		assert.Equal(t, '#', runes[board.Width-1])
		assert.NotContains(t, row, " ", "row %d has an unfilled cell", y)
	}
	assert.Equal(t, runePlayer, []rune(rows[board.SeedCell.Y])[board.SeedCell.X])
	assert.Equal(t, 1, strings.Count(strings.Join(rows, ""), string(runePlayer)))
}

func TestFrame_BeforeSpawn(t *testing.T) {
	level := system.NewLevel(rand.New(rand.NewSource(11)), zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel)))

	rows := frame(level)
	assert.Equal(t, runeCorridor, []rune(rows[board.SeedCell.Y])[board.SeedCell.X], "seed tile shows as corridor")
	assert.NotContains(t, strings.Join(rows, ""), string(runePlayer))
}

func TestStyleOf(t *testing.T) {
	assert.Equal(t, styleBorder, styleOf(0, 5, runeBorder))
	assert.Equal(t, styleBorder, styleOf(5, board.Height-1, runeBorder))
	assert.Equal(t, styleWall, styleOf(5, 5, runeWall))
	assert.Equal(t, stylePlayer, styleOf(3, 14, runePlayer))
	assert.Equal(t, styleCorridor, styleOf(5, 5, runeCorridor))
}

func TestHandleInput(t *testing.T) {
	v := &viewer{}

	assert.False(t, v.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, v.handleInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
