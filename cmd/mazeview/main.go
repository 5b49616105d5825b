// Command mazeview animates maze generation in the terminal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/system"
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/infrastructure/config"
	"github.com/younwookim/pacmaze/internal/infrastructure/logging"
)

const (
	runeBorder   = '#'
	runeWall     = '#'
	runeCorridor = '.'
	runePlayer   = '@'
)

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(144, 238, 144))
	styleWall     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(210, 4, 45))
	styleCorridor = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 219, 88)).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type viewer struct {
	screen tcell.Screen
	level  *system.Level
	delay  time.Duration
}

// frame renders the full board, border included, one string per row
func frame(level *system.Level) []string {
	rows := level.Grid.Rows()
	out := make([]string, 0, board.Height)
	edge := strings.Repeat(string(runeBorder), board.Width)

	out = append(out, edge)
	for y, row := range rows {
		line := []rune(string(runeBorder) + row + string(runeBorder))
		if level.Player() != nil && y+board.Border == board.SeedCell.Y {
			line[board.SeedCell.X] = runePlayer
		}
		out = append(out, string(line))
	}
	return append(out, edge)
}

func styleOf(x, y int, r rune) tcell.Style {
	switch {
	case x == 0 || y == 0 || x == board.Width-1 || y == board.Height-1:
		return styleBorder
	case r == runePlayer:
		return stylePlayer
	case r == runeWall:
		return styleWall
	default:
		return styleCorridor
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	for y, row := range frame(v.level) {
		for x, r := range []rune(row) {
			v.screen.SetContent(x, y, r, nil, styleOf(x, y, r))
		}
	}

	status := fmt.Sprintf("%-16s step %-6d q/Esc quits", v.level.Phase(), v.level.Steps())
	for x, r := range status {
		v.screen.SetContent(x, board.Height+1, r, nil, styleStatus)
	}
	v.screen.Show()
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	ticker := time.NewTicker(v.delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !v.level.Done() {
				v.level.Step()
			}
			v.draw()
		}
	}
}

func main() {
	seedFlag := flag.Int64("seed", 0, "Maze seed (0 = time)")
	delayFlag := flag.Duration("delay", 5*time.Millisecond, "Delay between generation steps")
	flag.Parse()

	// The screen owns the terminal; only warnings reach stderr.
	logger, err := logging.New(config.LoggingConfig{Level: "warn", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if *delayFlag <= 0 {
		fmt.Fprintln(os.Stderr, "delay must be positive")
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	v := &viewer{
		screen: screen,
		level:  system.NewLevel(rand.New(rand.NewSource(seed)), logger),
		delay:  *delayFlag,
	}
	v.run()
	screen.Fini()

	for _, row := range frame(v.level) {
		fmt.Println(row)
	}
	if !v.level.Done() {
		logger.Warn("viewer closed before the board was ready", zap.Int64("seed", seed), zap.Stringer("phase", v.level.Phase()))
	}
	fmt.Printf("seed %d  %s after %d steps\n", seed, v.level.Phase(), v.level.Steps())
}
