// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/replay"
	"github.com/younwookim/pacmaze/internal/application/scene"
	"github.com/younwookim/pacmaze/internal/application/system"
	"github.com/younwookim/pacmaze/internal/infrastructure/config"
)

// Options configures optional recording and playback
type Options struct {
	// RecordPath enables recording when not empty
	RecordPath string
	// Seed is stored in the recording so the board can be regenerated
	Seed int64
	// Replay feeds recorded input instead of the keyboard when set
	Replay *replay.Replayer
}

// Playing is the main gameplay scene
type Playing struct {
	level    *system.Level
	input    *system.InputSystem
	movement *system.MovementSystem
	render   *system.RenderSystem

	frame   int
	cleared bool

	// Input recording and playback
	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer
	replayDone bool

	log *zap.Logger
}

// New creates the playing scene over a Ready level
func New(level *system.Level, cfg config.PlayerConfig, opts Options, log *zap.Logger) *Playing {
	p := &Playing{
		level:      level,
		input:      system.NewInputSystem(cfg),
		movement:   system.NewMovementSystem(level.World),
		render:     system.NewRenderSystem(level.World),
		recordPath: opts.RecordPath,
		replayer:   opts.Replay,
		log:        log,
	}
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.Seed)
		log.Info("recording enabled", zap.String("path", opts.RecordPath), zap.Int64("seed", opts.Seed))
	}
	return p
}

// Name implements scene.Scene
func (p *Playing) Name() string { return "playing" }

// Frame returns the number of ticks played
func (p *Playing) Frame() int { return p.frame }

// Eaten returns the number of pellets consumed
func (p *Playing) Eaten() int { return p.movement.Eaten() }

// Cleared reports whether every pellet has been eaten
func (p *Playing) Cleared() bool { return p.cleared }

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }

// Update implements scene.Scene. Escape ends the game.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, ebiten.Termination
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	var input system.InputState
	if p.replayer != nil {
		input = p.replayInput()
	} else {
		input = p.input.GetInput()
	}
	p.Tick(input)
	return nil, nil
}

// Tick applies one frame of input: queue velocities, move, eat
func (p *Playing) Tick(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.input.Apply(p.level.World, input)
	p.movement.Update()
	p.frame++

	if !p.cleared && p.movement.Eaten() >= p.level.Dots() {
		p.cleared = true
		p.log.Info("board cleared", zap.Int("frame", p.frame), zap.Int("dots", p.level.Dots()))
	}
}

func (p *Playing) replayInput() system.InputState {
	input, ok := p.replayer.GetInput()
	if !ok && !p.replayDone {
		p.replayDone = true
		p.log.Info("replay finished", zap.Int("frames", p.replayer.TotalFrames()))
	}
	return input
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		p.log.Debug("nothing recorded")
	case err != nil:
		p.log.Error("failed to save recording", zap.Error(err))
	default:
		p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
	}
}

// Draw implements scene.Scene
func (p *Playing) Draw(screen *ebiten.Image) {
	p.render.Draw(screen)

	hud := fmt.Sprintf("DOTS %d/%d", p.movement.Eaten(), p.level.Dots())
	if p.cleared {
		hud += "  CLEAR"
	}
	if p.replayer != nil {
		hud += fmt.Sprintf("  REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, hud)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
