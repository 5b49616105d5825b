package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/pacmaze/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("replay: no frames to save")

// Recorder captures per-frame input for later playback
type Recorder struct {
	data      Data
	recording bool
}

// NewRecorder starts a recording for a board generated from seed
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 144*60), // ~1 minute at 144 tps
		},
		recording: true,
	}
}

// RecordFrame appends one frame of input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		L: input.Left,
		R: input.Right,
		U: input.Up,
		D: input.Down,
	})
}

// Save writes the recording as indented JSON
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() { r.recording = false }

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool { return r.recording }

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// Data returns a snapshot of the recording
func (r *Recorder) Data() Data { return r.data }

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
