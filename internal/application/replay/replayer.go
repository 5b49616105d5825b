package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/pacmaze/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode replay %s: %w", filename, err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("replay %s: unsupported version %q", filename, data.Version)
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances.
// It reports false once every frame has been played.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int { return r.frame }

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int { return len(r.data.Frames) }

// Finished reports whether playback reached the last frame
func (r *Replayer) Finished() bool { return r.frame >= len(r.data.Frames) }

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 { return r.data.Seed }

// Reset rewinds to the first frame
func (r *Replayer) Reset() { r.frame = 0 }
