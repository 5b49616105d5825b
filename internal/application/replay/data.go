package replay

// Version is written into every recording
const Version = "1.0"

// FrameInput records the arrow keys held during one frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
}

// Data contains everything needed to replay a session. The seed regenerates
// the same board before the frames are fed back.
type Data struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
