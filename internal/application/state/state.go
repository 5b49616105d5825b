package state

// Phase is the level generation pipeline position
type Phase int

const (
	PhaseCarving Phase = iota
	PhaseHorizontalFill
	PhaseVerticalFill
	PhaseSpawning
	PhaseReady
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseCarving:
		return "Carving"
	case PhaseHorizontalFill:
		return "HorizontalFill"
	case PhaseVerticalFill:
		return "VerticalFill"
	case PhaseSpawning:
		return "Spawning"
	case PhaseReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// Generating reports whether the board is still being built
func (p Phase) Generating() bool {
	return p < PhaseSpawning
}
