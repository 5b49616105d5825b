package board

// Direction is one of the four carving directions
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// AllDirections returns a fresh pool holding every direction
func AllDirections() []Direction {
	return []Direction{DirUp, DirLeft, DirDown, DirRight}
}

// Delta returns the cell offset of d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}
