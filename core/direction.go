package core

// Direction is one of the four cardinal movement directions
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all cardinal directions in declaration order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit vector of the direction in screen space (y grows downward)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversing partner of d
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Reverses reports whether d and o form a reversing pair
func (d Direction) Reverses(o Direction) bool {
	return d.Opposite() == o
}

// Horizontal reports whether d moves along the x axis
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "Unknown"
}
