package geom

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the directed values in tie-break order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Vector returns the unit displacement of d. DirNone is the zero vector.
func (d Direction) Vector() Vector2 {
	dx, dy := DirDelta(d)
	return Vector2{X: float64(dx), Y: float64(dy)}
}

// Opposite maps each directed value to its reverse. DirNone stays DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsReverse reports whether b points exactly against a.
func IsReverse(a, b Direction) bool {
	return a != DirNone && a.Opposite() == b
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
