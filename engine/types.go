package engine

// Direction is the snake's heading; DirIdle means not yet moving
type Direction uint8

const (
	DirIdle Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirIdle:  "idle",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Opposite returns the 180 degree turn of d; DirIdle has no opposite
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
		return DirIdle
	}
}

// Delta returns the row and column step of one move in direction d
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Point is a buffer coordinate
type Point struct {
	Row, Col int
}

// Step returns p moved n cells in direction d
func (p Point) Step(d Direction, n int) Point {
	dRow, dCol := d.Delta()
	return Point{Row: p.Row + n*dRow, Col: p.Col + n*dCol}
}

// Segment is one snake cell; only index 0 of a snake carries Head
type Segment struct {
	Point
	Head bool
}
