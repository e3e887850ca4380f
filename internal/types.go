package internal

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the decomposition are pointers. Pieces
// are views over the same points as the input polygon, so callers can compare
// vertices by identity. We never modify a point value from the original
// polygon.
type Segment struct {
	Start *Point
	End   *Point
}

type Triangle struct {
	A, B, C *Point
}

type TriangleList []*Triangle

type PolygonList []Polygon

// Winding is the rotational order of a polygon's vertices, as seen on a y-down
// screen.
type Winding int

const (
	// Clockwise on screen. This is the normalized winding that every piece of a
	// decomposition has.
	Clockwise Winding = iota
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "unknown"
}
