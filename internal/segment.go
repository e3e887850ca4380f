package internal

import "math"

// Sign of the cross product (b - a) x (c - a). Zero means the three points are
// collinear.
func orientation(a, b, c *Point) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Check whether p, known to be collinear with the segment, lies within its
// bounding box.
func (s Segment) boxContains(p *Point) bool {
	return p.X >= math.Min(s.Start.X, s.End.X) && p.X <= math.Max(s.Start.X, s.End.X) &&
		p.Y >= math.Min(s.Start.Y, s.End.Y) && p.Y <= math.Max(s.Start.Y, s.End.Y)
}

// Touches reports whether the closed segments share any point at all. This
// includes proper crossings, an endpoint lying on the other segment, and
// collinear overlap. Callers are responsible for skipping pairs that share a
// vertex.
func (s Segment) Touches(other Segment) bool {
	o1 := orientation(s.Start, s.End, other.Start)
	o2 := orientation(s.Start, s.End, other.End)
	o3 := orientation(other.Start, other.End, s.Start)
	o4 := orientation(other.Start, other.End, s.End)

	// Proper crossing
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}
	if o1 == 0 && s.boxContains(other.Start) {
		return true
	}
	if o2 == 0 && s.boxContains(other.End) {
		return true
	}
	if o3 == 0 && other.boxContains(s.Start) {
		return true
	}
	if o4 == 0 && other.boxContains(s.End) {
		return true
	}
	return false
}
