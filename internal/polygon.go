package internal

import "math"

// A simple polygon. There is an implicit edge from the last point back to the
// first.
type Polygon struct {
	Points []*Point
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Edge i runs from point i to point i+1, wrapping at the end.
func (poly Polygon) Edge(i int) Segment {
	n := len(poly.Points)
	return Segment{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// Shoelace area. Positive for loops that are clockwise on a y-down screen.
func (poly Polygon) SignedArea() float64 {
	return signedArea(len(poly.Points), func(i int) *Point { return poly.Points[i] })
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) Winding() Winding {
	return WindingOf(poly.Points)
}

// Even-odd point in polygon test by ray casting. Points exactly on the
// boundary may land on either side.
func (poly Polygon) ContainsPoint(p *Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := poly.Points[i]
		vj := poly.Points[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Axis aligned bounding box of the polygon.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// FindDuplicatePoint returns the first vertex whose coordinates repeat an
// earlier vertex, along with that earlier index.
func (poly Polygon) FindDuplicatePoint() (first, second int, found bool) {
	seen := make(map[Point]int, len(poly.Points))
	for i, p := range poly.Points {
		if j, ok := seen[*p]; ok {
			return j, i, true
		}
		seen[*p] = i
	}
	return 0, 0, false
}

// FindSelfIntersection returns the first pair of non-adjacent edges (by the
// index of their start points) that share any point. Polygons with fewer than
// four points have no non-adjacent edges.
func (poly Polygon) FindSelfIntersection() (first, second int, found bool) {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		edge := poly.Edge(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// The closing edge is adjacent to the first one
				continue
			}
			if edge.Touches(poly.Edge(j)) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func signedArea(n int, at func(int) *Point) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		a := at(i)
		b := at((i + 1) % n)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Number of polygons in the list that contain the point.
func (list PolygonList) ContainingCount(p *Point) int {
	count := 0
	for _, poly := range list {
		if poly.ContainsPoint(p) {
			count++
		}
	}
	return count
}

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}
