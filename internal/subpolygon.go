package internal

import (
	"fmt"
	"strings"
)

// A SubPolygon is a cyclic loop over some of the points of a shared polygon.
// Every algorithm works on local indices, which are positions in Indices, and
// only reaches the underlying point through Polygon.Points[Indices[i]].
//
// The polygon is borrowed. It must outlive the sub-polygon and must not be
// modified while any view of it is in use.
type SubPolygon struct {
	Polygon *Polygon
	Indices []int
}

// NewSubPolygon creates a view spanning every point of the polygon in order.
func NewSubPolygon(poly *Polygon) SubPolygon {
	indices := make([]int, len(poly.Points))
	for i := range indices {
		indices[i] = i
	}
	return SubPolygon{Polygon: poly, Indices: indices}
}

func (sp SubPolygon) Len() int {
	return len(sp.Indices)
}

// Point at local index i, wrapping in both directions.
func (sp SubPolygon) Point(i int) *Point {
	return sp.Polygon.Points[sp.Indices[CircularIndex(i, len(sp.Indices))]]
}

func (sp SubPolygon) Points() []*Point {
	points := make([]*Point, len(sp.Indices))
	for i, index := range sp.Indices {
		points[i] = sp.Polygon.Points[index]
	}
	return points
}

// Materialize the view as its own polygon. The points are shared, not copied.
func (sp SubPolygon) ToPolygon() Polygon {
	return Polygon{sp.Points()}
}

func (sp SubPolygon) SignedArea() float64 {
	return signedArea(sp.Len(), sp.Point)
}

// Local index of the edge from i to i+1.
func (sp SubPolygon) Edge(i int) Segment {
	return Segment{sp.Point(i), sp.Point(i + 1)}
}

// FirstReflex scans local indices in order and returns the lowest one whose
// interior angle is reflex. It returns false when the loop is convex.
func (sp SubPolygon) FirstReflex() (int, bool) {
	n := sp.Len()
	for i := 0; i < n; i++ {
		before := sp.Point((n + i - 1) % n)
		pi := sp.Point(i)
		after := sp.Point((i + 1) % n)
		if IsWide(before, pi, after) {
			return i, true
		}
	}
	return 0, false
}

func (sp SubPolygon) IsConvex() bool {
	_, found := sp.FirstReflex()
	return !found
}

// Fan triangulates the loop from its first local vertex. This is only a valid
// triangulation for convex loops, which is what decomposition produces. The
// triangles keep the loop's winding. Collinear vertices yield zero area
// triangles rather than being dropped, so there are always Len()-2 triangles.
func (sp SubPolygon) Fan() TriangleList {
	n := sp.Len()
	if n < 3 {
		fatalf("cannot fan degenerate sub-polygon with point count: %d", n)
	}
	triangles := make(TriangleList, 0, n-2)
	origin := sp.Point(0)
	for i := 1; i < n-1; i++ {
		triangles = append(triangles, &Triangle{origin, sp.Point(i), sp.Point(i + 1)})
	}
	return triangles
}

func (sp SubPolygon) String() string {
	parts := make([]string, len(sp.Indices))
	for i, index := range sp.Indices {
		p := sp.Polygon.Points[index]
		parts[i] = fmt.Sprintf("%d:(%g, %g)", index, p.X, p.Y)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
