// Package advanced exposes the individual steps of convex decomposition, for
// callers that want to drive the work list themselves (for example, to
// animate the splits in an editor, or to stop once pieces are small enough).
//
// A typical loop looks like:
//
//	root := advanced.NewSubPolygon(&poly) // poly must already be clockwise
//	reflex, ok := root.FirstReflex()
//	if ok {
//		target, ok := root.FindDiagonal(reflex)
//		...
//		first, second := root.Split(reflex, target)
//	}
package advanced

import "github.com/osuushi/convexify/internal"

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type SubPolygon = internal.SubPolygon
type Winding = internal.Winding

const (
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

// Determine the winding of a loop by its total turning angle.
func WindingOf(points []*Point) Winding {
	return internal.WindingOf(points)
}

// Whether the angle at cur is reflex in a clockwise loop.
func IsWide(prev, cur, next *Point) bool {
	return internal.IsWide(prev, cur, next)
}

// Screen direction to counterclockwise math angle.
func MathAngle(dx, dy float64) float64 {
	return internal.MathAngle(dx, dy)
}

func NewSubPolygon(poly *Polygon) SubPolygon {
	return internal.NewSubPolygon(poly)
}

// Normalize returns the polygon in clockwise order, reversing a copy if
// needed, and reports whether it did.
func Normalize(poly Polygon) (Polygon, bool) {
	if poly.Winding() == CounterClockwise {
		return poly.Reverse(), true
	}
	return poly, false
}

// Split a sub-polygon, converting invariant panics (indices that are not a
// diagonal) into errors.
func Split(sp SubPolygon, a, b int) (first, second SubPolygon, err error) {
	defer func() {
		if recoveredErr := internal.HandleDecomposePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	first, second = sp.Split(a, b)
	return first, second, nil
}
