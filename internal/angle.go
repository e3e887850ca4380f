package internal

import "math"

// All geometry in this package uses screen coordinates: y grows downward. The
// normalized winding is clockwise on screen, which is a positive shoelace area
// in raw coordinates. Under that convention a convex vertex turns with a
// positive cross product and a reflex vertex turns with a negative one.

// Z component of (cur - prev) x (next - cur), with the points lifted to z = 0.
func TurnCross(prev, cur, next *Point) float64 {
	ax, ay := cur.X-prev.X, cur.Y-prev.Y
	bx, by := next.X-cur.X, next.Y-cur.Y
	return ax*by - ay*bx
}

// IsWide reports whether the interior angle at cur is reflex (greater than
// 180 degrees) for a clockwise loop. Collinear points are not wide.
func IsWide(prev, cur, next *Point) bool {
	return TurnCross(prev, cur, next) < 0
}

// MathAngle converts a screen space direction into a counterclockwise math
// angle in (-pi, pi]. This is the one place the y axis is inverted.
func MathAngle(dx, dy float64) float64 {
	return math.Atan2(-dy, dx)
}

// Angle of the direction from one point towards another.
func directionAngle(from, to *Point) float64 {
	return MathAngle(to.X-from.X, to.Y-from.Y)
}

// Lift angle by whole turns until it is strictly greater than floor.
func liftAbove(angle, floor float64) float64 {
	for angle <= floor {
		angle += 2 * math.Pi
	}
	return angle
}

// Signed turning angle at cur in (-pi, pi]. Positive turns are clockwise on
// screen.
func turnAngle(prev, cur, next *Point) float64 {
	cross := TurnCross(prev, cur, next)
	if cross == 0 {
		// Normalize -0 so that a reversal spike always measures +pi
		cross = 0
	}
	dot := (cur.X-prev.X)*(next.X-cur.X) + (cur.Y-prev.Y)*(next.Y-cur.Y)
	return math.Atan2(cross, dot)
}

// WindingOf determines the winding of a closed loop by summing the turning
// angle at every vertex. A simple loop turns by exactly one full turn, so the
// sign of the total is robust even when only a few vertices are reflex. A
// loop with no net turn (all points collinear) is treated as clockwise.
func WindingOf(points []*Point) Winding {
	n := len(points)
	var total float64
	for i, p := range points {
		total += turnAngle(points[CircularIndex(i-1, n)], p, points[CircularIndex(i+1, n)])
	}
	if total < 0 {
		return CounterClockwise
	}
	return Clockwise
}
