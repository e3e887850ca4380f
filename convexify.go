// Convex decomposition of simple polygons for Go.
//
// This package takes a simple polygon, which may be non-convex and may be
// given in either winding, and splits it along diagonals into convex pieces
// that share only the original points. The pieces cover the polygon exactly
// and never overlap, which makes them suitable as convex collision shapes or
// as triangle fans for rendering.
//
// Coordinates are screen space: y grows downward.
package convexify

import (
	"log/slog"

	"github.com/osuushi/convexify/internal"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type SubPolygon = internal.SubPolygon
type Decomposition = internal.Decomposition
type DiagonalPolicy = internal.DiagonalPolicy

type DuplicatePointError = internal.DuplicatePointError
type SelfIntersectionError = internal.SelfIntersectionError
type NoDiagonalError = internal.NoDiagonalError

const (
	FailOnMissingDiagonal = internal.FailOnMissingDiagonal
	KeepUnresolved        = internal.KeepUnresolved
)

var (
	ErrDegeneratePolygon = internal.ErrDegeneratePolygon
	ErrSelfIntersecting  = internal.ErrSelfIntersecting
	ErrNoValidDiagonal   = internal.ErrNoValidDiagonal
)

type Option func(*internal.Options)

// WithDiagonalPolicy chooses what happens when a reflex vertex has no valid
// diagonal. The default, FailOnMissingDiagonal, returns a *NoDiagonalError.
func WithDiagonalPolicy(policy DiagonalPolicy) Option {
	return func(o *internal.Options) {
		o.DiagonalPolicy = policy
	}
}

// Decompose splits the polygon formed by points into convex pieces.
//
// The polygon must be simple. Self-intersecting input fails with a
// *SelfIntersectionError and no pieces. Repeated vertices, including a closing
// point equal to the first, fail with a *DuplicatePointError. The points themselves are never
// modified or copied; every piece refers to them by index.
func Decompose(points []*Point, opts ...Option) (result *Decomposition, err error) {
	defer func() {
		recoveredErr := internal.HandleDecomposePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	var options internal.Options
	for _, opt := range opts {
		opt(&options)
	}
	return internal.Decompose(Polygon{Points: points}, options)
}

// FindSelfIntersection reports the first pair of non-adjacent edges that touch,
// named by the index of their start points. Editors can use it to highlight a
// bad outline without attempting a decomposition.
func FindSelfIntersection(points []*Point) (first, second int, found bool) {
	return Polygon{Points: points}.FindSelfIntersection()
}

// SetLogger enables debug logging of decomposition steps. Pass nil to silence
// it again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
