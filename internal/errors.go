package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	ErrSelfIntersecting  = errors.New("polygon self-intersects")
	ErrNoValidDiagonal   = errors.New("no valid diagonal found for reflex vertex")
)

// DuplicatePointError names two vertices with the same coordinates, by their
// index in the input polygon. A repeated vertex has a zero length edge (or a
// pinch), so the angle at it is undefined.
type DuplicatePointError struct {
	First, Second int
	Point         *Point
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("%v: vertex %d repeats vertex %d at (%g, %g)",
		ErrDegeneratePolygon, e.Second, e.First, e.Point.X, e.Point.Y)
}

func (e *DuplicatePointError) Unwrap() error {
	return ErrDegeneratePolygon
}

// SelfIntersectionError identifies the first pair of non-adjacent edges found
// to touch. Edges are named by the index of their start point in the input
// polygon.
type SelfIntersectionError struct {
	First, Second int
}

func (e *SelfIntersectionError) Error() string {
	return fmt.Sprintf("%v: edge %d touches edge %d", ErrSelfIntersecting, e.First, e.Second)
}

func (e *SelfIntersectionError) Unwrap() error {
	return ErrSelfIntersecting
}

// NoDiagonalError carries the piece that could not be split. This does not
// happen for a simple polygon with exact arithmetic. In practice it points at
// near-collinear points; jittering the input is the usual fix.
type NoDiagonalError struct {
	Piece SubPolygon
	// Local index of the reflex vertex within Piece.
	Reflex int
}

// Index of the reflex vertex in the normalized polygon.
func (e *NoDiagonalError) Vertex() int {
	return e.Piece.Indices[e.Reflex]
}

func (e *NoDiagonalError) Error() string {
	p := e.Piece.Point(e.Reflex)
	return fmt.Sprintf("could not decompose polygon near vertex %d (%g, %g): %v",
		e.Vertex(), p.X, p.Y, ErrNoValidDiagonal)
}

func (e *NoDiagonalError) Unwrap() error {
	return ErrNoValidDiagonal
}
