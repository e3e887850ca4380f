package internal

import (
	"log/slog"

	"github.com/osuushi/convexify/dbg"
	"github.com/pkg/errors"
)

// DiagonalPolicy decides what happens when a reflex vertex has no valid
// diagonal. Physics callers must not accept a non-convex piece, while editor
// tooling usually wants to keep going and highlight the offending region, so
// the choice is left to the caller.
type DiagonalPolicy int

const (
	// Abort the whole decomposition with a *NoDiagonalError. No partial result
	// is returned.
	FailOnMissingDiagonal DiagonalPolicy = iota
	// Move the piece to Decomposition.Unresolved, untouched, and keep
	// processing the rest of the work list.
	KeepUnresolved
)

func (p DiagonalPolicy) String() string {
	switch p {
	case FailOnMissingDiagonal:
		return "fail"
	case KeepUnresolved:
		return "keep"
	}
	return "unknown"
}

type Options struct {
	DiagonalPolicy DiagonalPolicy
}

type Decomposition struct {
	// The polygon every piece is a view of. Its points are the caller's points,
	// possibly in reverse order.
	Polygon *Polygon
	// Whether the input was counterclockwise and had to be reversed.
	Reversed bool
	// Convex pieces.
	Pieces []SubPolygon
	// Pieces that could not be split. Only populated under KeepUnresolved.
	Unresolved []SubPolygon
}

// Map an index into Polygon back to the index the caller supplied.
func (d *Decomposition) SourceIndex(i int) int {
	if d.Reversed {
		return len(d.Polygon.Points) - 1 - i
	}
	return i
}

func (d *Decomposition) ToPolygonList() PolygonList {
	list := make(PolygonList, len(d.Pieces))
	for i, piece := range d.Pieces {
		list[i] = piece.ToPolygon()
	}
	return list
}

// Triangles fans every convex piece.
func (d *Decomposition) Triangles() TriangleList {
	var result TriangleList
	for _, piece := range d.Pieces {
		result = append(result, piece.Fan()...)
	}
	return result
}

// Contains reports whether any piece contains the point. Each piece is convex,
// so this is the narrow-phase shape list a collision system would use.
func (d *Decomposition) Contains(p *Point) bool {
	return d.ToPolygonList().ContainingCount(p) > 0
}

// Decompose splits a simple polygon into convex pieces that share diagonals,
// cover it exactly, and do not overlap. The input may have either winding; a
// counterclockwise input is processed as a reversed copy, so the caller's
// slice is never reordered.
func Decompose(poly Polygon, opts Options) (*Decomposition, error) {
	if len(poly.Points) < 3 {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "got %d points, need at least 3", len(poly.Points))
	}
	if first, second, found := poly.FindDuplicatePoint(); found {
		return nil, &DuplicatePointError{First: first, Second: second, Point: poly.Points[second]}
	}
	if first, second, found := poly.FindSelfIntersection(); found {
		return nil, &SelfIntersectionError{First: first, Second: second}
	}

	logger := Logger()
	result := &Decomposition{}
	if poly.Winding() == CounterClockwise {
		poly = poly.Reverse()
		result.Reversed = true
		logger.Debug("reversed counterclockwise polygon", "points", len(poly.Points))
	} else {
		// Own the slice header so later reversal by the caller can't reach us
		poly = Polygon{append([]*Point(nil), poly.Points...)}
	}
	result.Polygon = &poly

	pieces, unresolved, err := decomposeSubPolygon(NewSubPolygon(result.Polygon), opts, logger)
	if err != nil {
		return nil, err
	}
	result.Pieces = pieces
	result.Unresolved = unresolved
	return result, nil
}

// The work list loop. The root must already be clockwise, simple and free of
// repeated vertices; this does no input validation.
func decomposeSubPolygon(root SubPolygon, opts Options, logger *slog.Logger) (pieces, unresolved []SubPolygon, err error) {
	debug := debugEnabled(logger)
	if debug {
		// Names only need to be stable within one run
		defer dbg.Forget()
	}

	stack := SubPolygonStack{&root}
	for !stack.Empty() {
		piece := stack.Pop()

		reflex, found := piece.FirstReflex()
		if !found {
			if debug {
				logger.Debug("convex piece", "piece", dbg.Name(piece), "points", piece.Len())
			}
			pieces = append(pieces, *piece)
			continue
		}

		target, found := piece.FindDiagonal(reflex)
		if !found {
			if opts.DiagonalPolicy == KeepUnresolved {
				if debug {
					logger.Debug("unresolved piece", "piece", dbg.Name(piece), "reflex", piece.Indices[reflex])
				}
				unresolved = append(unresolved, *piece)
				continue
			}
			return nil, nil, &NoDiagonalError{Piece: *piece, Reflex: reflex}
		}

		first, second := piece.Split(reflex, target)
		stack.Push(&first)
		stack.Push(&second)
		if debug {
			logger.Debug("split",
				"piece", dbg.Name(piece),
				"from", piece.Indices[reflex],
				"to", piece.Indices[target],
				"first", dbg.Name(&first),
				"second", dbg.Name(&second),
			)
		}
	}
	return pieces, unresolved, nil
}
