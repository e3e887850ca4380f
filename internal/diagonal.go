package internal

// A diagonal can fail in two ways. It can run into the boundary, or it can
// leave the from vertex on the outside of its interior angle, through the
// notch of a reflex vertex. Both must be rejected.

// Check whether local indices from and to are the same vertex or neighbors on
// the loop. Those are existing edges, not diagonals.
func (sp SubPolygon) isNeighborOrSelf(from, to int) bool {
	n := sp.Len()
	return to == from || to == CircularIndex(from-1, n) || to == CircularIndex(from+1, n)
}

// IsValidDiagonal reports whether the segment between local indices from and
// to lies inside the loop without touching its boundary anywhere but at its
// own endpoints.
func (sp SubPolygon) IsValidDiagonal(from, to int) bool {
	if sp.isNeighborOrSelf(from, to) {
		return false
	}
	return sp.missesBoundary(from, to) && sp.entersInterior(from, to)
}

// Every edge not incident to either endpoint must stay clear of the diagonal.
// Incident edges share a vertex with it and would always report a touch.
func (sp SubPolygon) missesBoundary(from, to int) bool {
	n := sp.Len()
	diagonal := Segment{sp.Point(from), sp.Point(to)}
	for idx1 := 0; idx1 < n; idx1++ {
		idx2 := (idx1 + 1) % n
		if idx1 == from || idx1 == to || idx2 == from || idx2 == to {
			continue
		}
		if diagonal.Touches(sp.Edge(idx1)) {
			return false
		}
	}
	return true
}

// The interior angle at from is swept counterclockwise (in math orientation)
// from the direction of the previous neighbor to the direction of the next
// one. The diagonal must leave strictly inside that sweep.
func (sp SubPolygon) entersInterior(from, to int) bool {
	origin := sp.Point(from)
	start := directionAngle(origin, sp.Point(from-1))
	end := liftAbove(directionAngle(origin, sp.Point(from+1)), start)
	candidate := liftAbove(directionAngle(origin, sp.Point(to)), start)
	return start < candidate && candidate < end
}

// FindDiagonal returns the lowest local index that forms a valid diagonal with
// the given reflex vertex.
func (sp SubPolygon) FindDiagonal(reflex int) (int, bool) {
	for candidate := 0; candidate < sp.Len(); candidate++ {
		if sp.isNeighborOrSelf(reflex, candidate) {
			continue
		}
		if sp.IsValidDiagonal(reflex, candidate) {
			return candidate, true
		}
	}
	return 0, false
}
