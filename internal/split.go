package internal

// Split partitions the loop along the diagonal between local indices a and b.
// The order of a and b does not matter. Both children keep the parent's
// winding, share its polygon, and contain both diagonal endpoints, so the
// diagonal is traversed once in each direction.
//
//	first:  0..=lo followed by hi..len (the outer loop)
//	second: lo..=hi                    (the loop cut off by the diagonal)
func (sp SubPolygon) Split(a, b int) (first, second SubPolygon) {
	n := sp.Len()
	if a < 0 || b < 0 || a >= n || b >= n {
		fatalf("split indices %d, %d out of range for sub-polygon of length %d", a, b, n)
	}
	if sp.isNeighborOrSelf(a, b) {
		fatalf("cannot split sub-polygon on edge %d-%d: not a diagonal", a, b)
	}

	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	outer := make([]int, 0, lo+1+n-hi)
	outer = append(outer, sp.Indices[:lo+1]...)
	outer = append(outer, sp.Indices[hi:]...)

	inner := make([]int, hi-lo+1)
	copy(inner, sp.Indices[lo:hi+1])

	first = SubPolygon{Polygon: sp.Polygon, Indices: outer}
	second = SubPolygon{Polygon: sp.Polygon, Indices: inner}
	return first, second
}
