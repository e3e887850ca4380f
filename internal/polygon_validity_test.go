package internal

// This contains no actual tests. It is just a helper for testing decomposition
// validity.

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a decomposition is valid. The rules are:
// 1. Nothing was left unresolved.
// 2. Every piece is convex, has at least 3 points, and keeps the clockwise winding.
// 3. The set of points in the pieces equals the set of points in the polygon.
// 4. Every polygon edge belongs to exactly one piece, and every other piece edge
// is a diagonal traversed exactly once in each direction.
// 5. The sum of the areas of all pieces is equal to the area of the polygon.
// 6. Sampled points inside the polygon are in exactly one piece, and sampled
// points outside it are in none.
func AssertValidDecomposition(t *testing.T, polygon *Polygon, d *Decomposition) {
	t.Helper()
	require.NotNil(t, d)
	require.Empty(t, d.Unresolved, "unresolved pieces: %s", spew.Sdump(d.Unresolved))
	require.NotEmpty(t, d.Pieces)

	for _, piece := range d.Pieces {
		require.GreaterOrEqual(t, piece.Len(), 3, "degenerate piece %s", piece)
		reflex, found := piece.FirstReflex()
		require.False(t, found, "piece %s has reflex vertex %d", piece, reflex)
		require.Greater(t, piece.SignedArea(), 0.0, "piece %s is not clockwise", piece)
		require.Same(t, d.Polygon, piece.Polygon, "piece does not share the decomposition's polygon")
	}

	polyPoints := make(PointSet)
	for _, p := range polygon.Points {
		polyPoints.Add(p)
	}
	piecePoints := make(PointSet)
	for _, piece := range d.Pieces {
		for _, p := range piece.Points() {
			piecePoints.Add(p)
		}
	}
	require.True(t, polyPoints.Equals(piecePoints), "set of points in the pieces must equal the set of points in the polygon")

	// Directed edges by normalized polygon index
	n := len(d.Polygon.Points)
	edgeCounts := make(map[[2]int]int)
	for _, piece := range d.Pieces {
		for i, index := range piece.Indices {
			edgeCounts[[2]int{index, piece.Indices[(i+1)%piece.Len()]}]++
		}
	}
	for i := 0; i < n; i++ {
		edge := [2]int{i, (i + 1) % n}
		require.Equal(t, 1, edgeCounts[edge], "polygon edge %v must be in exactly one piece", edge)
	}
	for edge, count := range edgeCounts {
		require.Equal(t, 1, count, "edge %v appears %d times", edge, count)
		if edge[1] == (edge[0]+1)%n {
			continue
		}
		require.Equal(t, 1, edgeCounts[[2]int{edge[1], edge[0]}], "diagonal %v has no twin", edge)
	}

	var pieceArea float64
	for _, piece := range d.Pieces {
		pieceArea += piece.SignedArea()
	}
	require.InDelta(t, polygon.Area(), pieceArea, 1e-9*math.Max(1, polygon.Area()),
		"sum of the areas of all pieces must equal the area of the polygon")

	validatePiecesBySampling(t, polygon, d.ToPolygonList())
}

// Set of points by identity
type PointSet map[*Point]struct{}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func validatePiecesBySampling(t *testing.T, polygon *Polygon, pieces PolygonList) {
	min, max := polygon.Bounds()

	// Pad the bounding box by 10%
	xPadding := (max.X - min.X) * 0.1
	yPadding := (max.Y - min.Y) * 0.1
	min.X -= xPadding
	min.Y -= yPadding
	max.X += xPadding
	max.Y += yPadding

	step := math.Max(max.X-min.X, max.Y-min.Y) / 50

	// Offset the grid by different odd fractions on each axis so that samples
	// never land exactly on axis aligned or 45 degree edges.
	for y := min.Y + 0.6180339*step; y <= max.Y; y += step {
		for x := min.X + 0.3819661*step; x <= max.X; x += step {
			p := &Point{X: x, Y: y}

			count := pieces.ContainingCount(p)
			if polygon.ContainsPoint(p) {
				assert.Equal(t, 1, count, "point %v should be in exactly one piece", p)
			} else {
				assert.Equal(t, 0, count, "point %v should not be in any piece", p)
			}
		}
	}
}
