package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, and returns its points in document order. Winding is left
// alone so that fixtures can exercise normalization. If anything goes wrong,
// it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, &Point{x, y})
	}
	return &Polygon{Points: points}
}

var fixtureNames = []string{
	"l_shape",
	"comb",
	"e_shape",
	"arrow_ccw",
}

// Some ad hoc code specified fixtures

func Square() *Polygon {
	return &Polygon{[]*Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
}

func SimpleStar() *Polygon {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return &Polygon{points}
}

// A band following an Archimedean spiral for the given number of turns. The
// gap between turns is wider than the band, so the polygon is simple.
func Spiral(turns float64) *Polygon {
	const (
		start     = 2.0
		growth    = 2.0 // radius gained per radian
		width     = 4.0
		perTurn   = 24
		angleStep = 2 * math.Pi / perTurn
	)
	steps := int(turns * perTurn)
	var outer, inner []*Point
	for i := 0; i <= steps; i++ {
		angle := float64(i) * angleStep
		r := start + growth*angle
		outer = append(outer, &Point{X: (r + width) * math.Cos(angle), Y: (r + width) * math.Sin(angle)})
		inner = append(inner, &Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
	}
	points := outer
	for i := len(inner) - 1; i >= 0; i-- {
		points = append(points, inner[i])
	}
	return &Polygon{points}
}

// Random star-shaped polygon around the origin. Each vertex stays within its
// own angular slot, so the result is always simple.
func RandomStarShaped(rnd *rand.Rand, n int) *Polygon {
	points := make([]*Point, n)
	slot := 2 * math.Pi / float64(n)
	for i := range points {
		angle := slot * (float64(i) + 0.8*rnd.Float64())
		r := 1 + 9*rnd.Float64()
		points[i] = &Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return &Polygon{points}
}

// Random convex polygon: the star-shaped slots with every point on one circle.
func RandomConvex(rnd *rand.Rand, n int) *Polygon {
	poly := RandomStarShaped(rnd, n)
	for _, p := range poly.Points {
		scale := 5 / math.Hypot(p.X, p.Y)
		p.X *= scale
		p.Y *= scale
	}
	return poly
}
