package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/convexify"
	"github.com/pkg/errors"
)

// ReadSVG reads every <polygon> element in the document, in document order.
// This is not a full SVG implementation: transforms and other shape elements
// are ignored, and coordinates are taken as is (SVG is already y down).
func ReadSVG(in io.Reader) ([]convexify.Polygon, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons []convexify.Polygon
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := ParsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, convexify.Polygon{Points: points})
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return polygons, nil
}

// ParsePoints parses an SVG points attribute. Coordinates may be separated by
// commas, whitespace, or both.
func ParsePoints(attribute string) ([]*convexify.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(attribute, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]*convexify.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &convexify.Point{X: x, Y: y})
	}
	return points, nil
}
