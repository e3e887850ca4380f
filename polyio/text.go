// Package polyio reads polygons from the formats the convexify command
// accepts, and writes decompositions back out.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/convexify"
	"github.com/pkg/errors"
)

// ReadText reads polygons as newline separated points in the form "x y", with
// each polygon separated by an extra newline. Lines starting with # are
// ignored.
func ReadText(in io.Reader) ([]convexify.Polygon, error) {
	polygons := []convexify.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []*convexify.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, convexify.Polygon{Points: points})
				points = []*convexify.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, convexify.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (*convexify.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return nil, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return &convexify.Point{X: x, Y: y}, nil
}
