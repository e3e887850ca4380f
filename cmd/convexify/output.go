package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/convexify"
	"github.com/osuushi/convexify/polyio"
)

func writeResults(w io.Writer, settings Settings, results []polyio.Result) error {
	switch settings.Format {
	case "yaml":
		return polyio.WriteYAML(w, results)
	case "pretty":
		docs := make([]polyio.Document, len(results))
		for i, result := range results {
			docs[i] = polyio.NewDocument(i, result)
		}
		_, err := fmt.Fprintln(w, pretty.Sprint(docs))
		return err
	}
	writeText(w, aurora.NewAurora(settings.Color), results)
	return nil
}

func writeText(w io.Writer, au aurora.Aurora, results []polyio.Result) {
	for i, result := range results {
		if result.Err != nil {
			fmt.Fprintf(w, "%s %s\n", au.Bold(fmt.Sprintf("polygon %d:", i)), au.Red(result.Err.Error()))
			continue
		}
		d := result.Decomposition
		header := fmt.Sprintf("polygon %d: %d convex pieces, %d triangles, area %g",
			i, len(d.Pieces), len(d.Triangles()), d.ToPolygonList().Area())
		if d.Reversed {
			header += " (input was counterclockwise)"
		}
		fmt.Fprintln(w, au.Bold(header))
		for j, piece := range d.Pieces {
			fmt.Fprintf(w, "  piece %d: %s\n", j, au.Green(formatIndices(d, piece)))
		}
		for j, piece := range d.Unresolved {
			fmt.Fprintf(w, "  unresolved %d: %s\n", j, au.Yellow(formatIndices(d, piece)))
		}
	}
}

// Indices in the caller's original order.
func formatIndices(d *convexify.Decomposition, piece convexify.SubPolygon) string {
	parts := make([]string, len(piece.Indices))
	for i, index := range piece.Indices {
		parts[i] = fmt.Sprint(d.SourceIndex(index))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func renderResults(settings Settings, results []polyio.Result, stdout, stderr io.Writer) error {
	rendered := 0
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		path := pngPath(settings.PNG, i, len(results))
		if err := result.Decomposition.SavePNG(path, settings.Scale); err != nil {
			return err
		}
		rendered++
		if settings.Imgcat {
			imgcat.CatFile(path, stdout)
		}
	}
	if rendered == 0 {
		fmt.Fprintln(stderr, "convexify: nothing to render")
	}
	return nil
}

// With several polygons, each rendering gets the polygon index before the
// extension: out.png becomes out-0.png, out-1.png, ...
func pngPath(base string, index, count int) string {
	if count == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), index, ext)
}
