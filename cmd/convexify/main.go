package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/convexify"
	"github.com/osuushi/convexify/polyio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Decompose polygons into convex pieces. Input is either an SVG file, in which
// case every <polygon> element is used, or newline separated points in the
// form "x y", with each polygon separated by an extra newline. With no file
// argument, points are read from stdin.
func main() {
	settings, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "convexify:", err)
		os.Exit(2)
	}
	os.Exit(run(settings, os.Stdin, os.Stdout, os.Stderr))
}

// Settings is the merged result of defaults, config file and flags.
type Settings struct {
	Input  string
	Format string
	Policy convexify.DiagonalPolicy
	Scale  float64
	PNG    string
	Imgcat bool
	Color  bool
	Debug  bool
}

func parseArgs(args []string) (Settings, error) {
	app := kingpin.New("convexify", "Decompose simple polygons into convex pieces.")
	configPath := app.Flag("config", "TOML file with default settings.").Short('c').String()
	format := app.Flag("format", "Output format.").Short('f').Enum("text", "yaml", "pretty")
	policy := app.Flag("policy", "What to do when a reflex vertex has no diagonal.").Enum("fail", "keep")
	scale := app.Flag("scale", "Pixels per unit when rendering.").Float64()
	png := app.Flag("png", "Render the pieces to this PNG file.").String()
	cat := app.Flag("imgcat", "Print the rendering in the terminal (iTerm).").Bool()
	noColor := app.Flag("no-color", "Disable colored text output.").Bool()
	debug := app.Flag("debug", "Log every decomposition step to stderr.").Bool()
	input := app.Arg("file", "Input file (.svg or points). Defaults to stdin.").String()

	if _, err := app.Parse(args); err != nil {
		return Settings{}, err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		Input:  *input,
		Format: firstNonEmpty(*format, cfg.Format),
		Scale:  cfg.Scale,
		PNG:    firstNonEmpty(*png, cfg.PNG),
		Imgcat: *cat,
		Color:  *cfg.Color && !*noColor,
		Debug:  *debug,
	}
	if *scale > 0 {
		settings.Scale = *scale
	}
	if settings.Scale <= 0 {
		return Settings{}, errors.Errorf("scale must be positive, got %g", settings.Scale)
	}
	if !validFormat(settings.Format) {
		return Settings{}, errors.Errorf("unknown format %q", settings.Format)
	}
	settings.Policy, err = parsePolicy(firstNonEmpty(*policy, cfg.Policy))
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func run(settings Settings, stdin io.Reader, stdout, stderr io.Writer) int {
	if settings.Debug {
		convexify.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer convexify.SetLogger(nil)
	}

	polygons, err := readPolygons(settings.Input, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "convexify:", err)
		return 1
	}

	results := make([]polyio.Result, len(polygons))
	failed := false
	for i, polygon := range polygons {
		d, err := convexify.Decompose(polygon.Points, convexify.WithDiagonalPolicy(settings.Policy))
		results[i] = polyio.Result{Decomposition: d, Err: err}
		if err != nil {
			failed = true
		}
	}

	if err := writeResults(stdout, settings, results); err != nil {
		fmt.Fprintln(stderr, "convexify:", err)
		return 1
	}

	if settings.PNG != "" {
		if err := renderResults(settings, results, stdout, stderr); err != nil {
			fmt.Fprintln(stderr, "convexify:", err)
			return 1
		}
	}

	if failed {
		return 1
	}
	return 0
}

func readPolygons(path string, stdin io.Reader) ([]convexify.Polygon, error) {
	if path == "" || path == "-" {
		return polyio.ReadText(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return polyio.ReadSVG(f)
	}
	return polyio.ReadText(f)
}
