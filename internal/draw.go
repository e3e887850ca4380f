package internal

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Padding around the shape, in pixels.
const drawPadding = 20

// Fill colors cycled over the pieces.
var piecePalette = []color.RGBA{
	colornames.Steelblue,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Orchid,
	colornames.Darkcyan,
	colornames.Sienna,
	colornames.Slateblue,
	colornames.Olivedrab,
}

// Draw renders the pieces onto a new context. Coordinates are screen space
// already (y down), so unlike a math plot nothing is flipped. Unresolved
// pieces are filled red.
func (d *Decomposition) Draw(scale float64) *gg.Context {
	min, max := d.Polygon.Bounds()

	width := int(math.Ceil(scale*(max.X-min.X))) + drawPadding*2
	height := int(math.Ceil(scale*(max.Y-min.Y))) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(colornames.Black)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	for i, piece := range d.Pieces {
		tracePath(c, piece.Points())
		fill := piecePalette[i%len(piecePalette)]
		fill.A = 0xc0
		c.SetColor(fill)
		c.Fill()
	}
	for _, piece := range d.Unresolved {
		tracePath(c, piece.Points())
		c.SetColor(colornames.Crimson)
		c.Fill()
	}

	// Outlines last, so shared diagonals are drawn over both neighbors
	c.SetLineWidth(2 / scale)
	c.SetColor(colornames.White)
	for _, piece := range d.Pieces {
		tracePath(c, piece.Points())
		c.Stroke()
	}
	c.SetColor(colornames.Yellow)
	for _, p := range d.Polygon.Points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c
}

func tracePath(c *gg.Context, points []*Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func (d *Decomposition) SavePNG(path string, scale float64) error {
	if err := d.Draw(scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving decomposition to %s", path)
	}
	return nil
}

// Print the rendering in the terminal (iTerm only). For debugging.
func (d *Decomposition) dbgDraw(scale float64) {
	const path = "/tmp/decomposition.png"
	if err := d.SavePNG(path, scale); err != nil {
		Logger().Warn("debug draw failed", "err", err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
}
