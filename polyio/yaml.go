package polyio

import (
	"io"

	"github.com/osuushi/convexify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Result pairs one input polygon with the outcome of decomposing it.
type Result struct {
	Decomposition *convexify.Decomposition
	Err           error
}

type Piece struct {
	// Indices into the polygon as the caller supplied it, not the normalized
	// one.
	Indices []int        `yaml:"indices,flow"`
	Points  [][2]float64 `yaml:"points,flow"`
}

type Document struct {
	Polygon    int     `yaml:"polygon"`
	Reversed   bool    `yaml:"reversed,omitempty"`
	Pieces     []Piece `yaml:"pieces,omitempty"`
	Unresolved []Piece `yaml:"unresolved,omitempty"`
	Error      string  `yaml:"error,omitempty"`
}

// NewDocument flattens a result into plain data, mapping indices back to the
// caller's order.
func NewDocument(index int, result Result) Document {
	doc := Document{Polygon: index}
	if result.Err != nil {
		doc.Error = result.Err.Error()
		return doc
	}
	d := result.Decomposition
	doc.Reversed = d.Reversed
	doc.Pieces = newPieces(d, d.Pieces)
	doc.Unresolved = newPieces(d, d.Unresolved)
	return doc
}

func newPieces(d *convexify.Decomposition, subPolygons []convexify.SubPolygon) []Piece {
	var pieces []Piece
	for _, sp := range subPolygons {
		piece := Piece{}
		for _, index := range sp.Indices {
			p := d.Polygon.Points[index]
			piece.Indices = append(piece.Indices, d.SourceIndex(index))
			piece.Points = append(piece.Points, [2]float64{p.X, p.Y})
		}
		pieces = append(pieces, piece)
	}
	return pieces
}

// WriteYAML writes one YAML document per result.
func WriteYAML(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for i, result := range results {
		if err := enc.Encode(NewDocument(i, result)); err != nil {
			return errors.Wrapf(err, "encoding polygon %d", i)
		}
	}
	return errors.Wrap(enc.Close(), "closing yaml encoder")
}
