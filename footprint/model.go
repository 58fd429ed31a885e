package footprint

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Model references a 3-D model file with its placement transform.
// Each transform child wraps an `(xyz ...)` coordinate.
type Model struct {
	Path    string
	Hide    bool
	Opacity *float64
	Offset  items.Coordinate
	Scale   items.Coordinate
	Rotate  items.Coordinate
}

func (m *Model) Decode(node *sexp.Node) error {
	const construct = "model"
	if err := schema.ExpectKeyword(node, construct, "model"); err != nil {
		return err
	}
	var out Model
	var err error
	if out.Path, err = node.AtString(construct, "path", 1); err != nil {
		return err
	}
	out.Hide = node.Flag("hide")
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "opacity":
			var o float64
			if o, err = item.AtFloat(construct, "opacity", 1); err == nil {
				out.Opacity = &o
			}
		case "offset":
			err = decodeXYZ(item, construct, &out.Offset)
		case "scale":
			err = decodeXYZ(item, construct, &out.Scale)
		case "rotate":
			err = decodeXYZ(item, construct, &out.Rotate)
		}
		if err != nil {
			return err
		}
	}
	*m = out
	return nil
}

func decodeXYZ(node *sexp.Node, construct string, c *items.Coordinate) error {
	inner, err := node.AtNode(construct, node.Keyword(), 1)
	if err != nil {
		return err
	}
	return c.Decode(inner)
}

func (m *Model) Encode() *sexp.Node {
	res := sexp.NewList("model", sexp.FromString(m.Path))
	if m.Hide {
		res.Append(sexp.FromSymbol("hide"))
	}
	if m.Opacity != nil {
		res.Append(schema.FloatChild("opacity", *m.Opacity))
	}
	res.Append(sexp.NewList("offset", m.Offset.Encode()))
	res.Append(sexp.NewList("scale", m.Scale.Encode()))
	res.Append(sexp.NewList("rotate", m.Rotate.Encode()))
	return res
}
