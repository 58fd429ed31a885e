package items

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Position is the `(at X Y [angle] [unlocked])` shape, reused under
// other keywords (start, end, mid, center) for segment endpoints.
type Position struct {
	X float64
	Y float64
	// Angle is the optional rotation. Symbol text angles are stored
	// in tenths of a degree by the host; everything else in degrees.
	Angle    *float64
	Unlocked bool
}

// DecodePosition reads a positional pair from node regardless of its
// keyword. construct names the owning entity for error reporting.
func DecodePosition(node *sexp.Node, construct string) (Position, error) {
	var p Position
	kw := node.Keyword()
	x, err := node.AtFloat(construct, kw, 1)
	if err != nil {
		return p, err
	}
	y, err := node.AtFloat(construct, kw, 2)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	if c := node.At(3); c != nil && c.Type == sexp.NumberType {
		a := c.Float()
		p.Angle = &a
	}
	p.Unlocked = node.Flag("unlocked")
	return p, nil
}

// Encode renders the position under the given keyword.
func (p Position) Encode(keyword string) *sexp.Node {
	res := sexp.NewList(keyword, sexp.FromFloat(p.X), sexp.FromFloat(p.Y))
	if p.Angle != nil {
		res.Append(sexp.FromFloat(*p.Angle))
	}
	if p.Unlocked {
		res.Append(sexp.FromSymbol("unlocked"))
	}
	return res
}

// Coordinate is the three-dimensional `(xyz X Y Z)` token used by
// 3-D model references.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func (c *Coordinate) Decode(node *sexp.Node) error {
	const construct = "xyz"
	if err := schema.ExpectKeyword(node, construct, "xyz"); err != nil {
		return err
	}
	var out Coordinate
	var err error
	if out.X, err = node.AtFloat(construct, "x", 1); err != nil {
		return err
	}
	if out.Y, err = node.AtFloat(construct, "y", 2); err != nil {
		return err
	}
	if out.Z, err = node.AtFloat(construct, "z", 3); err != nil {
		return err
	}
	*c = out
	return nil
}

func (c *Coordinate) Encode() *sexp.Node {
	return sexp.NewList("xyz",
		sexp.FromFloat(c.X), sexp.FromFloat(c.Y), sexp.FromFloat(c.Z))
}

// ColorRGBA is the `(color R G B A)` token. Alpha may be fractional.
type ColorRGBA struct {
	R int64
	G int64
	B int64
	A float64
}

func (c *ColorRGBA) Decode(node *sexp.Node) error {
	const construct = "color"
	if err := schema.ExpectKeyword(node, construct, "color"); err != nil {
		return err
	}
	var out ColorRGBA
	var err error
	if out.R, err = node.AtInt(construct, "r", 1); err != nil {
		return err
	}
	if out.G, err = node.AtInt(construct, "g", 2); err != nil {
		return err
	}
	if out.B, err = node.AtInt(construct, "b", 3); err != nil {
		return err
	}
	if out.A, err = node.AtFloat(construct, "a", 4); err != nil {
		return err
	}
	*c = out
	return nil
}

func (c *ColorRGBA) Encode() *sexp.Node {
	return sexp.NewList("color",
		sexp.FromInt(c.R), sexp.FromInt(c.G), sexp.FromInt(c.B),
		sexp.FromFloat(c.A))
}

// Stroke defines how outlines of graphical objects are drawn.
type Stroke struct {
	Width float64
	Type  string
	Color *ColorRGBA
}

func (s *Stroke) Decode(node *sexp.Node) error {
	const construct = "stroke"
	if err := schema.ExpectKeyword(node, construct, "stroke"); err != nil {
		return err
	}
	var out Stroke
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "width":
			out.Width, err = item.AtFloat(construct, "width", 1)
		case "type":
			out.Type, err = item.AtString(construct, "type", 1)
		case "color":
			out.Color = &ColorRGBA{}
			err = out.Color.Decode(item)
		}
		if err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func (s *Stroke) Encode() *sexp.Node {
	res := sexp.NewList("stroke", schema.FloatChild("width", s.Width))
	if s.Type != "" {
		res.Append(sexp.NewList("type", sexp.FromSymbol(s.Type)))
	}
	if s.Color != nil {
		res.Append(s.Color.Encode())
	}
	return res
}
