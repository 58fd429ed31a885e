package symbol

import (
	"github.com/kiforge/kicad-sexp/footprint"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Graphics holds the registry symbol bodies dispatch drawing item
// keywords through.
var Graphics = schema.NewRegistry()

func init() {
	Graphics.MustRegister("arc", func() schema.Codec { return &Arc{} })
	Graphics.MustRegister("circle", func() schema.Codec { return &Circle{} })
	Graphics.MustRegister("polyline", func() schema.Codec { return &PolyLine{} })
	Graphics.MustRegister("rectangle", func() schema.Codec { return &Rectangle{} })
	Graphics.MustRegister("text", func() schema.Codec { return &Text{} })
}

// Fill is the `(fill (type ...))` token of symbol drawing items.
type Fill struct {
	Type string
}

func (f *Fill) Decode(node *sexp.Node) error {
	const construct = "fill"
	if err := schema.ExpectKeyword(node, construct, "fill"); err != nil {
		return err
	}
	var out Fill
	v, ok, err := node.ChildString(construct, "type")
	if err != nil {
		return err
	}
	if ok {
		out.Type = v
	}
	*f = out
	return nil
}

func (f *Fill) Encode() *sexp.Node {
	return sexp.NewList("fill", schema.SymbolChild("type", f.Type))
}

// body carries the stroke and fill every closed drawing item shares.
type body struct {
	Stroke items.Stroke
	Fill   Fill
}

func (b *body) decodeChild(item *sexp.Node) (bool, error) {
	switch item.Keyword() {
	case "stroke":
		return true, b.Stroke.Decode(item)
	case "fill":
		return true, b.Fill.Decode(item)
	}
	return false, nil
}

func (b *body) encodeTo(res *sexp.Node) {
	res.Append(b.Stroke.Encode())
	res.Append(b.Fill.Encode())
}

// Arc is a symbol body arc over start, mid and end points.
type Arc struct {
	Start items.Position
	Mid   items.Position
	End   items.Position
	body
}

func (a *Arc) Decode(node *sexp.Node) error {
	const construct = "arc"
	if err := schema.ExpectKeyword(node, construct, "arc"); err != nil {
		return err
	}
	var out Arc
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "mid":
			out.Mid, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		default:
			_, err = out.decodeChild(item)
		}
		if err != nil {
			return err
		}
	}
	*a = out
	return nil
}

func (a *Arc) Encode() *sexp.Node {
	res := sexp.NewList("arc",
		a.Start.Encode("start"), a.Mid.Encode("mid"), a.End.Encode("end"))
	a.encodeTo(res)
	return res
}

// Circle is a symbol body circle.
type Circle struct {
	Center items.Position
	Radius float64
	body
}

func (c *Circle) Decode(node *sexp.Node) error {
	const construct = "circle"
	if err := schema.ExpectKeyword(node, construct, "circle"); err != nil {
		return err
	}
	var out Circle
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "center":
			out.Center, err = items.DecodePosition(item, construct)
		case "radius":
			out.Radius, err = item.AtFloat(construct, "radius", 1)
		default:
			_, err = out.decodeChild(item)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *Circle) Encode() *sexp.Node {
	res := sexp.NewList("circle",
		c.Center.Encode("center"),
		schema.FloatChild("radius", c.Radius))
	c.encodeTo(res)
	return res
}

// PolyLine is an open or closed point chain in a symbol body.
type PolyLine struct {
	Points []items.Position
	body
}

func (p *PolyLine) Decode(node *sexp.Node) error {
	const construct = "polyline"
	if err := schema.ExpectKeyword(node, construct, "polyline"); err != nil {
		return err
	}
	var out PolyLine
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = footprint.DecodePoints(item, construct)
		default:
			_, err = out.decodeChild(item)
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *PolyLine) Encode() *sexp.Node {
	res := sexp.NewList("polyline", footprint.EncodePoints(p.Points))
	p.encodeTo(res)
	return res
}

// Rectangle is a symbol body rectangle spanned by two corners.
type Rectangle struct {
	Start items.Position
	End   items.Position
	body
}

func (r *Rectangle) Decode(node *sexp.Node) error {
	const construct = "rectangle"
	if err := schema.ExpectKeyword(node, construct, "rectangle"); err != nil {
		return err
	}
	var out Rectangle
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		default:
			_, err = out.decodeChild(item)
		}
		if err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func (r *Rectangle) Encode() *sexp.Node {
	res := sexp.NewList("rectangle",
		r.Start.Encode("start"), r.End.Encode("end"))
	r.encodeTo(res)
	return res
}

// Text is free text in a symbol body.
type Text struct {
	Text     string
	Position items.Position
	Effects  items.Effects
}

func (t *Text) Decode(node *sexp.Node) error {
	const construct = "text"
	if err := schema.ExpectKeyword(node, construct, "text"); err != nil {
		return err
	}
	var out Text
	var err error
	if out.Text, err = node.AtString(construct, "text", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "effects":
			err = out.Effects.Decode(item)
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *Text) Encode() *sexp.Node {
	return sexp.NewList("text", sexp.FromString(t.Text),
		t.Position.Encode("at"), t.Effects.Encode())
}
