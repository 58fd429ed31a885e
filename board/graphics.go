package board

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Graphics holds the registry the board decoder dispatches drawing
// item keywords through.
var Graphics = schema.NewRegistry()

func init() {
	Graphics.MustRegister("gr_text", func() schema.Codec { return &GrText{} })
	Graphics.MustRegister("gr_line", func() schema.Codec { return &GrLine{} })
	Graphics.MustRegister("gr_rect", func() schema.Codec { return &GrRect{} })
	Graphics.MustRegister("gr_circle", func() schema.Codec { return &GrCircle{} })
	Graphics.MustRegister("gr_arc", func() schema.Codec { return &GrArc{} })
	Graphics.MustRegister("gr_poly", func() schema.Codec { return &GrPoly{} })
	Graphics.MustRegister("gr_curve", func() schema.Codec { return &GrCurve{} })
	Graphics.MustRegister("target", func() schema.Codec { return &Target{} })
}

// outline carries the stroke fields the gr_* drawing items share.
type outline struct {
	Width  *float64
	Stroke *items.Stroke
	Locked bool
	ID     string
}

func (o *outline) decodeChild(item *sexp.Node, construct string) error {
	var err error
	switch item.Keyword() {
	case "width":
		var w float64
		if w, err = item.AtFloat(construct, "width", 1); err == nil {
			o.Width = &w
		}
	case "stroke":
		o.Stroke = &items.Stroke{}
		err = o.Stroke.Decode(item)
	case "tstamp", "uuid":
		o.ID, err = item.AtString(construct, "tstamp", 1)
	default:
		if item.Text() == "locked" {
			o.Locked = true
		}
	}
	return err
}

func (o *outline) encodeTo(res *sexp.Node) {
	if o.Stroke != nil {
		res.Append(o.Stroke.Encode())
	} else if o.Width != nil {
		res.Append(schema.FloatChild("width", *o.Width))
	}
	if o.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	if o.ID != "" {
		res.Append(schema.SymbolChild("tstamp", o.ID))
	}
}

// GrText is free text placed on the board.
type GrText struct {
	Text     string
	Position items.Position
	Layer    string
	Knockout bool
	Locked   bool
	ID       string
	Effects  items.Effects
}

func (t *GrText) Decode(node *sexp.Node) error {
	const construct = "gr_text"
	if err := schema.ExpectKeyword(node, construct, "gr_text"); err != nil {
		return err
	}
	var out GrText
	var err error
	if out.Text, err = node.AtString(construct, "text", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "layer":
			if out.Layer, err = item.AtString(construct, "layer", 1); err != nil {
				return err
			}
			out.Knockout = item.Flag("knockout")
		case "effects":
			err = out.Effects.Decode(item)
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		default:
			if item.Text() == "locked" {
				out.Locked = true
			}
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *GrText) Encode() *sexp.Node {
	res := sexp.NewList("gr_text", sexp.FromString(t.Text))
	if t.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	res.Append(t.Position.Encode("at"))
	layer := sexp.NewList("layer", sexp.FromString(t.Layer))
	if t.Knockout {
		layer.Append(sexp.FromSymbol("knockout"))
	}
	res.Append(layer)
	if t.ID != "" {
		res.Append(schema.SymbolChild("tstamp", t.ID))
	}
	res.Append(t.Effects.Encode())
	return res
}

// GrLine is a straight drawing segment.
type GrLine struct {
	Start items.Position
	End   items.Position
	Angle *float64
	Layer string
	outline
}

func (l *GrLine) Decode(node *sexp.Node) error {
	const construct = "gr_line"
	if err := schema.ExpectKeyword(node, construct, "gr_line"); err != nil {
		return err
	}
	var out GrLine
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "angle":
			var a float64
			if a, err = item.AtFloat(construct, "angle", 1); err == nil {
				out.Angle = &a
			}
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *GrLine) Encode() *sexp.Node {
	res := sexp.NewList("gr_line",
		l.Start.Encode("start"), l.End.Encode("end"))
	if l.Angle != nil {
		res.Append(schema.FloatChild("angle", *l.Angle))
	}
	res.Append(schema.StringChild("layer", l.Layer))
	l.encodeTo(res)
	return res
}

// GrRect is a drawn rectangle spanned by two opposite corners.
type GrRect struct {
	Start items.Position
	End   items.Position
	Layer string
	Fill  string
	outline
}

func (r *GrRect) Decode(node *sexp.Node) error {
	const construct = "gr_rect"
	if err := schema.ExpectKeyword(node, construct, "gr_rect"); err != nil {
		return err
	}
	var out GrRect
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "fill":
			out.Fill, err = item.AtString(construct, "fill", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func (r *GrRect) Encode() *sexp.Node {
	res := sexp.NewList("gr_rect",
		r.Start.Encode("start"), r.End.Encode("end"),
		schema.StringChild("layer", r.Layer))
	if r.Fill != "" {
		res.Append(schema.SymbolChild("fill", r.Fill))
	}
	r.encodeTo(res)
	return res
}

// GrCircle is a drawn circle. End is a point on the radius.
type GrCircle struct {
	Center items.Position
	End    items.Position
	Layer  string
	Fill   string
	outline
}

func (c *GrCircle) Decode(node *sexp.Node) error {
	const construct = "gr_circle"
	if err := schema.ExpectKeyword(node, construct, "gr_circle"); err != nil {
		return err
	}
	var out GrCircle
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "center":
			out.Center, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "fill":
			out.Fill, err = item.AtString(construct, "fill", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *GrCircle) Encode() *sexp.Node {
	res := sexp.NewList("gr_circle",
		c.Center.Encode("center"), c.End.Encode("end"),
		schema.StringChild("layer", c.Layer))
	if c.Fill != "" {
		res.Append(schema.SymbolChild("fill", c.Fill))
	}
	c.encodeTo(res)
	return res
}

// GrArc is a drawn arc over start, mid and end points.
type GrArc struct {
	Start items.Position
	Mid   items.Position
	End   items.Position
	Layer string
	outline
}

func (a *GrArc) Decode(node *sexp.Node) error {
	const construct = "gr_arc"
	if err := schema.ExpectKeyword(node, construct, "gr_arc"); err != nil {
		return err
	}
	var out GrArc
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "mid":
			out.Mid, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*a = out
	return nil
}

func (a *GrArc) Encode() *sexp.Node {
	res := sexp.NewList("gr_arc",
		a.Start.Encode("start"), a.Mid.Encode("mid"), a.End.Encode("end"),
		schema.StringChild("layer", a.Layer))
	a.encodeTo(res)
	return res
}

// GrPoly is a drawn polygon over a point list.
type GrPoly struct {
	Points []items.Position
	Layer  string
	Fill   string
	outline
}

func (p *GrPoly) Decode(node *sexp.Node) error {
	const construct = "gr_poly"
	if err := schema.ExpectKeyword(node, construct, "gr_poly"); err != nil {
		return err
	}
	var out GrPoly
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = decodePoints(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "fill":
			out.Fill, err = item.AtString(construct, "fill", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *GrPoly) Encode() *sexp.Node {
	res := sexp.NewList("gr_poly", encodePoints(p.Points),
		schema.StringChild("layer", p.Layer))
	if p.Fill != "" {
		res.Append(schema.SymbolChild("fill", p.Fill))
	}
	p.encodeTo(res)
	return res
}

// GrCurve is a drawn Bezier over four control points.
type GrCurve struct {
	Points []items.Position
	Layer  string
	outline
}

func (c *GrCurve) Decode(node *sexp.Node) error {
	const construct = "gr_curve"
	if err := schema.ExpectKeyword(node, construct, "gr_curve"); err != nil {
		return err
	}
	var out GrCurve
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = decodePoints(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *GrCurve) Encode() *sexp.Node {
	res := sexp.NewList("gr_curve", encodePoints(c.Points),
		schema.StringChild("layer", c.Layer))
	c.encodeTo(res)
	return res
}

// Target is an alignment target marker.
type Target struct {
	Shape    string // "plus" or "x"
	Position items.Position
	Size     float64
	Width    float64
	Layer    string
	ID       string
}

func (t *Target) Decode(node *sexp.Node) error {
	const construct = "target"
	if err := schema.ExpectKeyword(node, construct, "target"); err != nil {
		return err
	}
	var out Target
	var err error
	if out.Shape, err = node.AtString(construct, "shape", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "size":
			out.Size, err = item.AtFloat(construct, "size", 1)
		case "width":
			out.Width, err = item.AtFloat(construct, "width", 1)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *Target) Encode() *sexp.Node {
	res := sexp.NewList("target", sexp.FromSymbol(t.Shape),
		t.Position.Encode("at"),
		schema.FloatChild("size", t.Size),
		schema.FloatChild("width", t.Width),
		schema.StringChild("layer", t.Layer))
	if t.ID != "" {
		res.Append(schema.SymbolChild("tstamp", t.ID))
	}
	return res
}

func decodePoints(node *sexp.Node, construct string) ([]items.Position, error) {
	var pts []items.Position
	for _, item := range node.Children[1:] {
		if item.Keyword() != "xy" {
			continue
		}
		p, err := items.DecodePosition(item, construct)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func encodePoints(pts []items.Position) *sexp.Node {
	res := sexp.NewList("pts")
	for _, p := range pts {
		res.Append(p.Encode("xy"))
	}
	return res
}
