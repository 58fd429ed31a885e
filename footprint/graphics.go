package footprint

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Graphics holds the registry the footprint decoder dispatches graphic
// item keywords through.
var Graphics = schema.NewRegistry()

func init() {
	Graphics.MustRegister("fp_text", func() schema.Codec { return &Text{} })
	Graphics.MustRegister("fp_line", func() schema.Codec { return &Line{} })
	Graphics.MustRegister("fp_rect", func() schema.Codec { return &Rect{} })
	Graphics.MustRegister("fp_circle", func() schema.Codec { return &Circle{} })
	Graphics.MustRegister("fp_arc", func() schema.Codec { return &Arc{} })
	Graphics.MustRegister("fp_poly", func() schema.Codec { return &Poly{} })
	Graphics.MustRegister("fp_curve", func() schema.Codec { return &Curve{} })
}

// Text is the `(fp_text ...)` item. Type is one of reference, value
// or user.
type Text struct {
	Type     string
	Text     string
	Position items.Position
	Layer    string
	Knockout bool
	Hide     bool
	Effects  items.Effects
	ID       string
}

func (t *Text) Decode(node *sexp.Node) error {
	const construct = "fp_text"
	if err := schema.ExpectKeyword(node, construct, "fp_text"); err != nil {
		return err
	}
	var out Text
	var err error
	if out.Type, err = node.AtString(construct, "type", 1); err != nil {
		return err
	}
	if out.Text, err = node.AtString(construct, "text", 2); err != nil {
		return err
	}
	for _, item := range node.Children[3:] {
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
			if item.Text() == "hide" {
				out.Hide = true
			}
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *Text) Encode() *sexp.Node {
	res := sexp.NewList("fp_text",
		sexp.FromSymbol(t.Type), sexp.FromString(t.Text),
		t.Position.Encode("at"))
	layer := sexp.NewList("layer", sexp.FromString(t.Layer))
	if t.Knockout {
		layer.Append(sexp.FromSymbol("knockout"))
	}
	res.Append(layer)
	if t.Hide {
		res.Append(sexp.FromSymbol("hide"))
	}
	res.Append(t.Effects.Encode())
	if t.ID != "" {
		res.Append(schema.SymbolChild("tstamp", t.ID))
	}
	return res
}

// outline carries the stroke fields shared by the line-drawn items.
// Width was the pre-stroke representation and is kept when present so
// old files re-emit unchanged.
type outline struct {
	Width  *float64
	Stroke *items.Stroke
	Locked bool
	ID     string
}

func (o *outline) decodeChild(item *sexp.Node, construct string) (bool, error) {
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
			return true, nil
		}
		return false, nil
	}
	return true, err
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

// Line is the `(fp_line ...)` item.
type Line struct {
	Start items.Position
	End   items.Position
	Layer string
	outline
}

func (l *Line) Decode(node *sexp.Node) error {
	const construct = "fp_line"
	if err := schema.ExpectKeyword(node, construct, "fp_line"); err != nil {
		return err
	}
	var out Line
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *Line) Encode() *sexp.Node {
	res := sexp.NewList("fp_line",
		l.Start.Encode("start"), l.End.Encode("end"),
		schema.StringChild("layer", l.Layer))
	l.encodeTo(res)
	return res
}

// Rect is the `(fp_rect ...)` item, a rectangle spanned by two
// opposite corners.
type Rect struct {
	Start items.Position
	End   items.Position
	Layer string
	Fill  string
	outline
}

func (r *Rect) Decode(node *sexp.Node) error {
	const construct = "fp_rect"
	if err := schema.ExpectKeyword(node, construct, "fp_rect"); err != nil {
		return err
	}
	var out Rect
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
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func (r *Rect) Encode() *sexp.Node {
	res := sexp.NewList("fp_rect",
		r.Start.Encode("start"), r.End.Encode("end"),
		schema.StringChild("layer", r.Layer))
	if r.Fill != "" {
		res.Append(schema.SymbolChild("fill", r.Fill))
	}
	r.encodeTo(res)
	return res
}

// Circle is the `(fp_circle ...)` item. End is a point on the radius.
type Circle struct {
	Center items.Position
	End    items.Position
	Layer  string
	Fill   string
	outline
}

func (c *Circle) Decode(node *sexp.Node) error {
	const construct = "fp_circle"
	if err := schema.ExpectKeyword(node, construct, "fp_circle"); err != nil {
		return err
	}
	var out Circle
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
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *Circle) Encode() *sexp.Node {
	res := sexp.NewList("fp_circle",
		c.Center.Encode("center"), c.End.Encode("end"),
		schema.StringChild("layer", c.Layer))
	if c.Fill != "" {
		res.Append(schema.SymbolChild("fill", c.Fill))
	}
	c.encodeTo(res)
	return res
}

// Arc is the `(fp_arc ...)` item defined by start, mid and end points.
type Arc struct {
	Start items.Position
	Mid   items.Position
	End   items.Position
	Layer string
	outline
}

func (a *Arc) Decode(node *sexp.Node) error {
	const construct = "fp_arc"
	if err := schema.ExpectKeyword(node, construct, "fp_arc"); err != nil {
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
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*a = out
	return nil
}

func (a *Arc) Encode() *sexp.Node {
	res := sexp.NewList("fp_arc",
		a.Start.Encode("start"), a.Mid.Encode("mid"), a.End.Encode("end"),
		schema.StringChild("layer", a.Layer))
	a.encodeTo(res)
	return res
}

// Poly is the `(fp_poly ...)` item, a closed polygon over a point
// list.
type Poly struct {
	Points []items.Position
	Layer  string
	Fill   string
	outline
}

func (p *Poly) Decode(node *sexp.Node) error {
	const construct = "fp_poly"
	if err := schema.ExpectKeyword(node, construct, "fp_poly"); err != nil {
		return err
	}
	var out Poly
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = DecodePoints(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "fill":
			out.Fill, err = item.AtString(construct, "fill", 1)
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *Poly) Encode() *sexp.Node {
	res := sexp.NewList("fp_poly", EncodePoints(p.Points),
		schema.StringChild("layer", p.Layer))
	if p.Fill != "" {
		res.Append(schema.SymbolChild("fill", p.Fill))
	}
	p.encodeTo(res)
	return res
}

// Curve is the `(fp_curve ...)` item, a Bezier over four control
// points.
type Curve struct {
	Points []items.Position
	Layer  string
	outline
}

func (c *Curve) Decode(node *sexp.Node) error {
	const construct = "fp_curve"
	if err := schema.ExpectKeyword(node, construct, "fp_curve"); err != nil {
		return err
	}
	var out Curve
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = DecodePoints(item, construct)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *Curve) Encode() *sexp.Node {
	res := sexp.NewList("fp_curve", EncodePoints(c.Points),
		schema.StringChild("layer", c.Layer))
	c.encodeTo(res)
	return res
}

// DecodePoints reads a `(pts (xy ..) ...)` point list.
func DecodePoints(node *sexp.Node, construct string) ([]items.Position, error) {
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

// EncodePoints renders a point list under the `pts` keyword.
func EncodePoints(pts []items.Position) *sexp.Node {
	res := sexp.NewList("pts")
	for _, p := range pts {
		res.Append(p.Encode("xy"))
	}
	return res
}
