package schematic

import (
	"github.com/kiforge/kicad-sexp/footprint"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Junction is a wire junction dot.
type Junction struct {
	Position items.Position
	Diameter float64
	Color    *items.ColorRGBA
	ID       string
}

func (j *Junction) Decode(node *sexp.Node) error {
	const construct = "junction"
	if err := schema.ExpectKeyword(node, construct, "junction"); err != nil {
		return err
	}
	var out Junction
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "diameter":
			out.Diameter, err = item.AtFloat(construct, "diameter", 1)
		case "color":
			out.Color = &items.ColorRGBA{}
			err = out.Color.Decode(item)
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		}
		if err != nil {
			return err
		}
	}
	*j = out
	return nil
}

func (j *Junction) Encode() *sexp.Node {
	res := sexp.NewList("junction", j.Position.Encode("at"),
		schema.FloatChild("diameter", j.Diameter))
	if j.Color != nil {
		res.Append(j.Color.Encode())
	}
	if j.ID != "" {
		res.Append(schema.SymbolChild("uuid", j.ID))
	}
	return res
}

// NoConnect is an unconnected-pin marker.
type NoConnect struct {
	Position items.Position
	ID       string
}

func (n *NoConnect) Decode(node *sexp.Node) error {
	const construct = "no_connect"
	if err := schema.ExpectKeyword(node, construct, "no_connect"); err != nil {
		return err
	}
	var out NoConnect
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		}
		if err != nil {
			return err
		}
	}
	*n = out
	return nil
}

func (n *NoConnect) Encode() *sexp.Node {
	res := sexp.NewList("no_connect", n.Position.Encode("at"))
	if n.ID != "" {
		res.Append(schema.SymbolChild("uuid", n.ID))
	}
	return res
}

// BusEntry joins a wire to a bus.
type BusEntry struct {
	Position items.Position
	Size     [2]float64
	Stroke   items.Stroke
	ID       string
}

func (b *BusEntry) Decode(node *sexp.Node) error {
	const construct = "bus_entry"
	if err := schema.ExpectKeyword(node, construct, "bus_entry"); err != nil {
		return err
	}
	var out BusEntry
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "size":
			if out.Size[0], err = item.AtFloat(construct, "size", 1); err != nil {
				return err
			}
			out.Size[1], err = item.AtFloat(construct, "size", 2)
		case "stroke":
			err = out.Stroke.Decode(item)
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		}
		if err != nil {
			return err
		}
	}
	*b = out
	return nil
}

func (b *BusEntry) Encode() *sexp.Node {
	res := sexp.NewList("bus_entry", b.Position.Encode("at"),
		sexp.NewList("size",
			sexp.FromFloat(b.Size[0]), sexp.FromFloat(b.Size[1])),
		b.Stroke.Encode())
	if b.ID != "" {
		res.Append(schema.SymbolChild("uuid", b.ID))
	}
	return res
}

// Connection is a wire, bus or graphical polyline: the three share one
// shape and differ only in keyword.
type Connection struct {
	Kind   string // "wire", "bus" or "polyline"
	Points []items.Position
	Stroke items.Stroke
	ID     string
}

func (c *Connection) Decode(node *sexp.Node) error {
	const construct = "connection"
	if err := schema.ExpectKeyword(node, construct,
		"wire", "bus", "polyline"); err != nil {
		return err
	}
	out := Connection{Kind: node.Keyword()}
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pts":
			out.Points, err = footprint.DecodePoints(item, out.Kind)
		case "stroke":
			err = out.Stroke.Decode(item)
		case "uuid":
			out.ID, err = item.AtString(out.Kind, "uuid", 1)
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *Connection) Encode() *sexp.Node {
	res := sexp.NewList(c.Kind, footprint.EncodePoints(c.Points),
		c.Stroke.Encode())
	if c.ID != "" {
		res.Append(schema.SymbolChild("uuid", c.ID))
	}
	return res
}

// Text is free text placed on the sheet.
type Text struct {
	Text     string
	Position items.Position
	Effects  items.Effects
	ID       string
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
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *Text) Encode() *sexp.Node {
	res := sexp.NewList("text", sexp.FromString(t.Text),
		t.Position.Encode("at"), t.Effects.Encode())
	if t.ID != "" {
		res.Append(schema.SymbolChild("uuid", t.ID))
	}
	return res
}

// Label is a net label. Kind distinguishes local labels from global
// and hierarchical ones; the latter two carry a shape.
type Label struct {
	Kind             string // "label", "global_label" or "hierarchical_label"
	Text             string
	Shape            string
	FieldsAutoplaced bool
	Position         items.Position
	Effects          items.Effects
	ID               string
	Properties       []*items.Property
}

func (l *Label) Decode(node *sexp.Node) error {
	const construct = "label"
	if err := schema.ExpectKeyword(node, construct,
		"label", "global_label", "hierarchical_label"); err != nil {
		return err
	}
	out := Label{Kind: node.Keyword()}
	var err error
	if out.Text, err = node.AtString(out.Kind, "text", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "shape":
			out.Shape, err = item.AtString(out.Kind, "shape", 1)
		case "fields_autoplaced":
			out.FieldsAutoplaced = true
		case "at":
			out.Position, err = items.DecodePosition(item, out.Kind)
		case "effects":
			err = out.Effects.Decode(item)
		case "uuid":
			out.ID, err = item.AtString(out.Kind, "uuid", 1)
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		}
		if err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *Label) Encode() *sexp.Node {
	res := sexp.NewList(l.Kind, sexp.FromString(l.Text))
	if l.Shape != "" {
		res.Append(schema.SymbolChild("shape", l.Shape))
	}
	if l.FieldsAutoplaced {
		res.Append(sexp.NewList("fields_autoplaced"))
	}
	res.Append(l.Position.Encode("at"))
	res.Append(l.Effects.Encode())
	if l.ID != "" {
		res.Append(schema.SymbolChild("uuid", l.ID))
	}
	for _, p := range l.Properties {
		res.Append(p.Encode())
	}
	return res
}
