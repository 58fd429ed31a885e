package items

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Net associates an ordinal with a net name, both in the board-level
// net list and in pad net references.
type Net struct {
	Number int64
	Name   string
}

func (n *Net) Decode(node *sexp.Node) error {
	const construct = "net"
	if err := schema.ExpectKeyword(node, construct, "net"); err != nil {
		return err
	}
	var out Net
	var err error
	if out.Number, err = node.AtInt(construct, "number", 1); err != nil {
		return err
	}
	if out.Name, err = node.AtString(construct, "name", 2); err != nil {
		return err
	}
	*n = out
	return nil
}

func (n *Net) Encode() *sexp.Node {
	return sexp.NewList("net", sexp.FromInt(n.Number), sexp.FromString(n.Name))
}

// Property is a named key/value attached to a document or footprint.
// Board-level properties carry only the pair; placed properties add a
// position and text effects.
type Property struct {
	Key      string
	Value    string
	ID       *int64
	Position *Position
	Layer    string
	Hide     bool
	Effects  *Effects
}

func (p *Property) Decode(node *sexp.Node) error {
	const construct = "property"
	if err := schema.ExpectKeyword(node, construct, "property"); err != nil {
		return err
	}
	var out Property
	var err error
	if out.Key, err = node.AtString(construct, "key", 1); err != nil {
		return err
	}
	if out.Value, err = node.AtString(construct, "value", 2); err != nil {
		return err
	}
	for _, item := range node.Children[3:] {
		switch item.Keyword() {
		case "id":
			var id int64
			if id, err = item.AtInt(construct, "id", 1); err == nil {
				out.ID = &id
			}
		case "at":
			var pos Position
			if pos, err = DecodePosition(item, construct); err == nil {
				out.Position = &pos
			}
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "effects":
			out.Effects = &Effects{}
			err = out.Effects.Decode(item)
		default:
			if item.Text() == "hide" {
				out.Hide = true
			}
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *Property) Encode() *sexp.Node {
	res := sexp.NewList("property",
		sexp.FromString(p.Key), sexp.FromString(p.Value))
	if p.ID != nil {
		res.Append(schema.IntChild("id", *p.ID))
	}
	if p.Position != nil {
		res.Append(p.Position.Encode("at"))
	}
	if p.Layer != "" {
		res.Append(schema.StringChild("layer", p.Layer))
	}
	if p.Hide {
		res.Append(sexp.FromSymbol("hide"))
	}
	if p.Effects != nil {
		res.Append(p.Effects.Encode())
	}
	return res
}
