package symbol

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// PinAlternate is an `(alternate ...)` function of a pin.
type PinAlternate struct {
	Name           string
	ElectricalType string
	GraphicalStyle string
}

func (a *PinAlternate) Decode(node *sexp.Node) error {
	const construct = "alternate"
	if err := schema.ExpectKeyword(node, construct, "alternate"); err != nil {
		return err
	}
	var out PinAlternate
	var err error
	if out.Name, err = node.AtString(construct, "name", 1); err != nil {
		return err
	}
	if out.ElectricalType, err = node.AtString(construct, "electrical_type", 2); err != nil {
		return err
	}
	if out.GraphicalStyle, err = node.AtString(construct, "graphical_style", 3); err != nil {
		return err
	}
	*a = out
	return nil
}

func (a *PinAlternate) Encode() *sexp.Node {
	return sexp.NewList("alternate", sexp.FromString(a.Name),
		sexp.FromSymbol(a.ElectricalType), sexp.FromSymbol(a.GraphicalStyle))
}

// Pin is one `(pin ...)` of a symbol unit.
type Pin struct {
	ElectricalType string
	GraphicalStyle string
	Position       items.Position
	Length         float64
	Hide           bool
	Name           string
	NameEffects    *items.Effects
	Number         string
	NumberEffects  *items.Effects
	Alternates     []*PinAlternate
}

func (p *Pin) Decode(node *sexp.Node) error {
	const construct = "pin"
	if err := schema.ExpectKeyword(node, construct, "pin"); err != nil {
		return err
	}
	var out Pin
	var err error
	if out.ElectricalType, err = node.AtString(construct, "electrical_type", 1); err != nil {
		return err
	}
	if out.GraphicalStyle, err = node.AtString(construct, "graphical_style", 2); err != nil {
		return err
	}
	for _, item := range node.Children[3:] {
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "length":
			out.Length, err = item.AtFloat(construct, "length", 1)
		case "name":
			out.Name, out.NameEffects, err = decodeLabeled(item, construct)
		case "number":
			out.Number, out.NumberEffects, err = decodeLabeled(item, construct)
		case "alternate":
			a := &PinAlternate{}
			if err = a.Decode(item); err != nil {
				return err
			}
			out.Alternates = append(out.Alternates, a)
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

func decodeLabeled(node *sexp.Node, construct string) (string, *items.Effects, error) {
	text, err := node.AtString(construct, node.Keyword(), 1)
	if err != nil {
		return "", nil, err
	}
	if e := node.Child("effects"); e != nil {
		eff := &items.Effects{}
		if err := eff.Decode(e); err != nil {
			return "", nil, err
		}
		return text, eff, nil
	}
	return text, nil, nil
}

func (p *Pin) Encode() *sexp.Node {
	res := sexp.NewList("pin",
		sexp.FromSymbol(p.ElectricalType),
		sexp.FromSymbol(p.GraphicalStyle),
		p.Position.Encode("at"),
		schema.FloatChild("length", p.Length))
	if p.Hide {
		res.Append(sexp.FromSymbol("hide"))
	}
	res.Append(encodeLabeled("name", p.Name, p.NameEffects))
	res.Append(encodeLabeled("number", p.Number, p.NumberEffects))
	for _, a := range p.Alternates {
		res.Append(a.Encode())
	}
	return res
}

func encodeLabeled(keyword, text string, eff *items.Effects) *sexp.Node {
	res := sexp.NewList(keyword, sexp.FromString(text))
	if eff != nil {
		res.Append(eff.Encode())
	}
	return res
}
