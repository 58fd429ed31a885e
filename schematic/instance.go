package schematic

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// PinRef ties a placed symbol's pin number to its net identifier.
type PinRef struct {
	Number string
	ID     string
}

// SymbolInstance is one placed `(symbol ...)` in the schematic body,
// referencing a definition from the lib_symbols section.
type SymbolInstance struct {
	LibName          string
	LibID            string
	Position         items.Position
	Mirror           string
	Unit             *int64
	InBOM            bool
	OnBoard          bool
	DNP              *bool
	FieldsAutoplaced bool
	ID               string
	Properties       []*items.Property
	Pins             []*PinRef

	Extras schema.Extras
}

func (s *SymbolInstance) Decode(node *sexp.Node) error {
	const construct = "symbol"
	if err := schema.ExpectKeyword(node, construct, "symbol"); err != nil {
		return err
	}
	var out SymbolInstance
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "lib_name":
			out.LibName, err = item.AtString(construct, "lib_name", 1)
		case "lib_id":
			out.LibID, err = item.AtString(construct, "lib_id", 1)
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "mirror":
			out.Mirror, err = item.AtString(construct, "mirror", 1)
		case "unit":
			var u int64
			if u, err = item.AtInt(construct, "unit", 1); err == nil {
				out.Unit = &u
			}
		case "in_bom":
			var v string
			if v, err = item.AtString(construct, "in_bom", 1); err == nil {
				out.InBOM = v == "yes"
			}
		case "on_board":
			var v string
			if v, err = item.AtString(construct, "on_board", 1); err == nil {
				out.OnBoard = v == "yes"
			}
		case "dnp":
			var v string
			if v, err = item.AtString(construct, "dnp", 1); err == nil {
				b := v == "yes"
				out.DNP = &b
			}
		case "fields_autoplaced":
			out.FieldsAutoplaced = true
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		case "pin":
			ref := &PinRef{}
			if ref.Number, err = item.AtString(construct, "pin", 1); err != nil {
				return err
			}
			if u := item.Child("uuid"); u != nil {
				if ref.ID, err = u.AtString(construct, "pin", 1); err != nil {
					return err
				}
			}
			out.Pins = append(out.Pins, ref)
		default:
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func (s *SymbolInstance) Encode() *sexp.Node {
	res := sexp.NewList("symbol")
	if s.LibName != "" {
		res.Append(schema.StringChild("lib_name", s.LibName))
	}
	res.Append(schema.StringChild("lib_id", s.LibID))
	res.Append(s.Position.Encode("at"))
	if s.Mirror != "" {
		res.Append(schema.SymbolChild("mirror", s.Mirror))
	}
	if s.Unit != nil {
		res.Append(schema.IntChild("unit", *s.Unit))
	}
	res.Append(schema.SymbolChild("in_bom", yesNo(s.InBOM)))
	res.Append(schema.SymbolChild("on_board", yesNo(s.OnBoard)))
	if s.DNP != nil {
		res.Append(schema.SymbolChild("dnp", yesNo(*s.DNP)))
	}
	if s.FieldsAutoplaced {
		res.Append(sexp.NewList("fields_autoplaced"))
	}
	if s.ID != "" {
		res.Append(schema.SymbolChild("uuid", s.ID))
	}
	for _, p := range s.Properties {
		res.Append(p.Encode())
	}
	for _, ref := range s.Pins {
		pin := sexp.NewList("pin", sexp.FromString(ref.Number))
		if ref.ID != "" {
			pin.Append(schema.SymbolChild("uuid", ref.ID))
		}
		res.Append(pin)
	}
	s.Extras.EncodeTo(res)
	return res
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
