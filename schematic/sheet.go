package schematic

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// SheetPin is a connection point on a hierarchical sheet, paired with
// a hierarchical label inside the subsheet.
type SheetPin struct {
	Name     string
	Shape    string
	Position items.Position
	Effects  items.Effects
	ID       string
}

func (p *SheetPin) Decode(node *sexp.Node) error {
	const construct = "sheet_pin"
	if err := schema.ExpectKeyword(node, construct, "pin"); err != nil {
		return err
	}
	var out SheetPin
	var err error
	if out.Name, err = node.AtString(construct, "name", 1); err != nil {
		return err
	}
	if out.Shape, err = node.AtString(construct, "shape", 2); err != nil {
		return err
	}
	for _, item := range node.Children[3:] {
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
	*p = out
	return nil
}

func (p *SheetPin) Encode() *sexp.Node {
	res := sexp.NewList("pin", sexp.FromString(p.Name),
		sexp.FromSymbol(p.Shape),
		p.Position.Encode("at"), p.Effects.Encode())
	if p.ID != "" {
		res.Append(schema.SymbolChild("uuid", p.ID))
	}
	return res
}

// Sheet is a hierarchical subsheet reference. The sheet name and file
// ride in the two fixed properties "Sheetname" and "Sheetfile".
type Sheet struct {
	Position         items.Position
	Size             [2]float64
	FieldsAutoplaced bool
	Stroke           items.Stroke
	FillColor        *items.ColorRGBA
	ID               string
	Properties       []*items.Property
	Pins             []*SheetPin

	Extras schema.Extras
}

func (s *Sheet) Decode(node *sexp.Node) error {
	const construct = "sheet"
	if err := schema.ExpectKeyword(node, construct, "sheet"); err != nil {
		return err
	}
	var out Sheet
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
		case "fields_autoplaced":
			out.FieldsAutoplaced = true
		case "stroke":
			err = out.Stroke.Decode(item)
		case "fill":
			if c := item.Child("color"); c != nil {
				out.FillColor = &items.ColorRGBA{}
				err = out.FillColor.Decode(c)
			}
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		case "pin":
			p := &SheetPin{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Pins = append(out.Pins, p)
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

// Name returns the value of the fixed "Sheetname" property.
func (s *Sheet) Name() string { return s.property("Sheetname") }

// File returns the value of the fixed "Sheetfile" property.
func (s *Sheet) File() string { return s.property("Sheetfile") }

func (s *Sheet) property(key string) string {
	for _, p := range s.Properties {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

func (s *Sheet) Encode() *sexp.Node {
	res := sexp.NewList("sheet", s.Position.Encode("at"),
		sexp.NewList("size",
			sexp.FromFloat(s.Size[0]), sexp.FromFloat(s.Size[1])))
	if s.FieldsAutoplaced {
		res.Append(sexp.NewList("fields_autoplaced"))
	}
	res.Append(s.Stroke.Encode())
	if s.FillColor != nil {
		res.Append(sexp.NewList("fill", s.FillColor.Encode()))
	}
	if s.ID != "" {
		res.Append(schema.SymbolChild("uuid", s.ID))
	}
	for _, p := range s.Properties {
		res.Append(p.Encode())
	}
	for _, p := range s.Pins {
		res.Append(p.Encode())
	}
	s.Extras.EncodeTo(res)
	return res
}

// PathInstance is one `(path ...)` row of the sheet_instances or
// symbol_instances tables written by v6 hosts.
type PathInstance struct {
	Path      string
	Page      string
	Reference string
	Unit      *int64
	Value     string
	Footprint string
}

func (pi *PathInstance) Decode(node *sexp.Node) error {
	const construct = "path"
	if err := schema.ExpectKeyword(node, construct, "path"); err != nil {
		return err
	}
	var out PathInstance
	var err error
	if out.Path, err = node.AtString(construct, "path", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "page":
			out.Page, err = item.AtString(construct, "page", 1)
		case "reference":
			out.Reference, err = item.AtString(construct, "reference", 1)
		case "unit":
			var u int64
			if u, err = item.AtInt(construct, "unit", 1); err == nil {
				out.Unit = &u
			}
		case "value":
			out.Value, err = item.AtString(construct, "value", 1)
		case "footprint":
			out.Footprint, err = item.AtString(construct, "footprint", 1)
		}
		if err != nil {
			return err
		}
	}
	*pi = out
	return nil
}

func (pi *PathInstance) Encode() *sexp.Node {
	res := sexp.NewList("path", sexp.FromString(pi.Path))
	if pi.Page != "" {
		res.Append(schema.StringChild("page", pi.Page))
	}
	if pi.Reference != "" {
		res.Append(schema.StringChild("reference", pi.Reference))
	}
	if pi.Unit != nil {
		res.Append(schema.IntChild("unit", *pi.Unit))
	}
	if pi.Value != "" {
		res.Append(schema.StringChild("value", pi.Value))
	}
	if pi.Footprint != "" {
		res.Append(schema.StringChild("footprint", pi.Footprint))
	}
	return res
}

func decodeInstanceTable(node *sexp.Node) ([]*PathInstance, error) {
	var rows []*PathInstance
	for _, item := range node.Children[1:] {
		row := &PathInstance{}
		if err := row.Decode(item); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func encodeInstanceTable(keyword string, rows []*PathInstance) *sexp.Node {
	res := sexp.NewList(keyword)
	for _, row := range rows {
		res.Append(row.Encode())
	}
	return res
}
