// Package symbol reads and writes symbol library files (.kicad_sym)
// and the symbol definitions embedded in schematics.
package symbol

import (
	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// PinNames is the `(pin_names ...)` display settings token.
type PinNames struct {
	Offset *float64
	Hide   bool
}

// Symbol is one symbol definition. Top-level symbols carry properties
// and unit sub-symbols; units carry the drawing items and pins.
type Symbol struct {
	LibID          string
	Extends        string
	Power          bool
	HidePinNumbers bool
	PinNames       *PinNames
	InBOM          *bool
	OnBoard        *bool
	Properties     []*items.Property
	GraphicItems   []schema.Codec
	Pins           []*Pin
	Units          []*Symbol

	Extras schema.Extras
}

// NewSymbol builds an empty symbol the way the host editor creates
// one, with the four standard properties in their fixed slots.
func NewSymbol(libID, reference, value string) *Symbol {
	yes := true
	std := func(key, val string, id int64, hide bool) *items.Property {
		eff := &items.Effects{Font: items.Font{Height: 1.27, Width: 1.27}, Hide: hide}
		slot := id
		return &items.Property{Key: key, Value: val, ID: &slot, Effects: eff}
	}
	return &Symbol{
		LibID: libID,
		InBOM: &yes, OnBoard: &yes,
		Properties: []*items.Property{
			std("Reference", reference, 0, false),
			std("Value", value, 1, false),
			std("Footprint", "", 2, true),
			std("Datasheet", "", 3, true),
		},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (s *Symbol) Decode(node *sexp.Node) error {
	const construct = "symbol"
	if err := schema.ExpectKeyword(node, construct, "symbol"); err != nil {
		return err
	}
	var out Symbol
	var err error
	if out.LibID, err = node.AtString(construct, "lib_id", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "extends":
			out.Extends, err = item.AtString(construct, "extends", 1)
		case "power":
			out.Power = true
		case "pin_numbers":
			out.HidePinNumbers = item.Flag("hide")
		case "pin_names":
			pn := &PinNames{Hide: item.Flag("hide")}
			if off := item.Child("offset"); off != nil {
				var o float64
				if o, err = off.AtFloat(construct, "pin_names", 1); err != nil {
					return err
				}
				pn.Offset = &o
			}
			out.PinNames = pn
		case "in_bom":
			var v string
			if v, err = item.AtString(construct, "in_bom", 1); err == nil {
				b := v == "yes"
				out.InBOM = &b
			}
		case "on_board":
			var v string
			if v, err = item.AtString(construct, "on_board", 1); err == nil {
				b := v == "yes"
				out.OnBoard = &b
			}
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		case "pin":
			p := &Pin{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Pins = append(out.Pins, p)
		case "symbol":
			u := &Symbol{}
			if err = u.Decode(item); err != nil {
				return err
			}
			out.Units = append(out.Units, u)
		default:
			if gi, ok := Graphics.New(item.Keyword()); ok {
				if err = gi.Decode(item); err != nil {
					return err
				}
				out.GraphicItems = append(out.GraphicItems, gi)
				break
			}
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func (s *Symbol) Encode() *sexp.Node {
	res := sexp.NewList("symbol", sexp.FromString(s.LibID))
	if s.Extends != "" {
		res.Append(schema.StringChild("extends", s.Extends))
	}
	if s.Power {
		res.Append(sexp.NewList("power"))
	}
	if s.HidePinNumbers {
		res.Append(sexp.NewList("pin_numbers", sexp.FromSymbol("hide")))
	}
	if s.PinNames != nil {
		pn := sexp.NewList("pin_names")
		if s.PinNames.Offset != nil {
			pn.Append(schema.FloatChild("offset", *s.PinNames.Offset))
		}
		if s.PinNames.Hide {
			pn.Append(sexp.FromSymbol("hide"))
		}
		res.Append(pn)
	}
	if s.InBOM != nil {
		res.Append(schema.SymbolChild("in_bom", yesNo(*s.InBOM)))
	}
	if s.OnBoard != nil {
		res.Append(schema.SymbolChild("on_board", yesNo(*s.OnBoard)))
	}
	for _, p := range s.Properties {
		res.Append(p.Encode())
	}
	for _, gi := range s.GraphicItems {
		res.Append(gi.Encode())
	}
	for _, p := range s.Pins {
		res.Append(p.Encode())
	}
	for _, u := range s.Units {
		res.Append(u.Encode())
	}
	s.Extras.EncodeTo(res)
	return res
}

// Lib is a whole .kicad_sym symbol library file.
type Lib struct {
	Version   int64
	Generator string
	Symbols   []*Symbol

	Extras schema.Extras

	// FilePath is where the library was loaded from or last saved. It
	// does not take part in encoding.
	FilePath string
}

// NewLib returns an empty library stamped with the given defaults.
func NewLib(d schema.Defaults) *Lib {
	return &Lib{Version: d.Version, Generator: d.Generator}
}

func (l *Lib) Decode(node *sexp.Node) error {
	const construct = "kicad_symbol_lib"
	if err := schema.ExpectKeyword(node, construct, "kicad_symbol_lib"); err != nil {
		return err
	}
	var out Lib
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "version":
			out.Version, err = item.AtInt(construct, "version", 1)
		case "generator":
			out.Generator, err = item.AtString(construct, "generator", 1)
		case "symbol":
			s := &Symbol{}
			if err = s.Decode(item); err != nil {
				return err
			}
			out.Symbols = append(out.Symbols, s)
		default:
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *Lib) Encode() *sexp.Node {
	res := sexp.NewList("kicad_symbol_lib",
		schema.IntChild("version", l.Version),
		schema.SymbolChild("generator", l.Generator))
	for _, s := range l.Symbols {
		res.Append(s.Encode())
	}
	l.Extras.EncodeTo(res)
	return res
}

// Lookup finds a symbol by its library identifier, or nil.
func (l *Lib) Lookup(libID string) *Symbol {
	for _, s := range l.Symbols {
		if s.LibID == libID {
			return s
		}
	}
	return nil
}

// Parse decodes symbol library file bytes.
func Parse(data []byte) (*Lib, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	l := &Lib{}
	if err := l.Decode(node); err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads and decodes a .kicad_sym file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*Lib, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.FilePath = path
	return l, nil
}

// Save encodes and writes the library. An empty path reuses the path
// the library was loaded from or last saved to.
func (l *Lib) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = l.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(l.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	l.FilePath = path
	return nil
}
