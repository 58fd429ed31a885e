// Package schematic reads and writes schematic files (.kicad_sch).
package schematic

import (
	"github.com/google/uuid"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
	"github.com/kiforge/kicad-sexp/symbol"
)

// DefaultDefaults is what New stamps into a fresh schematic.
var DefaultDefaults = schema.Defaults{Version: 20211123, Generator: "eeschema"}

// Schematic models a whole .kicad_sch document. Body items keep their
// file order within each slice; children no decoder claims survive in
// Extras.
type Schematic struct {
	Version    int64
	Generator  string
	ID         string
	Paper      items.PageSettings
	TitleBlock *items.TitleBlock

	// LibSymbols are the symbol definitions cached in the document.
	LibSymbols []*symbol.Symbol

	Junctions   []*Junction
	NoConnects  []*NoConnect
	BusEntries  []*BusEntry
	Connections []*Connection
	Images      []*items.Image
	Texts       []*Text
	Labels      []*Label
	Symbols     []*SymbolInstance
	Sheets      []*Sheet

	SheetInstances  []*PathInstance
	SymbolInstances []*PathInstance

	Extras schema.Extras

	// FilePath is where the schematic was loaded from or last saved.
	// It does not take part in encoding.
	FilePath string
}

// New returns an empty single-sheet schematic with a fresh root
// identifier.
func New(d schema.Defaults) *Schematic {
	return &Schematic{
		Version:   d.Version,
		Generator: d.Generator,
		ID:        uuid.NewString(),
		Paper:     items.PageSettings{Size: "A4"},
		SheetInstances: []*PathInstance{
			{Path: "/", Page: "1"},
		},
	}
}

func (s *Schematic) Decode(node *sexp.Node) error {
	const construct = "kicad_sch"
	if err := schema.ExpectKeyword(node, construct, "kicad_sch"); err != nil {
		return err
	}
	var out Schematic
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "version":
			out.Version, err = item.AtInt(construct, "version", 1)
		case "generator":
			out.Generator, err = item.AtString(construct, "generator", 1)
		case "uuid":
			out.ID, err = item.AtString(construct, "uuid", 1)
		case "paper", "page":
			err = out.Paper.Decode(item)
		case "title_block":
			out.TitleBlock = &items.TitleBlock{}
			err = out.TitleBlock.Decode(item)
		case "lib_symbols":
			for _, def := range item.Children[1:] {
				sym := &symbol.Symbol{}
				if err = sym.Decode(def); err != nil {
					return err
				}
				out.LibSymbols = append(out.LibSymbols, sym)
			}
		case "junction":
			j := &Junction{}
			if err = j.Decode(item); err != nil {
				return err
			}
			out.Junctions = append(out.Junctions, j)
		case "no_connect":
			n := &NoConnect{}
			if err = n.Decode(item); err != nil {
				return err
			}
			out.NoConnects = append(out.NoConnects, n)
		case "bus_entry":
			b := &BusEntry{}
			if err = b.Decode(item); err != nil {
				return err
			}
			out.BusEntries = append(out.BusEntries, b)
		case "wire", "bus", "polyline":
			c := &Connection{}
			if err = c.Decode(item); err != nil {
				return err
			}
			out.Connections = append(out.Connections, c)
		case "image":
			im := &items.Image{}
			if err = im.Decode(item); err != nil {
				return err
			}
			out.Images = append(out.Images, im)
		case "text":
			t := &Text{}
			if err = t.Decode(item); err != nil {
				return err
			}
			out.Texts = append(out.Texts, t)
		case "label", "global_label", "hierarchical_label":
			l := &Label{}
			if err = l.Decode(item); err != nil {
				return err
			}
			out.Labels = append(out.Labels, l)
		case "symbol":
			si := &SymbolInstance{}
			if err = si.Decode(item); err != nil {
				return err
			}
			out.Symbols = append(out.Symbols, si)
		case "sheet":
			sh := &Sheet{}
			if err = sh.Decode(item); err != nil {
				return err
			}
			out.Sheets = append(out.Sheets, sh)
		case "sheet_instances":
			out.SheetInstances, err = decodeInstanceTable(item)
		case "symbol_instances":
			out.SymbolInstances, err = decodeInstanceTable(item)
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

func (s *Schematic) Encode() *sexp.Node {
	res := sexp.NewList("kicad_sch",
		schema.IntChild("version", s.Version),
		schema.SymbolChild("generator", s.Generator))
	if s.ID != "" {
		res.Append(schema.SymbolChild("uuid", s.ID))
	}
	res.Append(s.Paper.Encode())
	if s.TitleBlock != nil {
		res.Append(s.TitleBlock.Encode())
	}
	libs := sexp.NewList("lib_symbols")
	for _, sym := range s.LibSymbols {
		libs.Append(sym.Encode())
	}
	res.Append(libs)
	for _, j := range s.Junctions {
		res.Append(j.Encode())
	}
	for _, n := range s.NoConnects {
		res.Append(n.Encode())
	}
	for _, b := range s.BusEntries {
		res.Append(b.Encode())
	}
	for _, c := range s.Connections {
		res.Append(c.Encode())
	}
	for _, im := range s.Images {
		res.Append(im.Encode())
	}
	for _, t := range s.Texts {
		res.Append(t.Encode())
	}
	for _, l := range s.Labels {
		res.Append(l.Encode())
	}
	for _, si := range s.Symbols {
		res.Append(si.Encode())
	}
	for _, sh := range s.Sheets {
		res.Append(sh.Encode())
	}
	s.Extras.EncodeTo(res)
	if len(s.SheetInstances) > 0 {
		res.Append(encodeInstanceTable("sheet_instances", s.SheetInstances))
	}
	if len(s.SymbolInstances) > 0 {
		res.Append(encodeInstanceTable("symbol_instances", s.SymbolInstances))
	}
	return res
}

// LibSymbol finds a cached definition by library identifier, or nil.
func (s *Schematic) LibSymbol(libID string) *symbol.Symbol {
	for _, sym := range s.LibSymbols {
		if sym.LibID == libID {
			return sym
		}
	}
	return nil
}

// Parse decodes schematic file bytes.
func Parse(data []byte) (*Schematic, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	s := &Schematic{}
	if err := s.Decode(node); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and decodes a .kicad_sch file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*Schematic, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.FilePath = path
	return s, nil
}

// Save encodes and writes the schematic. An empty path reuses the path
// the schematic was loaded from or last saved to.
func (s *Schematic) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = s.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(s.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	s.FilePath = path
	return nil
}
