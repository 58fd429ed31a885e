// Package board reads and writes board files (.kicad_pcb).
package board

import (
	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/footprint"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// DefaultDefaults is what New stamps into a fresh board.
var DefaultDefaults = schema.Defaults{Version: 20211014, Generator: "pcbnew"}

// Board models a whole .kicad_pcb document. Children whose keyword no
// decoder claims survive in Extras.
type Board struct {
	Version    int64
	Generator  string
	General    General
	Paper      items.PageSettings
	TitleBlock *items.TitleBlock
	Layers     []*Layer
	Setup      Setup
	Properties []*items.Property
	Nets       []*items.Net
	Footprints []*footprint.Footprint

	// Graphic and trace items keep their file order within each
	// registry's slice.
	GraphicItems []schema.Codec
	TraceItems   []schema.Codec
	Zones        []*Zone
	Groups       []*items.Group
	Images       []*items.Image

	Extras schema.Extras

	// FilePath is where the board was loaded from or last saved. It
	// does not take part in encoding.
	FilePath string
}

// New returns an empty board with the standard paper size and copper
// pair, ready to save.
func New(d schema.Defaults) *Board {
	return &Board{
		Version:   d.Version,
		Generator: d.Generator,
		General:   General{Thickness: 1.6},
		Paper:     items.PageSettings{Size: "A4"},
		Layers: []*Layer{
			{Ordinal: 0, Name: "F.Cu", Type: "signal"},
			{Ordinal: 31, Name: "B.Cu", Type: "signal"},
		},
		Nets: []*items.Net{{Number: 0, Name: ""}},
	}
}

func (b *Board) Decode(node *sexp.Node) error {
	const construct = "kicad_pcb"
	if err := schema.ExpectKeyword(node, construct, "kicad_pcb"); err != nil {
		return err
	}
	var out Board
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "version":
			out.Version, err = item.AtInt(construct, "version", 1)
		case "generator":
			out.Generator, err = item.AtString(construct, "generator", 1)
		case "general":
			err = out.General.Decode(item)
		case "paper", "page":
			err = out.Paper.Decode(item)
		case "title_block":
			out.TitleBlock = &items.TitleBlock{}
			err = out.TitleBlock.Decode(item)
		case "layers":
			for _, row := range item.Children[1:] {
				l := &Layer{}
				if err = l.Decode(row); err != nil {
					return err
				}
				out.Layers = append(out.Layers, l)
			}
		case "setup":
			err = out.Setup.Decode(item)
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		case "net":
			n := &items.Net{}
			if err = n.Decode(item); err != nil {
				return err
			}
			out.Nets = append(out.Nets, n)
		case "footprint", "module":
			f := &footprint.Footprint{}
			if err = f.Decode(item); err != nil {
				return err
			}
			out.Footprints = append(out.Footprints, f)
		case "zone":
			z := &Zone{}
			if err = z.Decode(item); err != nil {
				return err
			}
			out.Zones = append(out.Zones, z)
		case "group":
			g := &items.Group{}
			if err = g.Decode(item); err != nil {
				return err
			}
			out.Groups = append(out.Groups, g)
		case "image":
			im := &items.Image{}
			if err = im.Decode(item); err != nil {
				return err
			}
			out.Images = append(out.Images, im)
		default:
			if gi, ok := Graphics.New(item.Keyword()); ok {
				if err = gi.Decode(item); err != nil {
					return err
				}
				out.GraphicItems = append(out.GraphicItems, gi)
				break
			}
			if ti, ok := Traces.New(item.Keyword()); ok {
				if err = ti.Decode(item); err != nil {
					return err
				}
				out.TraceItems = append(out.TraceItems, ti)
				break
			}
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*b = out
	return nil
}

func (b *Board) Encode() *sexp.Node {
	res := sexp.NewList("kicad_pcb",
		schema.IntChild("version", b.Version),
		schema.SymbolChild("generator", b.Generator),
		b.General.Encode(),
		b.Paper.Encode())
	if b.TitleBlock != nil {
		res.Append(b.TitleBlock.Encode())
	}
	layers := sexp.NewList("layers")
	for _, l := range b.Layers {
		layers.Append(l.Encode())
	}
	res.Append(layers)
	res.Append(b.Setup.Encode())
	for _, p := range b.Properties {
		res.Append(p.Encode())
	}
	for _, n := range b.Nets {
		res.Append(n.Encode())
	}
	for _, f := range b.Footprints {
		res.Append(f.Encode())
	}
	for _, im := range b.Images {
		res.Append(im.Encode())
	}
	for _, gi := range b.GraphicItems {
		res.Append(gi.Encode())
	}
	for _, ti := range b.TraceItems {
		res.Append(ti.Encode())
	}
	for _, z := range b.Zones {
		res.Append(z.Encode())
	}
	for _, g := range b.Groups {
		res.Append(g.Encode())
	}
	b.Extras.EncodeTo(res)
	return res
}

// NetByName finds a board net by name, or nil.
func (b *Board) NetByName(name string) *items.Net {
	for _, n := range b.Nets {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Parse decodes board file bytes.
func Parse(data []byte) (*Board, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	b := &Board{}
	if err := b.Decode(node); err != nil {
		return nil, err
	}
	return b, nil
}

// Load reads and decodes a .kicad_pcb file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*Board, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	b, err := Parse(data)
	if err != nil {
		return nil, err
	}
	b.FilePath = path
	return b, nil
}

// Save encodes and writes the board. An empty path reuses the path the
// board was loaded from or last saved to.
func (b *Board) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = b.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(b.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	b.FilePath = path
	return nil
}
