// Package footprint reads and writes footprint files (.kicad_mod) and
// the footprint entities embedded in board files.
package footprint

import (
	"github.com/google/uuid"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Attributes is the `(attr ...)` token describing how a footprint is
// mounted and whether fabrication outputs include it.
type Attributes struct {
	Type                  string // "smd" or "through_hole", empty for neither
	BoardOnly             bool
	ExcludeFromPosFiles   bool
	ExcludeFromBOM        bool
	AllowMissingCourtyard bool
}

func (a *Attributes) Decode(node *sexp.Node) error {
	const construct = "attr"
	if err := schema.ExpectKeyword(node, construct, "attr"); err != nil {
		return err
	}
	var out Attributes
	for _, item := range node.Children[1:] {
		switch item.Text() {
		case "smd", "through_hole":
			out.Type = item.Text()
		case "board_only":
			out.BoardOnly = true
		case "exclude_from_pos_files":
			out.ExcludeFromPosFiles = true
		case "exclude_from_bom":
			out.ExcludeFromBOM = true
		case "allow_missing_courtyard":
			out.AllowMissingCourtyard = true
		}
	}
	*a = out
	return nil
}

func (a *Attributes) Encode() *sexp.Node {
	res := sexp.NewList("attr")
	if a.Type != "" {
		res.Append(sexp.FromSymbol(a.Type))
	}
	if a.BoardOnly {
		res.Append(sexp.FromSymbol("board_only"))
	}
	if a.ExcludeFromPosFiles {
		res.Append(sexp.FromSymbol("exclude_from_pos_files"))
	}
	if a.ExcludeFromBOM {
		res.Append(sexp.FromSymbol("exclude_from_bom"))
	}
	if a.AllowMissingCourtyard {
		res.Append(sexp.FromSymbol("allow_missing_courtyard"))
	}
	return res
}

// Footprint models one footprint, standalone or embedded in a board.
// LibraryLink is the "Library:Name" identifier; standalone files carry
// version and generator where embedded footprints do not.
type Footprint struct {
	LibraryLink string
	Version     *int64
	Generator   string
	Locked      bool
	Placed      bool
	Layer       string
	TEdit       string
	ID          string
	Position    *items.Position
	Description string
	Tags        string
	Properties  []*items.Property
	Path        string
	Attributes  *Attributes

	Items  []schema.Codec
	Pads   []*Pad
	Models []*Model

	Extras schema.Extras

	// FilePath is where the footprint was loaded from or last saved.
	// It does not take part in encoding.
	FilePath string
}

// New returns a fresh standalone footprint for the given library link,
// stamped with a random identifier.
func New(libraryLink string, d schema.Defaults) *Footprint {
	v := d.Version
	return &Footprint{
		LibraryLink: libraryLink,
		Version:     &v,
		Generator:   d.Generator,
		Layer:       "F.Cu",
		ID:          uuid.NewString(),
	}
}

func (f *Footprint) Decode(node *sexp.Node) error {
	const construct = "footprint"
	if err := schema.ExpectKeyword(node, construct, "footprint", "module"); err != nil {
		return err
	}
	var out Footprint
	var err error
	if out.LibraryLink, err = node.AtString(construct, "library_link", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "version":
			var v int64
			if v, err = item.AtInt(construct, "version", 1); err == nil {
				out.Version = &v
			}
		case "generator":
			out.Generator, err = item.AtString(construct, "generator", 1)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "tedit":
			out.TEdit, err = item.AtString(construct, "tedit", 1)
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		case "at":
			var p items.Position
			if p, err = items.DecodePosition(item, construct); err == nil {
				out.Position = &p
			}
		case "descr":
			out.Description, err = item.AtString(construct, "descr", 1)
		case "tags":
			out.Tags, err = item.AtString(construct, "tags", 1)
		case "property":
			p := &items.Property{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Properties = append(out.Properties, p)
		case "path":
			out.Path, err = item.AtString(construct, "path", 1)
		case "attr":
			out.Attributes = &Attributes{}
			err = out.Attributes.Decode(item)
		case "pad":
			p := &Pad{}
			if err = p.Decode(item); err != nil {
				return err
			}
			out.Pads = append(out.Pads, p)
		case "model":
			m := &Model{}
			if err = m.Decode(item); err != nil {
				return err
			}
			out.Models = append(out.Models, m)
		default:
			if gi, ok := Graphics.New(item.Keyword()); ok {
				if err = gi.Decode(item); err != nil {
					return err
				}
				out.Items = append(out.Items, gi)
				break
			}
			switch item.Text() {
			case "locked":
				out.Locked = true
			case "placed":
				out.Placed = true
			default:
				out.Extras.Add(item)
			}
		}
		if err != nil {
			return err
		}
	}
	*f = out
	return nil
}

func (f *Footprint) Encode() *sexp.Node {
	res := sexp.NewList("footprint", sexp.FromString(f.LibraryLink))
	if f.Version != nil {
		res.Append(schema.IntChild("version", *f.Version))
	}
	if f.Generator != "" {
		res.Append(schema.SymbolChild("generator", f.Generator))
	}
	if f.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	if f.Placed {
		res.Append(sexp.FromSymbol("placed"))
	}
	if f.Layer != "" {
		res.Append(schema.StringChild("layer", f.Layer))
	}
	if f.TEdit != "" {
		res.Append(schema.SymbolChild("tedit", f.TEdit))
	}
	if f.ID != "" {
		res.Append(schema.SymbolChild("tstamp", f.ID))
	}
	if f.Position != nil {
		res.Append(f.Position.Encode("at"))
	}
	if f.Description != "" {
		res.Append(schema.StringChild("descr", f.Description))
	}
	if f.Tags != "" {
		res.Append(schema.StringChild("tags", f.Tags))
	}
	for _, p := range f.Properties {
		res.Append(p.Encode())
	}
	if f.Path != "" {
		res.Append(schema.StringChild("path", f.Path))
	}
	if f.Attributes != nil {
		res.Append(f.Attributes.Encode())
	}
	for _, gi := range f.Items {
		res.Append(gi.Encode())
	}
	for _, p := range f.Pads {
		res.Append(p.Encode())
	}
	f.Extras.EncodeTo(res)
	for _, m := range f.Models {
		res.Append(m.Encode())
	}
	return res
}

// Parse decodes standalone footprint file bytes.
func Parse(data []byte) (*Footprint, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &Footprint{}
	if err := f.Decode(node); err != nil {
		return nil, err
	}
	return f, nil
}

// Load reads and decodes a .kicad_mod file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*Footprint, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.FilePath = path
	return f, nil
}

// Save encodes and writes the footprint. An empty path reuses the path
// the footprint was loaded from or last saved to.
func (f *Footprint) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = f.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(f.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	f.FilePath = path
	return nil
}
