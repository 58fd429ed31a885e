// Package libtable reads and writes the footprint and symbol library
// tables (fp_lib_table, sym_lib_table).
package libtable

import (
	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/kind"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Library is one `(lib ...)` row of a table.
type Library struct {
	Name        string
	Type        string
	URI         string
	Options     string
	Description string
	Disabled    bool

	Extras schema.Extras
}

func (l *Library) Decode(node *sexp.Node) error {
	const construct = "lib"
	if err := schema.ExpectKeyword(node, construct, "lib"); err != nil {
		return err
	}
	out := Library{Type: "KiCad"}
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "name":
			out.Name, err = item.AtString(construct, "name", 1)
		case "type":
			out.Type, err = item.AtString(construct, "type", 1)
		case "uri":
			out.URI, err = item.AtString(construct, "uri", 1)
		case "options":
			out.Options, err = item.AtString(construct, "options", 1)
		case "descr":
			out.Description, err = item.AtString(construct, "descr", 1)
		case "disabled":
			out.Disabled = true
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

func (l *Library) Encode() *sexp.Node {
	res := sexp.NewList("lib",
		schema.StringChild("name", l.Name),
		schema.StringChild("type", l.Type),
		schema.StringChild("uri", l.URI),
		schema.StringChild("options", l.Options),
		schema.StringChild("descr", l.Description))
	if l.Disabled {
		res.Append(sexp.NewList("disabled"))
	}
	l.Extras.EncodeTo(res)
	return res
}

// LibTable is a whole fp_lib_table or sym_lib_table file. Kind selects
// the root keyword.
type LibTable struct {
	Kind      kind.Kind
	Version   *int64
	Libraries []*Library

	Extras schema.Extras

	// FilePath is where the table was loaded from or last saved. It
	// does not take part in encoding.
	FilePath string
}

// New returns an empty table of the given kind at format version 7.
func New(k kind.Kind) *LibTable {
	v := int64(7)
	return &LibTable{Kind: k, Version: &v}
}

func (t *LibTable) Decode(node *sexp.Node) error {
	const construct = "lib_table"
	if err := schema.ExpectKeyword(node, construct,
		"fp_lib_table", "sym_lib_table"); err != nil {
		return err
	}
	out := LibTable{}
	out.Kind, _ = kind.FromRoot(node.Keyword())
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "version":
			var v int64
			if v, err = item.AtInt(construct, "version", 1); err == nil {
				out.Version = &v
			}
		case "lib":
			l := &Library{}
			if err = l.Decode(item); err != nil {
				return err
			}
			out.Libraries = append(out.Libraries, l)
		default:
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *LibTable) Encode() *sexp.Node {
	res := sexp.NewList(t.Kind.RootKeyword())
	if t.Version != nil {
		res.Append(schema.IntChild("version", *t.Version))
	}
	for _, l := range t.Libraries {
		res.Append(l.Encode())
	}
	t.Extras.EncodeTo(res)
	return res
}

// Lookup returns the row with the given nickname, or nil.
func (t *LibTable) Lookup(name string) *Library {
	for _, l := range t.Libraries {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Load reads and decodes a library table file. The path is remembered
// so Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*LibTable, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	t := &LibTable{}
	if err := t.Decode(node); err != nil {
		return nil, err
	}
	t.FilePath = path
	return t, nil
}

// Save encodes and writes the table. An empty path reuses the path the
// table was loaded from or last saved to.
func (t *LibTable) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = t.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(t.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	t.FilePath = path
	return nil
}
