// Package dru reads and writes custom design rule files (.kicad_dru).
// Unlike the other document kinds a rule file is a flat sequence of
// top-level expressions rather than a single root list.
package dru

import (
	"bytes"

	"github.com/kiforge/kicad-sexp/condition"
	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Constraint is one `(constraint type ...)` entry of a rule. Bounds
// keep their unit suffix verbatim ("0.2mm", "10mil").
type Constraint struct {
	Type string
	Min  string
	Opt  string
	Max  string
	// Items holds the trailing bare arguments of item-typed
	// constraints such as `(constraint disallow via)`.
	Items []string
}

func (c *Constraint) Decode(node *sexp.Node) error {
	const construct = "constraint"
	if err := schema.ExpectKeyword(node, construct, "constraint"); err != nil {
		return err
	}
	var out Constraint
	var err error
	if out.Type, err = node.AtString(construct, "type", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "min":
			out.Min, err = item.AtString(construct, "min", 1)
		case "opt":
			out.Opt, err = item.AtString(construct, "opt", 1)
		case "max":
			out.Max, err = item.AtString(construct, "max", 1)
		default:
			if item.Type != sexp.ListType {
				out.Items = append(out.Items, item.Text())
			}
		}
		if err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func (c *Constraint) Encode() *sexp.Node {
	res := sexp.NewList("constraint", sexp.FromSymbol(c.Type))
	for _, it := range c.Items {
		res.Append(sexp.FromSymbol(it))
	}
	if c.Min != "" {
		res.Append(sexp.NewList("min", sexp.FromSymbol(c.Min)))
	}
	if c.Opt != "" {
		res.Append(sexp.NewList("opt", sexp.FromSymbol(c.Opt)))
	}
	if c.Max != "" {
		res.Append(sexp.NewList("max", sexp.FromSymbol(c.Max)))
	}
	return res
}

// Rule is a named design rule. Condition keeps the source text
// verbatim; its expression tree is built on demand.
type Rule struct {
	Name        string
	Layer       string
	Severity    string
	Condition   *condition.Condition
	Constraints []*Constraint
}

func (r *Rule) Decode(node *sexp.Node) error {
	const construct = "rule"
	if err := schema.ExpectKeyword(node, construct, "rule"); err != nil {
		return err
	}
	var out Rule
	var err error
	if out.Name, err = node.AtString(construct, "name", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "severity":
			out.Severity, err = item.AtString(construct, "severity", 1)
		case "condition":
			var src string
			if src, err = item.AtString(construct, "condition", 1); err != nil {
				return err
			}
			out.Condition = condition.New(src)
		case "constraint":
			c := &Constraint{}
			if err = c.Decode(item); err != nil {
				return err
			}
			out.Constraints = append(out.Constraints, c)
		}
		if err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func (r *Rule) Encode() *sexp.Node {
	res := sexp.NewList("rule", sexp.FromString(r.Name))
	if r.Layer != "" {
		res.Append(sexp.NewList("layer", sexp.FromSymbol(r.Layer)))
	}
	if r.Severity != "" {
		res.Append(sexp.NewList("severity", sexp.FromSymbol(r.Severity)))
	}
	if r.Condition != nil {
		res.Append(schema.StringChild("condition", r.Condition.String()))
	}
	for _, c := range r.Constraints {
		res.Append(c.Encode())
	}
	return res
}

// DesignRules is the content of a whole .kicad_dru file.
type DesignRules struct {
	Version int64
	Rules   []*Rule

	// FilePath is where the rule set was loaded from or last saved. It
	// does not take part in encoding.
	FilePath string
}

// New returns an empty rule set at the current file version.
func New() *DesignRules {
	return &DesignRules{Version: 1}
}

// Decode populates the rule set from the file's top-level expressions.
func (d *DesignRules) Decode(nodes []*sexp.Node) error {
	const construct = "design_rules"
	out := DesignRules{Version: 1}
	for _, node := range nodes {
		var err error
		switch node.Keyword() {
		case "version":
			out.Version, err = node.AtInt(construct, "version", 1)
		case "rule":
			r := &Rule{}
			if err = r.Decode(node); err != nil {
				return err
			}
			out.Rules = append(out.Rules, r)
		default:
			return sexp.NewSchemaErr(construct, "",
				"unexpected top-level %q", node.Keyword())
		}
		if err != nil {
			return err
		}
	}
	*d = out
	return nil
}

// Encode renders the rule set as file bytes, one blank line between
// rules the way the host editor writes them.
func (d *DesignRules) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(encode.String(schema.IntChild("version", d.Version)))
	buf.WriteString("\n")
	for _, r := range d.Rules {
		buf.WriteString("\n")
		buf.WriteString(encode.String(r.Encode()))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// Load reads and decodes a rule file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*DesignRules, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	d.FilePath = path
	return d, nil
}

// Parse decodes rule file bytes.
func Parse(data []byte) (*DesignRules, error) {
	nodes, err := parse.ParseMulti(data)
	if err != nil {
		return nil, err
	}
	d := &DesignRules{}
	if err := d.Decode(nodes); err != nil {
		return nil, err
	}
	return d, nil
}

// Save encodes and writes the rule set. An empty path reuses the path
// the rule set was loaded from or last saved to.
func (d *DesignRules) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = d.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	if err := kifile.WriteFile(path, d.Encode(), opts...); err != nil {
		return err
	}
	d.FilePath = path
	return nil
}
