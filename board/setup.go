package board

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Layer is one row of the board's `(layers ...)` table: ordinal,
// canonical name, type and an optional user name.
type Layer struct {
	Ordinal  int64
	Name     string
	Type     string
	UserName string
}

func (l *Layer) Decode(node *sexp.Node) error {
	const construct = "layer"
	if node == nil || node.Type != sexp.ListType {
		return sexp.NewSchemaErr(construct, "", "expected expression")
	}
	var out Layer
	var err error
	if out.Ordinal, err = node.AtInt(construct, "ordinal", 0); err != nil {
		return err
	}
	if out.Name, err = node.AtString(construct, "name", 1); err != nil {
		return err
	}
	if out.Type, err = node.AtString(construct, "type", 2); err != nil {
		return err
	}
	if node.At(3) != nil {
		if out.UserName, err = node.AtString(construct, "user_name", 3); err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *Layer) Encode() *sexp.Node {
	res := sexp.List(sexp.FromInt(l.Ordinal),
		sexp.FromString(l.Name), sexp.FromSymbol(l.Type))
	if l.UserName != "" {
		res.Append(sexp.FromString(l.UserName))
	}
	return res
}

// General is the board's `(general ...)` section.
type General struct {
	Thickness float64
	Extras    schema.Extras
}

func (g *General) Decode(node *sexp.Node) error {
	const construct = "general"
	if err := schema.ExpectKeyword(node, construct, "general"); err != nil {
		return err
	}
	var out General
	for _, item := range node.Children[1:] {
		switch item.Keyword() {
		case "thickness":
			var err error
			if out.Thickness, err = item.AtFloat(construct, "thickness", 1); err != nil {
				return err
			}
		default:
			out.Extras.Add(item)
		}
	}
	*g = out
	return nil
}

func (g *General) Encode() *sexp.Node {
	res := sexp.NewList("general", schema.FloatChild("thickness", g.Thickness))
	g.Extras.EncodeTo(res)
	return res
}

// Setup carries the board's design settings. The section is a grab bag
// of host editor state (plot parameters, stackup, teardrop settings)
// that grows every release, so beyond the handful of commonly edited
// values everything is preserved structurally in Extras.
type Setup struct {
	StackUp            *sexp.Node
	PadToMaskClearance float64
	AuxAxisOrigin      *[2]float64
	GridOrigin         *[2]float64
	Extras             schema.Extras
}

func (s *Setup) Decode(node *sexp.Node) error {
	const construct = "setup"
	if err := schema.ExpectKeyword(node, construct, "setup"); err != nil {
		return err
	}
	var out Setup
	var err error
	for _, item := range node.Children[1:] {
		switch item.Keyword() {
		case "stackup":
			out.StackUp = item.Clone()
		case "pad_to_mask_clearance":
			out.PadToMaskClearance, err = item.AtFloat(construct, "pad_to_mask_clearance", 1)
		case "aux_axis_origin":
			out.AuxAxisOrigin, err = decodePair(item, construct)
		case "grid_origin":
			out.GridOrigin, err = decodePair(item, construct)
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

func decodePair(node *sexp.Node, construct string) (*[2]float64, error) {
	kw := node.Keyword()
	x, err := node.AtFloat(construct, kw, 1)
	if err != nil {
		return nil, err
	}
	y, err := node.AtFloat(construct, kw, 2)
	if err != nil {
		return nil, err
	}
	return &[2]float64{x, y}, nil
}

func (s *Setup) Encode() *sexp.Node {
	res := sexp.NewList("setup")
	if s.StackUp != nil {
		res.Append(s.StackUp.Clone())
	}
	res.Append(schema.FloatChild("pad_to_mask_clearance", s.PadToMaskClearance))
	if s.AuxAxisOrigin != nil {
		res.Append(sexp.NewList("aux_axis_origin",
			sexp.FromFloat(s.AuxAxisOrigin[0]), sexp.FromFloat(s.AuxAxisOrigin[1])))
	}
	if s.GridOrigin != nil {
		res.Append(sexp.NewList("grid_origin",
			sexp.FromFloat(s.GridOrigin[0]), sexp.FromFloat(s.GridOrigin[1])))
	}
	s.Extras.EncodeTo(res)
	return res
}
