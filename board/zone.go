package board

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Hatch is a zone's outline display mode.
type Hatch struct {
	Style string
	Pitch float64
}

// Zone is a copper or rule-area zone. The fill algorithm settings and
// the computed `filled_polygon` results are carried in Extras: the
// editor regenerates them and their schema shifts between releases.
type Zone struct {
	Net      int64
	NetName  string
	Layers   []string
	ID       string
	Name     string
	Hatch    *Hatch
	Priority *int64
	Outline  []items.Position
	Extras   schema.Extras
}

func (z *Zone) Decode(node *sexp.Node) error {
	const construct = "zone"
	if err := schema.ExpectKeyword(node, construct, "zone"); err != nil {
		return err
	}
	var out Zone
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "net":
			out.Net, err = item.AtInt(construct, "net", 1)
		case "net_name":
			out.NetName, err = item.AtString(construct, "net_name", 1)
		case "layer":
			var l string
			if l, err = item.AtString(construct, "layer", 1); err == nil {
				out.Layers = []string{l}
			}
		case "layers":
			for i := 1; i < len(item.Children); i++ {
				var l string
				if l, err = item.AtString(construct, "layers", i); err != nil {
					return err
				}
				out.Layers = append(out.Layers, l)
			}
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		case "name":
			out.Name, err = item.AtString(construct, "name", 1)
		case "hatch":
			h := &Hatch{}
			if h.Style, err = item.AtString(construct, "hatch", 1); err != nil {
				return err
			}
			if h.Pitch, err = item.AtFloat(construct, "hatch", 2); err != nil {
				return err
			}
			out.Hatch = h
		case "priority":
			var p int64
			if p, err = item.AtInt(construct, "priority", 1); err == nil {
				out.Priority = &p
			}
		case "polygon":
			// handled after the loop
		default:
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	// the authored outline polygon decodes into points; the computed
	// fill polygons stay in Extras
	if poly := node.Child("polygon"); poly != nil {
		if pts := poly.Child("pts"); pts != nil {
			var err error
			if out.Outline, err = decodePoints(pts, construct); err != nil {
				return err
			}
		}
	}
	*z = out
	return nil
}

func (z *Zone) Encode() *sexp.Node {
	res := sexp.NewList("zone",
		schema.IntChild("net", z.Net),
		schema.StringChild("net_name", z.NetName))
	if len(z.Layers) == 1 {
		res.Append(schema.StringChild("layer", z.Layers[0]))
	} else {
		layers := sexp.NewList("layers")
		for _, l := range z.Layers {
			layers.Append(sexp.FromString(l))
		}
		res.Append(layers)
	}
	if z.ID != "" {
		res.Append(schema.SymbolChild("tstamp", z.ID))
	}
	if z.Name != "" {
		res.Append(schema.StringChild("name", z.Name))
	}
	if z.Hatch != nil {
		res.Append(sexp.NewList("hatch",
			sexp.FromSymbol(z.Hatch.Style), sexp.FromFloat(z.Hatch.Pitch)))
	}
	if z.Priority != nil {
		res.Append(schema.IntChild("priority", *z.Priority))
	}
	z.Extras.EncodeTo(res)
	if len(z.Outline) > 0 {
		res.Append(sexp.NewList("polygon", encodePoints(z.Outline)))
	}
	return res
}
