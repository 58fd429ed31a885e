package footprint

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Drill is the `(drill ...)` token of a pad. Oval drills carry a
// second dimension; an optional offset shifts the hole from the pad
// center.
type Drill struct {
	Oval     bool
	Diameter float64
	Width    *float64
	Offset   *items.Position
}

func (d *Drill) Decode(node *sexp.Node) error {
	const construct = "drill"
	if err := schema.ExpectKeyword(node, construct, "drill"); err != nil {
		return err
	}
	var out Drill
	i := 1
	if c := node.At(i); c != nil && c.Text() == "oval" {
		out.Oval = true
		i++
	}
	var err error
	if out.Diameter, err = node.AtFloat(construct, "diameter", i); err != nil {
		return err
	}
	i++
	if c := node.At(i); c != nil && c.Type == sexp.NumberType {
		w := c.Float()
		out.Width = &w
		i++
	}
	if c := node.At(i); c != nil && c.Keyword() == "offset" {
		p, err := items.DecodePosition(c, construct)
		if err != nil {
			return err
		}
		out.Offset = &p
	}
	*d = out
	return nil
}

func (d *Drill) Encode() *sexp.Node {
	res := sexp.NewList("drill")
	if d.Oval {
		res.Append(sexp.FromSymbol("oval"))
	}
	res.Append(sexp.FromFloat(d.Diameter))
	if d.Width != nil {
		res.Append(sexp.FromFloat(*d.Width))
	}
	if d.Offset != nil {
		res.Append(d.Offset.Encode("offset"))
	}
	return res
}

// PadOptions is the `(options ...)` token of custom-shaped pads.
type PadOptions struct {
	Clearance string
	Anchor    string
}

// Pad is one `(pad ...)` of a footprint. The less common per-pad
// overrides (margins, thermal settings, custom primitives) ride in
// Extras so unknown or rarely used children survive a round trip.
type Pad struct {
	Number   string
	Type     string
	Shape    string
	Locked   bool
	Position items.Position
	Size     [2]float64
	Drill    *Drill
	Layers   []string

	RemoveUnusedLayers bool
	KeepEndLayers      bool
	RoundrectRatio     *float64
	ChamferRatio       *float64
	Chamfer            []string
	Net                *items.Net
	PinFunction        string
	PinType            string
	DieLength          *float64
	ZoneConnect        *int64
	Options            *PadOptions
	ID                 string

	Extras schema.Extras
}

func (p *Pad) Decode(node *sexp.Node) error {
	const construct = "pad"
	if err := schema.ExpectKeyword(node, construct, "pad"); err != nil {
		return err
	}
	var out Pad
	var err error
	if out.Number, err = node.AtString(construct, "number", 1); err != nil {
		return err
	}
	if out.Type, err = node.AtString(construct, "type", 2); err != nil {
		return err
	}
	if out.Shape, err = node.AtString(construct, "shape", 3); err != nil {
		return err
	}
	for _, item := range node.Children[4:] {
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "size":
			if out.Size[0], err = item.AtFloat(construct, "size", 1); err != nil {
				return err
			}
			out.Size[1], err = item.AtFloat(construct, "size", 2)
		case "drill":
			out.Drill = &Drill{}
			err = out.Drill.Decode(item)
		case "layers":
			for i := 1; i < len(item.Children); i++ {
				var l string
				if l, err = item.AtString(construct, "layers", i); err != nil {
					return err
				}
				out.Layers = append(out.Layers, l)
			}
		case "remove_unused_layers":
			out.RemoveUnusedLayers = true
		case "keep_end_layers":
			out.KeepEndLayers = true
		case "roundrect_rratio":
			var r float64
			if r, err = item.AtFloat(construct, "roundrect_rratio", 1); err == nil {
				out.RoundrectRatio = &r
			}
		case "chamfer_ratio":
			var r float64
			if r, err = item.AtFloat(construct, "chamfer_ratio", 1); err == nil {
				out.ChamferRatio = &r
			}
		case "chamfer":
			for i := 1; i < len(item.Children); i++ {
				var c string
				if c, err = item.AtString(construct, "chamfer", i); err != nil {
					return err
				}
				out.Chamfer = append(out.Chamfer, c)
			}
		case "net":
			out.Net = &items.Net{}
			err = out.Net.Decode(item)
		case "pinfunction":
			out.PinFunction, err = item.AtString(construct, "pinfunction", 1)
		case "pintype":
			out.PinType, err = item.AtString(construct, "pintype", 1)
		case "die_length":
			var dl float64
			if dl, err = item.AtFloat(construct, "die_length", 1); err == nil {
				out.DieLength = &dl
			}
		case "zone_connect":
			var zc int64
			if zc, err = item.AtInt(construct, "zone_connect", 1); err == nil {
				out.ZoneConnect = &zc
			}
		case "options":
			opts := &PadOptions{}
			if v, ok, e := item.ChildString(construct, "clearance"); e != nil {
				return e
			} else if ok {
				opts.Clearance = v
			}
			if v, ok, e := item.ChildString(construct, "anchor"); e != nil {
				return e
			} else if ok {
				opts.Anchor = v
			}
			out.Options = opts
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		default:
			if item.Text() == "locked" {
				out.Locked = true
			} else {
				out.Extras.Add(item)
			}
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *Pad) Encode() *sexp.Node {
	res := sexp.NewList("pad",
		sexp.FromString(p.Number),
		sexp.FromSymbol(p.Type),
		sexp.FromSymbol(p.Shape))
	if p.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	res.Append(p.Position.Encode("at"))
	res.Append(sexp.NewList("size",
		sexp.FromFloat(p.Size[0]), sexp.FromFloat(p.Size[1])))
	if p.Drill != nil {
		res.Append(p.Drill.Encode())
	}
	layers := sexp.NewList("layers")
	for _, l := range p.Layers {
		layers.Append(sexp.FromString(l))
	}
	res.Append(layers)
	if p.RemoveUnusedLayers {
		res.Append(sexp.NewList("remove_unused_layers"))
	}
	if p.KeepEndLayers {
		res.Append(sexp.NewList("keep_end_layers"))
	}
	if p.RoundrectRatio != nil {
		res.Append(schema.FloatChild("roundrect_rratio", *p.RoundrectRatio))
	}
	if p.ChamferRatio != nil {
		res.Append(schema.FloatChild("chamfer_ratio", *p.ChamferRatio))
	}
	if len(p.Chamfer) > 0 {
		ch := sexp.NewList("chamfer")
		for _, c := range p.Chamfer {
			ch.Append(sexp.FromSymbol(c))
		}
		res.Append(ch)
	}
	if p.Net != nil {
		res.Append(p.Net.Encode())
	}
	if p.PinFunction != "" {
		res.Append(schema.StringChild("pinfunction", p.PinFunction))
	}
	if p.PinType != "" {
		res.Append(schema.StringChild("pintype", p.PinType))
	}
	if p.DieLength != nil {
		res.Append(schema.FloatChild("die_length", *p.DieLength))
	}
	if p.ZoneConnect != nil {
		res.Append(schema.IntChild("zone_connect", *p.ZoneConnect))
	}
	if p.Options != nil {
		opts := sexp.NewList("options")
		if p.Options.Clearance != "" {
			opts.Append(schema.SymbolChild("clearance", p.Options.Clearance))
		}
		if p.Options.Anchor != "" {
			opts.Append(schema.SymbolChild("anchor", p.Options.Anchor))
		}
		res.Append(opts)
	}
	p.Extras.EncodeTo(res)
	if p.ID != "" {
		res.Append(schema.SymbolChild("tstamp", p.ID))
	}
	return res
}
