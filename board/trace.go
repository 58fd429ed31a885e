package board

import (
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Traces holds the registry the board decoder dispatches copper item
// keywords through.
var Traces = schema.NewRegistry()

func init() {
	Traces.MustRegister("segment", func() schema.Codec { return &Segment{} })
	Traces.MustRegister("arc", func() schema.Codec { return &TraceArc{} })
	Traces.MustRegister("via", func() schema.Codec { return &Via{} })
}

// Segment is one straight track piece.
type Segment struct {
	Start  items.Position
	End    items.Position
	Width  float64
	Layer  string
	Locked bool
	Net    int64
	ID     string
}

func (s *Segment) Decode(node *sexp.Node) error {
	const construct = "segment"
	if err := schema.ExpectKeyword(node, construct, "segment"); err != nil {
		return err
	}
	var out Segment
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "width":
			out.Width, err = item.AtFloat(construct, "width", 1)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "net":
			out.Net, err = item.AtInt(construct, "net", 1)
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		default:
			if item.Text() == "locked" {
				out.Locked = true
			}
		}
		if err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func (s *Segment) Encode() *sexp.Node {
	res := sexp.NewList("segment",
		s.Start.Encode("start"), s.End.Encode("end"),
		schema.FloatChild("width", s.Width),
		schema.StringChild("layer", s.Layer))
	if s.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	res.Append(schema.IntChild("net", s.Net))
	if s.ID != "" {
		res.Append(schema.SymbolChild("tstamp", s.ID))
	}
	return res
}

// TraceArc is a curved track piece, keyword `arc` at board level.
type TraceArc struct {
	Start  items.Position
	Mid    items.Position
	End    items.Position
	Width  float64
	Layer  string
	Locked bool
	Net    int64
	ID     string
}

func (a *TraceArc) Decode(node *sexp.Node) error {
	const construct = "arc"
	if err := schema.ExpectKeyword(node, construct, "arc"); err != nil {
		return err
	}
	var out TraceArc
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = items.DecodePosition(item, construct)
		case "mid":
			out.Mid, err = items.DecodePosition(item, construct)
		case "end":
			out.End, err = items.DecodePosition(item, construct)
		case "width":
			out.Width, err = item.AtFloat(construct, "width", 1)
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "net":
			out.Net, err = item.AtInt(construct, "net", 1)
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		default:
			if item.Text() == "locked" {
				out.Locked = true
			}
		}
		if err != nil {
			return err
		}
	}
	*a = out
	return nil
}

func (a *TraceArc) Encode() *sexp.Node {
	res := sexp.NewList("arc",
		a.Start.Encode("start"), a.Mid.Encode("mid"), a.End.Encode("end"),
		schema.FloatChild("width", a.Width),
		schema.StringChild("layer", a.Layer))
	if a.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	res.Append(schema.IntChild("net", a.Net))
	if a.ID != "" {
		res.Append(schema.SymbolChild("tstamp", a.ID))
	}
	return res
}

// Via is a drilled layer transition. Type is empty for a normal
// through via, or "blind" / "micro".
type Via struct {
	Type     string
	Locked   bool
	Position items.Position
	Size     float64
	Drill    *float64
	Layers   []string
	Remove   bool // remove_unused_layers
	KeepEnd  bool // keep_end_layers
	Free     bool
	Net      *int64
	ID       string
}

func (v *Via) Decode(node *sexp.Node) error {
	const construct = "via"
	if err := schema.ExpectKeyword(node, construct, "via"); err != nil {
		return err
	}
	var out Via
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "at":
			out.Position, err = items.DecodePosition(item, construct)
		case "size":
			out.Size, err = item.AtFloat(construct, "size", 1)
		case "drill":
			var d float64
			if d, err = item.AtFloat(construct, "drill", 1); err == nil {
				out.Drill = &d
			}
		case "layers":
			for i := 1; i < len(item.Children); i++ {
				var l string
				if l, err = item.AtString(construct, "layers", i); err != nil {
					return err
				}
				out.Layers = append(out.Layers, l)
			}
		case "net":
			var n int64
			if n, err = item.AtInt(construct, "net", 1); err == nil {
				out.Net = &n
			}
		case "remove_unused_layers":
			out.Remove = true
		case "keep_end_layers":
			out.KeepEnd = true
		case "free":
			out.Free = true
		case "tstamp", "uuid":
			out.ID, err = item.AtString(construct, "tstamp", 1)
		default:
			switch item.Text() {
			case "blind", "micro":
				out.Type = item.Text()
			case "locked":
				out.Locked = true
			}
		}
		if err != nil {
			return err
		}
	}
	*v = out
	return nil
}

func (v *Via) Encode() *sexp.Node {
	res := sexp.NewList("via")
	if v.Type != "" {
		res.Append(sexp.FromSymbol(v.Type))
	}
	if v.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	res.Append(v.Position.Encode("at"))
	res.Append(schema.FloatChild("size", v.Size))
	if v.Drill != nil {
		res.Append(schema.FloatChild("drill", *v.Drill))
	}
	layers := sexp.NewList("layers")
	for _, l := range v.Layers {
		layers.Append(sexp.FromString(l))
	}
	res.Append(layers)
	if v.Remove {
		res.Append(sexp.NewList("remove_unused_layers"))
	}
	if v.KeepEnd {
		res.Append(sexp.NewList("keep_end_layers"))
	}
	if v.Free {
		res.Append(sexp.NewList("free"))
	}
	if v.Net != nil {
		res.Append(schema.IntChild("net", *v.Net))
	}
	if v.ID != "" {
		res.Append(schema.SymbolChild("tstamp", v.ID))
	}
	return res
}
