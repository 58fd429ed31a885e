// Package worksheet reads and writes drawing sheet files (.kicad_wks).
package worksheet

import (
	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Position is a sheet-relative coordinate. Corner names the page
// corner the coordinate is measured from; empty means the default
// right-bottom corner.
type Position struct {
	X      float64
	Y      float64
	Corner string
}

func decodePos(node *sexp.Node, construct string) (Position, error) {
	var p Position
	kw := node.Keyword()
	x, err := node.AtFloat(construct, kw, 1)
	if err != nil {
		return p, err
	}
	y, err := node.AtFloat(construct, kw, 2)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	if c := node.At(3); c != nil && c.Type == sexp.SymbolType {
		p.Corner = c.String
	}
	return p, nil
}

func (p Position) encode(keyword string) *sexp.Node {
	res := sexp.NewList(keyword, sexp.FromFloat(p.X), sexp.FromFloat(p.Y))
	if p.Corner != "" {
		res.Append(sexp.FromSymbol(p.Corner))
	}
	return res
}

// Setup is the sheet-wide defaults section.
type Setup struct {
	TextSize      [2]float64
	LineWidth     float64
	TextLineWidth float64
	LeftMargin    float64
	RightMargin   float64
	TopMargin     float64
	BottomMargin  float64
}

func (s *Setup) Decode(node *sexp.Node) error {
	const construct = "setup"
	if err := schema.ExpectKeyword(node, construct, "setup"); err != nil {
		return err
	}
	var out Setup
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "textsize":
			if out.TextSize[0], err = item.AtFloat(construct, "textsize", 1); err != nil {
				return err
			}
			out.TextSize[1], err = item.AtFloat(construct, "textsize", 2)
		case "linewidth":
			out.LineWidth, err = item.AtFloat(construct, "linewidth", 1)
		case "textlinewidth":
			out.TextLineWidth, err = item.AtFloat(construct, "textlinewidth", 1)
		case "left_margin":
			out.LeftMargin, err = item.AtFloat(construct, "left_margin", 1)
		case "right_margin":
			out.RightMargin, err = item.AtFloat(construct, "right_margin", 1)
		case "top_margin":
			out.TopMargin, err = item.AtFloat(construct, "top_margin", 1)
		case "bottom_margin":
			out.BottomMargin, err = item.AtFloat(construct, "bottom_margin", 1)
		}
		if err != nil {
			return err
		}
	}
	*s = out
	return nil
}

func (s *Setup) Encode() *sexp.Node {
	return sexp.NewList("setup",
		sexp.NewList("textsize",
			sexp.FromFloat(s.TextSize[0]), sexp.FromFloat(s.TextSize[1])),
		schema.FloatChild("linewidth", s.LineWidth),
		schema.FloatChild("textlinewidth", s.TextLineWidth),
		schema.FloatChild("left_margin", s.LeftMargin),
		schema.FloatChild("right_margin", s.RightMargin),
		schema.FloatChild("top_margin", s.TopMargin),
		schema.FloatChild("bottom_margin", s.BottomMargin))
}

// repeat carries the repeat/increment fields every drawing object
// shares.
type repeat struct {
	Name    string
	Repeat  *int64
	IncrX   *float64
	IncrY   *float64
	Comment string
}

func (r *repeat) decodeChild(item *sexp.Node, construct string) (bool, error) {
	var err error
	switch item.Keyword() {
	case "name":
		r.Name, err = item.AtString(construct, "name", 1)
	case "repeat":
		var n int64
		if n, err = item.AtInt(construct, "repeat", 1); err == nil {
			r.Repeat = &n
		}
	case "incrx":
		var v float64
		if v, err = item.AtFloat(construct, "incrx", 1); err == nil {
			r.IncrX = &v
		}
	case "incry":
		var v float64
		if v, err = item.AtFloat(construct, "incry", 1); err == nil {
			r.IncrY = &v
		}
	case "comment":
		r.Comment, err = item.AtString(construct, "comment", 1)
	default:
		return false, nil
	}
	return true, err
}

func (r *repeat) encodeNameTo(res *sexp.Node) {
	res.Append(schema.StringChild("name", r.Name))
}

func (r *repeat) encodeTo(res *sexp.Node) {
	if r.Repeat != nil {
		res.Append(schema.IntChild("repeat", *r.Repeat))
	}
	if r.IncrX != nil {
		res.Append(schema.FloatChild("incrx", *r.IncrX))
	}
	if r.IncrY != nil {
		res.Append(schema.FloatChild("incry", *r.IncrY))
	}
	if r.Comment != "" {
		res.Append(schema.StringChild("comment", r.Comment))
	}
}

// Drawings holds the registry the worksheet decoder dispatches drawing
// object keywords through.
var Drawings = schema.NewRegistry()

func init() {
	Drawings.MustRegister("line", func() schema.Codec { return &Line{} })
	Drawings.MustRegister("rect", func() schema.Codec { return &Rect{} })
	Drawings.MustRegister("polygon", func() schema.Codec { return &Polygon{} })
	Drawings.MustRegister("tbtext", func() schema.Codec { return &TbText{} })
	Drawings.MustRegister("bitmap", func() schema.Codec { return &Bitmap{} })
}

// Line is a frame line.
type Line struct {
	Start     Position
	End       Position
	LineWidth *float64
	repeat
}

func (l *Line) Decode(node *sexp.Node) error {
	const construct = "line"
	if err := schema.ExpectKeyword(node, construct, "line"); err != nil {
		return err
	}
	var out Line
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = decodePos(item, construct)
		case "end":
			out.End, err = decodePos(item, construct)
		case "linewidth":
			var w float64
			if w, err = item.AtFloat(construct, "linewidth", 1); err == nil {
				out.LineWidth = &w
			}
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*l = out
	return nil
}

func (l *Line) Encode() *sexp.Node {
	res := sexp.NewList("line")
	l.encodeNameTo(res)
	res.Append(l.Start.encode("start"), l.End.encode("end"))
	if l.LineWidth != nil {
		res.Append(schema.FloatChild("linewidth", *l.LineWidth))
	}
	l.encodeTo(res)
	return res
}

// Rect is a frame rectangle.
type Rect struct {
	Start     Position
	End       Position
	LineWidth *float64
	repeat
}

func (r *Rect) Decode(node *sexp.Node) error {
	const construct = "rect"
	if err := schema.ExpectKeyword(node, construct, "rect"); err != nil {
		return err
	}
	var out Rect
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "start":
			out.Start, err = decodePos(item, construct)
		case "end":
			out.End, err = decodePos(item, construct)
		case "linewidth":
			var w float64
			if w, err = item.AtFloat(construct, "linewidth", 1); err == nil {
				out.LineWidth = &w
			}
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*r = out
	return nil
}

func (r *Rect) Encode() *sexp.Node {
	res := sexp.NewList("rect")
	r.encodeNameTo(res)
	res.Append(r.Start.encode("start"), r.End.encode("end"))
	if r.LineWidth != nil {
		res.Append(schema.FloatChild("linewidth", *r.LineWidth))
	}
	r.encodeTo(res)
	return res
}

// Polygon is a filled frame polygon.
type Polygon struct {
	Position Position
	Rotate   *float64
	Points   []Position
	repeat
}

func (p *Polygon) Decode(node *sexp.Node) error {
	const construct = "polygon"
	if err := schema.ExpectKeyword(node, construct, "polygon"); err != nil {
		return err
	}
	var out Polygon
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pos":
			out.Position, err = decodePos(item, construct)
		case "rotate":
			var v float64
			if v, err = item.AtFloat(construct, "rotate", 1); err == nil {
				out.Rotate = &v
			}
		case "pts":
			for _, pt := range item.Children[1:] {
				if pt.Keyword() != "xy" {
					continue
				}
				var pos Position
				if pos, err = decodePos(pt, construct); err != nil {
					return err
				}
				out.Points = append(out.Points, pos)
			}
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*p = out
	return nil
}

func (p *Polygon) Encode() *sexp.Node {
	res := sexp.NewList("polygon")
	p.encodeNameTo(res)
	res.Append(p.Position.encode("pos"))
	if p.Rotate != nil {
		res.Append(schema.FloatChild("rotate", *p.Rotate))
	}
	pts := sexp.NewList("pts")
	for _, pt := range p.Points {
		pts.Append(pt.encode("xy"))
	}
	res.Append(pts)
	p.encodeTo(res)
	return res
}

// Font is the reduced font token worksheet texts use.
type Font struct {
	Size      *[2]float64
	LineWidth *float64
	Bold      bool
	Italic    bool
}

func (f *Font) Decode(node *sexp.Node) error {
	const construct = "font"
	if err := schema.ExpectKeyword(node, construct, "font"); err != nil {
		return err
	}
	var out Font
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "size":
			var s [2]float64
			if s[0], err = item.AtFloat(construct, "size", 1); err != nil {
				return err
			}
			if s[1], err = item.AtFloat(construct, "size", 2); err != nil {
				return err
			}
			out.Size = &s
		case "linewidth":
			var w float64
			if w, err = item.AtFloat(construct, "linewidth", 1); err == nil {
				out.LineWidth = &w
			}
		default:
			switch item.Text() {
			case "bold":
				out.Bold = true
			case "italic":
				out.Italic = true
			}
		}
		if err != nil {
			return err
		}
	}
	*f = out
	return nil
}

func (f *Font) Encode() *sexp.Node {
	res := sexp.NewList("font")
	if f.Bold {
		res.Append(sexp.FromSymbol("bold"))
	}
	if f.Italic {
		res.Append(sexp.FromSymbol("italic"))
	}
	if f.LineWidth != nil {
		res.Append(schema.FloatChild("linewidth", *f.LineWidth))
	}
	if f.Size != nil {
		res.Append(sexp.NewList("size",
			sexp.FromFloat(f.Size[0]), sexp.FromFloat(f.Size[1])))
	}
	return res
}

// TbText is a title block text field. The text may contain format
// directives the host expands at plot time.
type TbText struct {
	Text      string
	Position  Position
	Rotate    *float64
	Font      *Font
	Justify   string
	MaxLen    *float64
	MaxHeight *float64
	repeat
}

func (t *TbText) Decode(node *sexp.Node) error {
	const construct = "tbtext"
	if err := schema.ExpectKeyword(node, construct, "tbtext"); err != nil {
		return err
	}
	var out TbText
	var err error
	if out.Text, err = node.AtString(construct, "text", 1); err != nil {
		return err
	}
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "pos":
			out.Position, err = decodePos(item, construct)
		case "rotate":
			var v float64
			if v, err = item.AtFloat(construct, "rotate", 1); err == nil {
				out.Rotate = &v
			}
		case "font":
			out.Font = &Font{}
			err = out.Font.Decode(item)
		case "justify":
			out.Justify, err = item.AtString(construct, "justify", 1)
		case "maxlen":
			var v float64
			if v, err = item.AtFloat(construct, "maxlen", 1); err == nil {
				out.MaxLen = &v
			}
		case "maxheight":
			var v float64
			if v, err = item.AtFloat(construct, "maxheight", 1); err == nil {
				out.MaxHeight = &v
			}
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *TbText) Encode() *sexp.Node {
	res := sexp.NewList("tbtext", sexp.FromString(t.Text))
	t.encodeNameTo(res)
	res.Append(t.Position.encode("pos"))
	if t.Rotate != nil {
		res.Append(schema.FloatChild("rotate", *t.Rotate))
	}
	if t.Font != nil {
		res.Append(t.Font.Encode())
	}
	if t.Justify != "" {
		res.Append(schema.SymbolChild("justify", t.Justify))
	}
	if t.MaxLen != nil {
		res.Append(schema.FloatChild("maxlen", *t.MaxLen))
	}
	if t.MaxHeight != nil {
		res.Append(schema.FloatChild("maxheight", *t.MaxHeight))
	}
	t.encodeTo(res)
	return res
}

// Bitmap is an embedded image. PngData keeps the hex payload chunks
// verbatim.
type Bitmap struct {
	Position Position
	Scale    float64
	PngData  []string
	repeat
}

func (b *Bitmap) Decode(node *sexp.Node) error {
	const construct = "bitmap"
	if err := schema.ExpectKeyword(node, construct, "bitmap"); err != nil {
		return err
	}
	var out Bitmap
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "pos":
			out.Position, err = decodePos(item, construct)
		case "scale":
			out.Scale, err = item.AtFloat(construct, "scale", 1)
		case "pngdata":
			for _, d := range item.ChildrenOf("data") {
				var chunk string
				if chunk, err = d.AtString(construct, "data", 1); err != nil {
					return err
				}
				out.PngData = append(out.PngData, chunk)
			}
		default:
			_, err = out.decodeChild(item, construct)
		}
		if err != nil {
			return err
		}
	}
	*b = out
	return nil
}

func (b *Bitmap) Encode() *sexp.Node {
	res := sexp.NewList("bitmap")
	b.encodeNameTo(res)
	res.Append(b.Position.encode("pos"),
		schema.FloatChild("scale", b.Scale))
	data := sexp.NewList("pngdata")
	for _, chunk := range b.PngData {
		data.Append(schema.StringChild("data", chunk))
	}
	res.Append(data)
	b.encodeTo(res)
	return res
}

// Worksheet models a whole .kicad_wks document.
type Worksheet struct {
	Version   int64
	Generator string
	Setup     Setup
	Drawings  []schema.Codec

	Extras schema.Extras

	// FilePath is where the sheet was loaded from or last saved. It
	// does not take part in encoding.
	FilePath string
}

// New returns an empty sheet template stamped with the given defaults.
func New(d schema.Defaults) *Worksheet {
	return &Worksheet{
		Version:   d.Version,
		Generator: d.Generator,
		Setup: Setup{
			TextSize:      [2]float64{1.5, 1.5},
			LineWidth:     0.15,
			TextLineWidth: 0.15,
			LeftMargin:    10, RightMargin: 10,
			TopMargin: 10, BottomMargin: 10,
		},
	}
}

func (w *Worksheet) Decode(node *sexp.Node) error {
	const construct = "kicad_wks"
	if err := schema.ExpectKeyword(node, construct, "kicad_wks"); err != nil {
		return err
	}
	var out Worksheet
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "version":
			out.Version, err = item.AtInt(construct, "version", 1)
		case "generator":
			out.Generator, err = item.AtString(construct, "generator", 1)
		case "setup":
			err = out.Setup.Decode(item)
		default:
			if d, ok := Drawings.New(item.Keyword()); ok {
				if err = d.Decode(item); err != nil {
					return err
				}
				out.Drawings = append(out.Drawings, d)
				break
			}
			out.Extras.Add(item)
		}
		if err != nil {
			return err
		}
	}
	*w = out
	return nil
}

func (w *Worksheet) Encode() *sexp.Node {
	res := sexp.NewList("kicad_wks",
		schema.IntChild("version", w.Version),
		schema.SymbolChild("generator", w.Generator),
		w.Setup.Encode())
	for _, d := range w.Drawings {
		res.Append(d.Encode())
	}
	w.Extras.EncodeTo(res)
	return res
}

// Parse decodes drawing sheet file bytes.
func Parse(data []byte) (*Worksheet, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return nil, err
	}
	w := &Worksheet{}
	if err := w.Decode(node); err != nil {
		return nil, err
	}
	return w, nil
}

// Load reads and decodes a .kicad_wks file. The path is remembered so
// Save("") writes back to the same file.
func Load(path string, opts ...kifile.Option) (*Worksheet, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	w, err := Parse(data)
	if err != nil {
		return nil, err
	}
	w.FilePath = path
	return w, nil
}

// Save encodes and writes the sheet template. An empty path reuses the
// path the sheet was loaded from or last saved to.
func (w *Worksheet) Save(path string, opts ...kifile.Option) error {
	if path == "" {
		path = w.FilePath
	}
	if path == "" {
		return kifile.ErrNoPath
	}
	var buf []byte
	buf = append(buf, encode.String(w.Encode())...)
	buf = append(buf, '\n')
	if err := kifile.WriteFile(path, buf, opts...); err != nil {
		return err
	}
	w.FilePath = path
	return nil
}
