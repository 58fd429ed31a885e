package items

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Font describes how text is drawn.
type Font struct {
	Face        string
	Height      float64
	Width       float64
	Thickness   *float64
	Bold        bool
	Italic      bool
	LineSpacing *float64
	Color       *ColorRGBA
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
		case "face":
			out.Face, err = item.AtString(construct, "face", 1)
		case "size":
			if out.Height, err = item.AtFloat(construct, "size", 1); err != nil {
				return err
			}
			out.Width, err = item.AtFloat(construct, "size", 2)
		case "thickness":
			var t float64
			if t, err = item.AtFloat(construct, "thickness", 1); err == nil {
				out.Thickness = &t
			}
		case "line_spacing":
			var ls float64
			if ls, err = item.AtFloat(construct, "line_spacing", 1); err == nil {
				out.LineSpacing = &ls
			}
		case "color":
			out.Color = &ColorRGBA{}
			err = out.Color.Decode(item)
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
	if f.Face != "" {
		res.Append(schema.StringChild("face", f.Face))
	}
	res.Append(sexp.NewList("size",
		sexp.FromFloat(f.Height), sexp.FromFloat(f.Width)))
	if f.Thickness != nil {
		res.Append(schema.FloatChild("thickness", *f.Thickness))
	}
	if f.Bold {
		res.Append(sexp.FromSymbol("bold"))
	}
	if f.Italic {
		res.Append(sexp.FromSymbol("italic"))
	}
	if f.LineSpacing != nil {
		res.Append(schema.FloatChild("line_spacing", *f.LineSpacing))
	}
	if f.Color != nil {
		res.Append(f.Color.Encode())
	}
	return res
}

// Justify holds text alignment flags. Absent flags mean
// center-justified in both axes.
type Justify struct {
	Horizontally string // "left" or "right"
	Vertically   string // "top" or "bottom"
	Mirror       bool
}

func (j *Justify) Decode(node *sexp.Node) error {
	const construct = "justify"
	if err := schema.ExpectKeyword(node, construct, "justify"); err != nil {
		return err
	}
	var out Justify
	for _, item := range node.Children[1:] {
		switch item.Text() {
		case "left", "right":
			out.Horizontally = item.Text()
		case "top", "bottom":
			out.Vertically = item.Text()
		case "mirror":
			out.Mirror = true
		}
	}
	*j = out
	return nil
}

// Encode returns nil when every flag is at its default, so callers can
// omit the token entirely the way the host writer does.
func (j *Justify) Encode() *sexp.Node {
	if j.Horizontally == "" && j.Vertically == "" && !j.Mirror {
		return nil
	}
	res := sexp.NewList("justify")
	if j.Horizontally != "" {
		res.Append(sexp.FromSymbol(j.Horizontally))
	}
	if j.Vertically != "" {
		res.Append(sexp.FromSymbol(j.Vertically))
	}
	if j.Mirror {
		res.Append(sexp.FromSymbol("mirror"))
	}
	return res
}

// Effects bundles a text item's font, justification and visibility.
type Effects struct {
	Font    Font
	Justify Justify
	Hide    bool
}

func (e *Effects) Decode(node *sexp.Node) error {
	const construct = "effects"
	if err := schema.ExpectKeyword(node, construct, "effects"); err != nil {
		return err
	}
	var out Effects
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "font":
			err = out.Font.Decode(item)
		case "justify":
			err = out.Justify.Decode(item)
		default:
			if item.Text() == "hide" {
				out.Hide = true
			}
		}
		if err != nil {
			return err
		}
	}
	*e = out
	return nil
}

func (e *Effects) Encode() *sexp.Node {
	res := sexp.NewList("effects", e.Font.Encode())
	if j := e.Justify.Encode(); j != nil {
		res.Append(j)
	}
	if e.Hide {
		res.Append(sexp.FromSymbol("hide"))
	}
	return res
}
