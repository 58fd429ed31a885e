package items

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Image is an embedded bitmap. Data holds the base64 payload split
// into the line-sized chunks the host writer emits, preserved as-is.
type Image struct {
	Position Position
	Scale    *float64
	Layer    string
	ID       string
	Data     []string
}

func (im *Image) Decode(node *sexp.Node) error {
	const construct = "image"
	if err := schema.ExpectKeyword(node, construct, "image"); err != nil {
		return err
	}
	var out Image
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "at":
			out.Position, err = DecodePosition(item, construct)
		case "scale":
			var s float64
			if s, err = item.AtFloat(construct, "scale", 1); err == nil {
				out.Scale = &s
			}
		case "layer":
			out.Layer, err = item.AtString(construct, "layer", 1)
		case "uuid", "tstamp":
			out.ID, err = item.AtString(construct, "uuid", 1)
		case "data":
			for i := 1; i < len(item.Children); i++ {
				var chunk string
				if chunk, err = item.AtString(construct, "data", i); err != nil {
					return err
				}
				out.Data = append(out.Data, chunk)
			}
		}
		if err != nil {
			return err
		}
	}
	*im = out
	return nil
}

func (im *Image) Encode() *sexp.Node {
	res := sexp.NewList("image", im.Position.Encode("at"))
	if im.Scale != nil {
		res.Append(schema.FloatChild("scale", *im.Scale))
	}
	if im.Layer != "" {
		res.Append(schema.StringChild("layer", im.Layer))
	}
	if im.ID != "" {
		res.Append(schema.StringChild("uuid", im.ID))
	}
	data := sexp.NewList("data")
	for _, chunk := range im.Data {
		data.Append(sexp.FromString(chunk))
	}
	res.Append(data)
	return res
}
