package items

import (
	"sort"

	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// PageSettings is the `(paper ...)` token. Standard sizes name the
// sheet only; the "User" size carries explicit dimensions in mm.
type PageSettings struct {
	Size     string
	Width    *float64
	Height   *float64
	Portrait bool
}

func (p *PageSettings) Decode(node *sexp.Node) error {
	const construct = "paper"
	if err := schema.ExpectKeyword(node, construct, "paper", "page"); err != nil {
		return err
	}
	var out PageSettings
	var err error
	if out.Size, err = node.AtString(construct, "size", 1); err != nil {
		return err
	}
	if out.Size == "User" {
		var w, h float64
		if w, err = node.AtFloat(construct, "width", 2); err != nil {
			return err
		}
		if h, err = node.AtFloat(construct, "height", 3); err != nil {
			return err
		}
		out.Width, out.Height = &w, &h
	}
	out.Portrait = node.Flag("portrait")
	*p = out
	return nil
}

func (p *PageSettings) Encode() *sexp.Node {
	res := sexp.NewList("paper", sexp.FromString(p.Size))
	if p.Size == "User" && p.Width != nil && p.Height != nil {
		res.Append(sexp.FromFloat(*p.Width), sexp.FromFloat(*p.Height))
	}
	if p.Portrait {
		res.Append(sexp.FromSymbol("portrait"))
	}
	return res
}

// TitleBlock carries the sheet frame metadata. Comments are keyed by
// their 1-based slot number; slots 1 through 9 are valid.
type TitleBlock struct {
	Title    string
	Date     string
	Revision string
	Company  string
	Comments map[int64]string
}

func (t *TitleBlock) Decode(node *sexp.Node) error {
	const construct = "title_block"
	if err := schema.ExpectKeyword(node, construct, "title_block"); err != nil {
		return err
	}
	var out TitleBlock
	for _, item := range node.Children[1:] {
		var err error
		switch item.Keyword() {
		case "title":
			out.Title, err = item.AtString(construct, "title", 1)
		case "date":
			out.Date, err = item.AtString(construct, "date", 1)
		case "rev":
			out.Revision, err = item.AtString(construct, "rev", 1)
		case "company":
			out.Company, err = item.AtString(construct, "company", 1)
		case "comment":
			var slot int64
			var text string
			if slot, err = item.AtInt(construct, "comment", 1); err != nil {
				return err
			}
			if text, err = item.AtString(construct, "comment", 2); err != nil {
				return err
			}
			if out.Comments == nil {
				out.Comments = map[int64]string{}
			}
			out.Comments[slot] = text
		}
		if err != nil {
			return err
		}
	}
	*t = out
	return nil
}

func (t *TitleBlock) Encode() *sexp.Node {
	res := sexp.NewList("title_block")
	if t.Title != "" {
		res.Append(schema.StringChild("title", t.Title))
	}
	if t.Date != "" {
		res.Append(schema.StringChild("date", t.Date))
	}
	if t.Revision != "" {
		res.Append(schema.StringChild("rev", t.Revision))
	}
	if t.Company != "" {
		res.Append(schema.StringChild("company", t.Company))
	}
	slots := make([]int64, 0, len(t.Comments))
	for slot := range t.Comments {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	for _, slot := range slots {
		res.Append(sexp.NewList("comment",
			sexp.FromInt(slot), sexp.FromString(t.Comments[slot])))
	}
	return res
}
