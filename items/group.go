package items

import (
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Group names a set of board items by their identifiers.
type Group struct {
	Name    string
	Locked  bool
	ID      string
	Members []string
}

func (g *Group) Decode(node *sexp.Node) error {
	const construct = "group"
	if err := schema.ExpectKeyword(node, construct, "group"); err != nil {
		return err
	}
	var out Group
	var err error
	if out.Name, err = node.AtString(construct, "name", 1); err != nil {
		return err
	}
	out.Locked = node.Flag("locked")
	for _, item := range node.Children[2:] {
		switch item.Keyword() {
		case "id", "uuid":
			out.ID, err = item.AtString(construct, "id", 1)
		case "members":
			for i := 1; i < len(item.Children); i++ {
				var id string
				if id, err = item.AtString(construct, "members", i); err != nil {
					return err
				}
				out.Members = append(out.Members, id)
			}
		}
		if err != nil {
			return err
		}
	}
	*g = out
	return nil
}

// Encode renders identifiers as bare symbols, the way the host writes
// uuid tokens.
func (g *Group) Encode() *sexp.Node {
	res := sexp.NewList("group", sexp.FromString(g.Name))
	if g.Locked {
		res.Append(sexp.FromSymbol("locked"))
	}
	if g.ID != "" {
		res.Append(schema.SymbolChild("id", g.ID))
	}
	members := sexp.NewList("members")
	for _, id := range g.Members {
		members.Append(sexp.FromSymbol(id))
	}
	res.Append(members)
	return res
}
