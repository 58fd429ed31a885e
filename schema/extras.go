package schema

import (
	"github.com/kiforge/kicad-sexp/debug"
	"github.com/kiforge/kicad-sexp/sexp"
)

// Extras preserves child constructs the current schema version does
// not recognize. They are cloned out of the source tree on decode and
// re-emitted verbatim after the entity's known children, so a file
// written by a newer host version survives a round trip without data
// loss.
type Extras []*sexp.Node

// Add clones node into the bucket, detaching it from the parsed tree.
func (x *Extras) Add(node *sexp.Node) {
	if debug.Decode() {
		debug.Logf("schema: preserving unknown construct %q\n", node.Keyword())
	}
	c := node.Clone()
	c.Parent = nil
	c.ParentIndex = 0
	*x = append(*x, c)
}

// EncodeTo appends clones of the preserved constructs to node.
func (x Extras) EncodeTo(node *sexp.Node) {
	for _, e := range x {
		node.Append(e.Clone())
	}
}

// Empty reports whether anything was preserved.
func (x Extras) Empty() bool {
	return len(x) == 0
}
