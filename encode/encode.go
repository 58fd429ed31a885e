package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/kiforge/kicad-sexp/debug"
	"github.com/kiforge/kicad-sexp/sexp"
	"github.com/kiforge/kicad-sexp/token"
)

// EncState carries the encoder position and configuration while a tree
// is being written.
type EncState struct {
	depth  int
	indent int

	compact map[string]bool
	block   map[string]bool
}

// compactKeywords names constructs whose whole subtree renders on one
// line even though they contain nested expressions.
var compactKeywords = map[string]bool{
	"stroke":     true,
	"constraint": true,
	"lib":        true,
	"font":       true,
	"effects":    true,
	"justify":    true,
	"drill":      true,
	"fill":       true,
	"offset":     true,
	"scale":      true,
	"rotate":     true,

	// trace and graphic items the host writer keeps on one line
	"via":       true,
	"segment":   true,
	"arc":       true,
	"pad":       true,
	"gr_line":   true,
	"gr_rect":   true,
	"gr_circle": true,
	"gr_arc":    true,
	"gr_curve":  true,
	"fp_line":   true,
	"fp_rect":   true,
	"fp_circle": true,
	"fp_arc":    true,

	// drawing sheet items
	"line":   true,
	"rect":   true,
	"tbtext": true,
}

// blockKeywords names atom-only constructs that still render one child
// per line (identifier lists, embedded image data).
var blockKeywords = map[string]bool{
	"members": true,
	"data":    true,
}

// Encode writes node to w followed by a final newline, the layout a
// whole-file save wants.
func Encode(node *sexp.Node, w io.Writer, opts ...EncodeOption) error {
	if debug.Encode() {
		debug.Logf("encode: %q with %d children\n",
			node.Keyword(), len(node.Children))
	}
	es := newEncState(opts)
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// String renders node without a trailing newline. It cannot fail: the
// only error source is the writer.
func String(node *sexp.Node, opts ...EncodeOption) string {
	var buf bytes.Buffer
	es := newEncState(opts)
	if err := encode(node, &buf, es); err != nil {
		panic(err)
	}
	return buf.String()
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:  2,
		compact: compactKeywords,
		block:   blockKeywords,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func encode(node *sexp.Node, w io.Writer, es *EncState) error {
	if node.Type != sexp.ListType {
		return writeString(w, atomString(node))
	}
	if es.isCompact(node) {
		return encodeCompact(node, w)
	}
	return encodeBlock(node, w, es)
}

// isCompact decides whether a list renders entirely on one line: any
// atom-only list does, plus the fixed-shape constructs in the compact
// set; identifier lists in the block set never do.
func (es *EncState) isCompact(node *sexp.Node) bool {
	kw := node.Keyword()
	if es.block[kw] {
		return false
	}
	if es.compact[kw] {
		return true
	}
	for _, c := range node.Children {
		if c.Type == sexp.ListType {
			return false
		}
	}
	return true
}

func encodeCompact(node *sexp.Node, w io.Writer) error {
	if err := writeString(w, "("); err != nil {
		return err
	}
	for i, c := range node.Children {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if c.Type == sexp.ListType {
			if err := encodeCompact(c, w); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, atomString(c)); err != nil {
			return err
		}
	}
	return writeString(w, ")")
}

// encodeBlock renders the leading atom run on the open line, then each
// remaining child on its own line, closing at the parent indent.
func encodeBlock(node *sexp.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "("); err != nil {
		return err
	}
	i := 0
	if !es.block[node.Keyword()] {
		for i < len(node.Children) && node.Children[i].Type != sexp.ListType {
			if i > 0 {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
			if err := writeString(w, atomString(node.Children[i])); err != nil {
				return err
			}
			i++
		}
	} else if i < len(node.Children) {
		// keyword stays on the open line, members move below
		if err := writeString(w, atomString(node.Children[i])); err != nil {
			return err
		}
		i++
	}
	es.depth++
	for ; i < len(node.Children); i++ {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(node.Children[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, ")")
}

func atomString(node *sexp.Node) string {
	if node.Raw != "" {
		return node.Raw
	}
	switch node.Type {
	case sexp.SymbolType:
		return node.String
	case sexp.StringType:
		return token.Quote(node.String)
	case sexp.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		}
	}
	return ""
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
