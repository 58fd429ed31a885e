package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/sexp"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `(kicad_pcb)`},
		{in: `(via (at 10 20) (size 0.6) (layers F.Cu B.Cu))`},
		{in: `(net 1 "GND")`},
		{in: `(pad "" np_thru_hole circle (at 0 0) (size 1.7 1.7) (drill 1.7))`},
		{in: "(footprint \"lib:R\"\n  (layer \"F.Cu\")\n  (attr smd)\n)"},
		{in: `(effects (font (size 1.27 1.27) (thickness 0.15)) (justify left bottom))`},
		{in: `(a (b (c (d (e)))))`},
		{in: `(empty ())`},
	}
	for _, pt := range pts {
		if _, err := Parse([]byte(pt.in)); err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrEmptyDocument},
		{in: "  \n\t ", e: ErrEmptyDocument},
		{in: `(via (at 10 20`, e: ErrParse},
		{in: `(via))`, e: ErrParse},
		{in: `(a) (b)`, e: ErrParse},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if pt.e == ErrEmptyDocument && !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("%q: expected ErrEmptyDocument, got %v", pt.in, err)
		}
	}
}

func TestParseUnbalancedCitesOpen(t *testing.T) {
	_, err := Parse([]byte(`(via (at 10 20`))
	var ue *UnbalancedErr
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnbalancedErr, got %T (%v)", err, err)
	}
	// the inner (at ... is the unterminated expression
	if ue.Pos.I != 5 {
		t.Errorf("cited offset %d, want 5", ue.Pos.I)
	}
	if ue.Depth != 1 {
		t.Errorf("cited depth %d, want 1", ue.Depth)
	}
}

func TestParseMulti(t *testing.T) {
	in := "(version 1)\n(rule \"HV\"\n  (constraint clearance (min 1.5mm))\n)\n"
	nodes, err := ParseMulti([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	if nodes[0].Keyword() != "version" || nodes[1].Keyword() != "rule" {
		t.Errorf("keywords %q, %q", nodes[0].Keyword(), nodes[1].Keyword())
	}
	if _, err := ParseMulti(nil); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("empty multi: %v", err)
	}
}

func TestParseAtomValues(t *testing.T) {
	node, err := Parse([]byte(`(via (at 10 20) (size 0.6) (layers F.Cu B.Cu))`))
	if err != nil {
		t.Fatal(err)
	}
	at := node.Child("at")
	if at == nil {
		t.Fatal("no at child")
	}
	x, err := at.AtFloat("via", "at", 1)
	if err != nil || x != 10 {
		t.Errorf("x = %v (%v), want 10", x, err)
	}
	size, _, err := node.ChildFloat("via", "size")
	if err != nil || size != 0.6 {
		t.Errorf("size = %v (%v), want 0.6", size, err)
	}
	layers := node.Child("layers")
	if len(layers.Children) != 3 {
		t.Fatalf("layers children = %d, want 3", len(layers.Children))
	}
	if layers.Children[1].String != "F.Cu" || layers.Children[2].String != "B.Cu" {
		t.Errorf("layers = %q %q", layers.Children[1].String, layers.Children[2].String)
	}
}

// Formatting any parsed tree and re-parsing it yields a structurally
// equal tree, including at large sibling and nesting counts.
func TestParseEncodeInverse(t *testing.T) {
	ins := []string{
		`(via (at 10 20) (size 0.6) (layers F.Cu B.Cu))`,
		"(kicad_pcb\n  (version 20211014)\n  (generator pcbnew)\n)",
		`(name "with \"escapes\" and spaces")`,
	}
	for _, in := range ins {
		node, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		out := encode.String(node)
		again, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("reparse %q: %v", out, err)
		}
		if !sexp.Equal(node, again) {
			t.Errorf("%q: reparse not structurally equal", in)
		}
	}
}

func TestParseWidePolygon(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("(gr_poly (pts")
	for i := 0; i < 12000; i++ {
		sb.WriteString(" (xy 1.5 2.5)")
	}
	sb.WriteString("))")
	node, err := Parse([]byte(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	pts := node.Child("pts")
	if len(pts.Children) != 12001 {
		t.Fatalf("pts children = %d", len(pts.Children))
	}
	again, err := Parse([]byte(encode.String(node)))
	if err != nil {
		t.Fatal(err)
	}
	if !sexp.Equal(node, again) {
		t.Error("wide tree not equal after round trip")
	}
}

func TestParseDeepNesting(t *testing.T) {
	depth := 10000
	in := strings.Repeat("(a ", depth) + "1" + strings.Repeat(")", depth)
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse([]byte(encode.String(node)))
	if err != nil {
		t.Fatal(err)
	}
	if !sexp.Equal(node, again) {
		t.Error("deep tree not equal after round trip")
	}
}
