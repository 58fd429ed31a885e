package items

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/sexp"
)

func mustParse(t *testing.T, in string) *sexp.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return node
}

func ptr[T any](v T) *T { return &v }

func TestPosition(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Position
	}{
		{`(at 10 20)`, Position{X: 10, Y: 20}},
		{`(at 10 20 90)`, Position{X: 10, Y: 20, Angle: ptr(90.0)}},
		{`(at 1.5 -2.5 180 unlocked)`, Position{X: 1.5, Y: -2.5, Angle: ptr(180.0), Unlocked: true}},
		{`(start 0 0)`, Position{}},
	} {
		got, err := DecodePosition(mustParse(t, tc.in), "test")
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.in, diff)
		}
	}
}

func TestPositionEncodeKeyword(t *testing.T) {
	p := Position{X: 1, Y: 2}
	got := encode.String(p.Encode("end"))
	if want := "(end 1 2)"; got != want {
		t.Errorf("have %q, want %q", got, want)
	}
}

func TestStrokeRoundTrip(t *testing.T) {
	in := `(stroke (width 0.25) (type dash) (color 255 0 0 1))`
	var s Stroke
	if err := s.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	want := Stroke{Width: 0.25, Type: "dash", Color: &ColorRGBA{R: 255, A: 1}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	if got := encode.String(s.Encode()); got != in {
		t.Errorf("have %q, want %q", got, in)
	}
}

func TestEffects(t *testing.T) {
	in := `(effects (font (size 1.27 1.27) (thickness 0.15) bold italic) (justify left bottom) hide)`
	var e Effects
	if err := e.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	want := Effects{
		Font: Font{
			Height: 1.27, Width: 1.27,
			Thickness: ptr(0.15),
			Bold:      true, Italic: true,
		},
		Justify: Justify{Horizontally: "left", Vertically: "bottom"},
		Hide:    true,
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	if got := encode.String(e.Encode()); got != in {
		t.Errorf("have %q, want %q", got, in)
	}
}

func TestJustifyDefaultOmitted(t *testing.T) {
	e := Effects{Font: Font{Height: 1.27, Width: 1.27}}
	got := encode.String(e.Encode())
	if strings.Contains(got, "justify") {
		t.Errorf("default justify should be omitted, have %q", got)
	}
}

func TestDecodeFailureLeavesReceiver(t *testing.T) {
	e := Effects{Hide: true}
	err := e.Decode(mustParse(t, `(effects (font (size bad 1)))`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !e.Hide {
		t.Error("failed decode must not touch the receiver")
	}
}

func TestNet(t *testing.T) {
	var n Net
	if err := n.Decode(mustParse(t, `(net 42 "/CLK")`)); err != nil {
		t.Fatal(err)
	}
	if n.Number != 42 || n.Name != "/CLK" {
		t.Fatalf("have %+v", n)
	}
	if got := encode.String(n.Encode()); got != "(net 42 \"/CLK\")" {
		t.Errorf("have %q", got)
	}
}

func TestProperty(t *testing.T) {
	in := `(property "Reference" "R1" (at 5 -2 0) (layer "F.SilkS") (effects (font (size 1 1))))`
	var p Property
	if err := p.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	if p.Key != "Reference" || p.Value != "R1" || p.Layer != "F.SilkS" {
		t.Fatalf("have %+v", p)
	}
	if p.Position == nil || p.Position.X != 5 || p.Position.Y != -2 {
		t.Fatalf("position %+v", p.Position)
	}
	// Placed properties re-emit block-formatted; compare trees.
	again := mustParse(t, encode.String(p.Encode()))
	if !sexp.Equal(mustParse(t, in), again) {
		t.Errorf("re-encode changed the tree:\n%s", encode.String(p.Encode()))
	}
}

func TestPageSettings(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want PageSettings
	}{
		{`(paper "A4")`, PageSettings{Size: "A4"}},
		{`(paper "A4" portrait)`, PageSettings{Size: "A4", Portrait: true}},
		{`(paper "User" 200 150)`, PageSettings{Size: "User", Width: ptr(200.0), Height: ptr(150.0)}},
	} {
		var p PageSettings
		if err := p.Decode(mustParse(t, tc.in)); err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, p); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.in, diff)
		}
		if got := encode.String(p.Encode()); got != tc.in {
			t.Errorf("have %q, want %q", got, tc.in)
		}
	}
}

func TestTitleBlockCommentOrder(t *testing.T) {
	in := `(title_block (title "Amp") (rev "B") (comment 3 "three") (comment 1 "one"))`
	var tb TitleBlock
	if err := tb.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	got := encode.String(tb.Encode())
	one := strings.Index(got, `(comment 1`)
	three := strings.Index(got, `(comment 3`)
	if one < 0 || three < 0 || one > three {
		t.Errorf("comments must re-emit in slot order, have %q", got)
	}
}

func TestGroup(t *testing.T) {
	// the host writes id and member uuids unquoted
	in := `(group "PSU" (id aa-bb) (members u1 u2))`
	var g Group
	if err := g.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	want := Group{Name: "PSU", ID: "aa-bb", Members: []string{"u1", "u2"}}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("(-want +got)\n%s", diff)
	}
	// re-encode must keep the uuid atoms as symbols
	if !sexp.Equal(g.Encode(), mustParse(t, in)) {
		t.Errorf("have %q", encode.String(g.Encode()))
	}
}

func TestImageDataChunks(t *testing.T) {
	in := `(image (at 50 50) (data "iVBORw0KGgoAAA" "AAANSUhEUgAA"))`
	var im Image
	if err := im.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	if len(im.Data) != 2 || im.Data[0] != "iVBORw0KGgoAAA" {
		t.Fatalf("data %v", im.Data)
	}
	out := encode.String(im.Encode())
	if !strings.Contains(out, "\"iVBORw0KGgoAAA\"\n") {
		t.Errorf("data chunks must emit one per line, have %q", out)
	}
}
