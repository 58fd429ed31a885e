package footprint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

const r0805 = `(footprint "Resistor_SMD:R_0805_2012Metric"
  (version 20211014)
  (generator pcbnew)
  (layer "F.Cu")
  (descr "Resistor SMD 0805")
  (tags "resistor")
  (attr smd)
  (fp_text reference "R1" (at 0 -1.65) (layer "F.SilkS") (effects (font (size 1 1) (thickness 0.15))))
  (fp_line (start -1 0.62) (end 1 0.62) (layer "F.SilkS") (stroke (width 0.12) (type solid)))
  (fp_poly (pts (xy -1 -1) (xy 1 -1) (xy 1 1)) (layer "F.Fab") (fill solid) (width 0.1))
  (pad "1" smd roundrect (at -0.9125 0) (size 1.025 1.4) (layers "F.Cu" "F.Paste" "F.Mask") (roundrect_rratio 0.243902) (net 2 "GND"))
  (pad "2" thru_hole circle (at 0.9125 0) (size 1.025 1.4) (drill oval 0.6 0.9 (offset 0.1 0)) (layers "*.Cu" "*.Mask"))
  (model "R_0805.wrl"
    (offset (xyz 0 0 0.1))
    (scale (xyz 1 1 1))
    (rotate (xyz 0 0 -90))
  )
)
`

func mustParse(t *testing.T, in string) *Footprint {
	t.Helper()
	f, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func ptr[T any](v T) *T { return &v }

func TestDecode(t *testing.T) {
	f := mustParse(t, r0805)
	if f.LibraryLink != "Resistor_SMD:R_0805_2012Metric" {
		t.Fatalf("link %q", f.LibraryLink)
	}
	if f.Version == nil || *f.Version != 20211014 || f.Generator != "pcbnew" {
		t.Fatalf("header %+v", f)
	}
	if f.Attributes == nil || f.Attributes.Type != "smd" {
		t.Fatalf("attr %+v", f.Attributes)
	}
	if len(f.Items) != 3 || len(f.Pads) != 2 || len(f.Models) != 1 {
		t.Fatalf("%d items, %d pads, %d models", len(f.Items), len(f.Pads), len(f.Models))
	}
}

func TestGraphicItemTypes(t *testing.T) {
	f := mustParse(t, r0805)
	ref, ok := f.Items[0].(*Text)
	if !ok || ref.Type != "reference" || ref.Text != "R1" {
		t.Fatalf("item 0: %#v", f.Items[0])
	}
	line, ok := f.Items[1].(*Line)
	if !ok || line.Stroke == nil || line.Stroke.Width != 0.12 {
		t.Fatalf("item 1: %#v", f.Items[1])
	}
	poly, ok := f.Items[2].(*Poly)
	if !ok || len(poly.Points) != 3 || poly.Fill != "solid" {
		t.Fatalf("item 2: %#v", f.Items[2])
	}
	// fp_poly predating the stroke token keeps its width
	if poly.Width == nil || *poly.Width != 0.1 {
		t.Fatalf("poly width %v", poly.Width)
	}
}

func TestPad(t *testing.T) {
	f := mustParse(t, r0805)
	p := f.Pads[0]
	want := &Pad{
		Number: "1", Type: "smd", Shape: "roundrect",
		Position:       items.Position{X: -0.9125},
		Size:           [2]float64{1.025, 1.4},
		Layers:         []string{"F.Cu", "F.Paste", "F.Mask"},
		RoundrectRatio: ptr(0.243902),
		Net:            &items.Net{Number: 2, Name: "GND"},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestDrill(t *testing.T) {
	f := mustParse(t, r0805)
	d := f.Pads[1].Drill
	if d == nil || !d.Oval || d.Diameter != 0.6 || d.Width == nil || *d.Width != 0.9 {
		t.Fatalf("drill %+v", d)
	}
	if d.Offset == nil || d.Offset.X != 0.1 {
		t.Fatalf("offset %+v", d.Offset)
	}
	out := encode.String(d.Encode())
	if out != "(drill oval 0.6 0.9 (offset 0.1 0))" {
		t.Errorf("have %q", out)
	}
}

func TestModelTransforms(t *testing.T) {
	f := mustParse(t, r0805)
	m := f.Models[0]
	if m.Path != "R_0805.wrl" || m.Rotate.Z != -90 {
		t.Fatalf("model %+v", m)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := mustParse(t, r0805)
	out := encode.String(f.Encode())
	a, err := parse.Parse([]byte(r0805))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if !sexp.Equal(a, b) {
		t.Errorf("re-encode changed the tree:\n%s", out)
	}
}

func TestLegacyModuleKeyword(t *testing.T) {
	f := mustParse(t, `(module "Old:THT" (layer F.Cu) (descr "legacy"))`)
	if f.LibraryLink != "Old:THT" || f.Description != "legacy" {
		t.Fatalf("%+v", f)
	}
	// re-encode always uses the current keyword
	if got := f.Encode().Keyword(); got != "footprint" {
		t.Errorf("root %q", got)
	}
}

func TestUnknownChildPreserved(t *testing.T) {
	f := mustParse(t, `(footprint "X:Y" (layer "F.Cu") (net_tie_pad_groups "1,2"))`)
	if f.Extras.Empty() {
		t.Fatal("unknown child must land in extras")
	}
	out := encode.String(f.Encode())
	if !strings.Contains(out, "net_tie_pad_groups") {
		t.Errorf("extras lost on encode:\n%s", out)
	}
}

func TestNew(t *testing.T) {
	f := New("Project:Widget", schema.Defaults{Version: 20211014, Generator: "pcbnew"})
	if f.ID == "" {
		t.Fatal("new footprints must carry an identifier")
	}
	g := New("Project:Widget", schema.Defaults{Version: 20211014, Generator: "pcbnew"})
	if f.ID == g.ID {
		t.Fatal("identifiers must be unique")
	}
	if f.Layer != "F.Cu" || *f.Version != 20211014 {
		t.Fatalf("%+v", f)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "R_0805.kicad_mod")
	if err := os.WriteFile(path, []byte(r0805), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "copy.kicad_mod")
	if err := f.Save(out); err != nil {
		t.Fatal(err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	// graphic items embed unexported state, so compare the canonical
	// encodings rather than the structs
	if got, want := encode.String(again.Encode()), encode.String(f.Encode()); got != want {
		t.Errorf("have:\n%s\nwant:\n%s", got, want)
	}
}

func TestSaveRemembersPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "R_0805.kicad_mod")
	if err := os.WriteFile(path, []byte(r0805), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f.Description = "edited"
	if err := f.Save(""); err != nil {
		t.Fatal(err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Description != "edited" {
		t.Fatalf("descr: %q", again.Description)
	}

	fresh := New("Lib:New", schema.Defaults{Version: 20211014, Generator: "pcbnew"})
	if err := fresh.Save(""); !errors.Is(err, kifile.ErrNoPath) {
		t.Fatalf("save without path: %v", err)
	}
}
