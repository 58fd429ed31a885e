package board

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/fidelity"
	"github.com/kiforge/kicad-sexp/items"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/sexp"
)

const miniBoard = `(kicad_pcb
  (version 20211014)
  (generator pcbnew)
  (general
    (thickness 1.6)
  )
  (paper "A4")
  (title_block
    (title "Mini")
    (rev "A")
  )
  (layers
    (0 "F.Cu" signal)
    (31 "B.Cu" signal)
    (36 "B.SilkS" user "B.Silkscreen")
  )
  (setup
    (pad_to_mask_clearance 0.05)
    (aux_axis_origin 10 10)
    (pcbplotparams (layerselection 0x00010fc_ffffffff) (disableapertmacros false))
  )
  (property "sheetfile" "mini.kicad_sch")
  (net 0 "")
  (net 1 "GND")
  (footprint "Resistor_SMD:R_0805_2012Metric"
    (layer "F.Cu")
    (tstamp 11111111-2222-3333-4444-555555555555)
    (at 25 30 90)
    (pad "1" smd roundrect (at -0.9125 0) (size 1.025 1.4) (layers "F.Cu") (net 1 "GND"))
  )
  (gr_text "rev A" (at 5 5) (layer "Cmts.User") (effects (font (size 1.5 1.5))))
  (gr_line (start 0 0) (end 50 0) (layer "Edge.Cuts") (width 0.1))
  (segment (start 25 30) (end 30 30) (width 0.25) (layer "F.Cu") (net 1) (tstamp aa))
  (via (at 30 30) (size 0.8) (drill 0.4) (layers "F.Cu" "B.Cu") (net 1) (tstamp bb))
  (arc (start 30 30) (mid 32 31) (end 34 30) (width 0.25) (layer "F.Cu") (net 1))
  (zone (net 1) (net_name "GND") (layer "B.Cu") (tstamp cc) (hatch edge 0.5)
    (connect_pads (clearance 0.5))
    (fill yes (thermal_gap 0.5) (thermal_bridge_width 0.5))
    (polygon (pts (xy 0 0) (xy 50 0) (xy 50 40) (xy 0 40)))
  )
  (group "G1" (id dd) (members aa bb))
)
`

func mustBoard(t *testing.T, in string) *Board {
	t.Helper()
	b, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustParse(t *testing.T, in string) *sexp.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestDecode(t *testing.T) {
	b := mustBoard(t, miniBoard)
	if b.Version != 20211014 || b.Generator != "pcbnew" {
		t.Fatalf("header %+v", b)
	}
	if b.General.Thickness != 1.6 || b.Paper.Size != "A4" {
		t.Fatalf("general %+v paper %+v", b.General, b.Paper)
	}
	if b.TitleBlock == nil || b.TitleBlock.Title != "Mini" {
		t.Fatalf("title block %+v", b.TitleBlock)
	}
	if len(b.Layers) != 3 || len(b.Nets) != 2 || len(b.Footprints) != 1 {
		t.Fatalf("%d layers, %d nets, %d footprints",
			len(b.Layers), len(b.Nets), len(b.Footprints))
	}
	if len(b.GraphicItems) != 2 || len(b.TraceItems) != 3 || len(b.Zones) != 1 {
		t.Fatalf("%d graphics, %d traces, %d zones",
			len(b.GraphicItems), len(b.TraceItems), len(b.Zones))
	}
}

func TestLayerTable(t *testing.T) {
	b := mustBoard(t, miniBoard)
	want := &Layer{Ordinal: 36, Name: "B.SilkS", Type: "user", UserName: "B.Silkscreen"}
	if diff := cmp.Diff(want, b.Layers[2]); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if got := encode.String(b.Layers[2].Encode()); got != `(36 "B.SilkS" user "B.Silkscreen")` {
		t.Errorf("have %q", got)
	}
}

func TestSetup(t *testing.T) {
	b := mustBoard(t, miniBoard)
	if b.Setup.PadToMaskClearance != 0.05 {
		t.Fatalf("clearance %v", b.Setup.PadToMaskClearance)
	}
	if b.Setup.AuxAxisOrigin == nil || b.Setup.AuxAxisOrigin[0] != 10 {
		t.Fatalf("aux origin %v", b.Setup.AuxAxisOrigin)
	}
	// plot parameters ride along unparsed
	if b.Setup.Extras.Empty() {
		t.Fatal("pcbplotparams must survive in extras")
	}
	out := encode.String(b.Setup.Encode())
	if !strings.Contains(out, "0x00010fc_ffffffff") {
		t.Errorf("plot params lost:\n%s", out)
	}
}

func TestTraceItems(t *testing.T) {
	b := mustBoard(t, miniBoard)
	seg, ok := b.TraceItems[0].(*Segment)
	if !ok || seg.Width != 0.25 || seg.Net != 1 || seg.ID != "aa" {
		t.Fatalf("segment %#v", b.TraceItems[0])
	}
	via, ok := b.TraceItems[1].(*Via)
	if !ok || via.Size != 0.8 || len(via.Layers) != 2 {
		t.Fatalf("via %#v", b.TraceItems[1])
	}
	if via.Drill == nil || *via.Drill != 0.4 || via.Net == nil || *via.Net != 1 {
		t.Fatalf("via %#v", via)
	}
	if _, ok := b.TraceItems[2].(*TraceArc); !ok {
		t.Fatalf("arc %#v", b.TraceItems[2])
	}
}

func TestBareViaRoundTrip(t *testing.T) {
	in := `(via (at 10 20) (size 0.6) (layers F.Cu B.Cu))`
	v := &Via{}
	if err := v.Decode(mustParse(t, in)); err != nil {
		t.Fatal(err)
	}
	if v.Drill != nil || v.Net != nil {
		t.Fatalf("absent tokens decoded as present: %#v", v)
	}
	if !sexp.Equal(v.Encode(), mustParse(t, in)) {
		t.Errorf("have %q", encode.String(v.Encode()))
	}
}

func TestViaCompactLine(t *testing.T) {
	b := mustBoard(t, miniBoard)
	out := encode.String(b.TraceItems[1].(*Via).Encode())
	if strings.Contains(out, "\n") {
		t.Errorf("vias render on one line, have:\n%s", out)
	}
}

func TestZone(t *testing.T) {
	b := mustBoard(t, miniBoard)
	z := b.Zones[0]
	if z.Net != 1 || z.NetName != "GND" || len(z.Layers) != 1 || z.Layers[0] != "B.Cu" {
		t.Fatalf("zone %+v", z)
	}
	if z.Hatch == nil || z.Hatch.Style != "edge" || z.Hatch.Pitch != 0.5 {
		t.Fatalf("hatch %+v", z.Hatch)
	}
	if len(z.Outline) != 4 {
		t.Fatalf("outline %v", z.Outline)
	}
	out := encode.String(z.Encode())
	for _, kept := range []string{"connect_pads", "thermal_gap"} {
		if !strings.Contains(out, kept) {
			t.Errorf("%s lost:\n%s", kept, out)
		}
	}
}

func TestEmbeddedFootprint(t *testing.T) {
	b := mustBoard(t, miniBoard)
	f := b.Footprints[0]
	if f.Version != nil {
		t.Error("embedded footprints carry no version header")
	}
	if f.Position == nil || f.Position.Angle == nil || *f.Position.Angle != 90 {
		t.Fatalf("position %+v", f.Position)
	}
	if f.Pads[0].Net == nil || f.Pads[0].Net.Name != "GND" {
		t.Fatalf("pad net %+v", f.Pads[0].Net)
	}
}

func TestNetByName(t *testing.T) {
	b := mustBoard(t, miniBoard)
	if n := b.NetByName("GND"); n == nil || n.Number != 1 {
		t.Fatalf("have %+v", n)
	}
	if b.NetByName("VCC") != nil {
		t.Error("miss must return nil")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b := mustBoard(t, miniBoard)
	out := encode.String(b.Encode())
	a, err := parse.Parse([]byte(miniBoard))
	if err != nil {
		t.Fatal(err)
	}
	c, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if !sexp.Equal(a, c) {
		t.Errorf("re-encode changed the tree:\n%s", out)
	}
}

func TestNew(t *testing.T) {
	b := New(DefaultDefaults)
	if b.Version != 20211014 || len(b.Layers) != 2 {
		t.Fatalf("%+v", b)
	}
	if len(b.Nets) != 1 || b.Nets[0].Number != 0 {
		t.Fatal("a fresh board carries the unconnected net")
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.kicad_pcb")
	if err := os.WriteFile(path, []byte(miniBoard), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "copy.kicad_pcb")
	if err := b.Save(out); err != nil {
		t.Fatal(err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	// the encoder is deterministic, so a reload must re-encode to the
	// same bytes
	if got, want := encode.String(again.Encode()), encode.String(b.Encode()); got != want {
		t.Errorf("save/load drifted:\n%s", fidelity.Diff(want, got))
	}
}

func TestPropertyPair(t *testing.T) {
	b := mustBoard(t, miniBoard)
	if len(b.Properties) != 1 {
		t.Fatalf("properties %v", b.Properties)
	}
	want := &items.Property{Key: "sheetfile", Value: "mini.kicad_sch"}
	if diff := cmp.Diff(want, b.Properties[0]); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}
