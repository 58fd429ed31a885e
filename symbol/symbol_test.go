package symbol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/schema"
	"github.com/kiforge/kicad-sexp/sexp"
)

const resistorLib = `(kicad_symbol_lib
  (version 20211014)
  (generator kicad_symbol_editor)
  (symbol "R" (pin_numbers hide) (pin_names (offset 0)) (in_bom yes) (on_board yes)
    (property "Reference" "R" (id 0) (at 2.032 0 90) (effects (font (size 1.27 1.27))))
    (property "Value" "R" (id 1) (at 0 0 90) (effects (font (size 1.27 1.27))))
    (symbol "R_0_1"
      (rectangle (start -1.016 -2.54) (end 1.016 2.54) (stroke (width 0.254) (type default)) (fill (type none)))
    )
    (symbol "R_1_1"
      (pin passive line (at 0 3.81 270) (length 1.27) (name "~" (effects (font (size 1.27 1.27)))) (number "1" (effects (font (size 1.27 1.27)))))
      (pin passive line (at 0 -3.81 90) (length 1.27) (name "~" (effects (font (size 1.27 1.27)))) (number "2" (effects (font (size 1.27 1.27)))) (alternate "shield" passive line))
    )
  )
  (symbol "R_Small" (extends "R")
    (property "Reference" "R" (id 0) (at 1.27 0 90) (effects (font (size 1.27 1.27))))
  )
)
`

func mustLib(t *testing.T, in string) *Lib {
	t.Helper()
	l, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestDecode(t *testing.T) {
	l := mustLib(t, resistorLib)
	if l.Version != 20211014 || l.Generator != "kicad_symbol_editor" {
		t.Fatalf("header %+v", l)
	}
	if len(l.Symbols) != 2 {
		t.Fatalf("%d symbols", len(l.Symbols))
	}
	r := l.Symbols[0]
	if !r.HidePinNumbers {
		t.Error("pin_numbers hide lost")
	}
	if r.PinNames == nil || r.PinNames.Offset == nil || *r.PinNames.Offset != 0 {
		t.Fatalf("pin_names %+v", r.PinNames)
	}
	if r.InBOM == nil || !*r.InBOM || r.OnBoard == nil || !*r.OnBoard {
		t.Fatal("in_bom/on_board lost")
	}
	if len(r.Units) != 2 {
		t.Fatalf("%d units", len(r.Units))
	}
}

func TestUnits(t *testing.T) {
	l := mustLib(t, resistorLib)
	body := l.Symbols[0].Units[0]
	if body.LibID != "R_0_1" || len(body.GraphicItems) != 1 {
		t.Fatalf("unit %+v", body)
	}
	rect, ok := body.GraphicItems[0].(*Rectangle)
	if !ok || rect.Stroke.Width != 0.254 || rect.Fill.Type != "none" {
		t.Fatalf("rectangle %#v", body.GraphicItems[0])
	}
	pins := l.Symbols[0].Units[1].Pins
	if len(pins) != 2 {
		t.Fatalf("%d pins", len(pins))
	}
	if pins[0].ElectricalType != "passive" || pins[0].Length != 1.27 || pins[0].Number != "1" {
		t.Fatalf("pin %+v", pins[0])
	}
	if len(pins[1].Alternates) != 1 || pins[1].Alternates[0].Name != "shield" {
		t.Fatalf("alternates %+v", pins[1].Alternates)
	}
}

func TestExtends(t *testing.T) {
	l := mustLib(t, resistorLib)
	if got := l.Symbols[1].Extends; got != "R" {
		t.Fatalf("extends %q", got)
	}
}

func TestLookup(t *testing.T) {
	l := mustLib(t, resistorLib)
	if l.Lookup("R_Small") == nil || l.Lookup("C") != nil {
		t.Fatal("lookup by lib id")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	l := mustLib(t, resistorLib)
	out := encode.String(l.Encode())
	a, err := parse.Parse([]byte(resistorLib))
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

func TestNewSymbol(t *testing.T) {
	s := NewSymbol("Device:R", "R", "10k")
	if len(s.Properties) != 4 {
		t.Fatalf("%d properties", len(s.Properties))
	}
	for i, key := range []string{"Reference", "Value", "Footprint", "Datasheet"} {
		p := s.Properties[i]
		if p.Key != key || p.ID == nil || *p.ID != int64(i) {
			t.Fatalf("slot %d: %+v", i, p)
		}
	}
	if !s.Properties[2].Effects.Hide || s.Properties[0].Effects.Hide {
		t.Error("footprint hides, reference shows")
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "R.kicad_sym")
	if err := os.WriteFile(path, []byte(resistorLib), 0644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "copy.kicad_sym")
	if err := l.Save(out); err != nil {
		t.Fatal(err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := encode.String(again.Encode()), encode.String(l.Encode()); got != want {
		t.Errorf("reload not stable:\nhave %s\nwant %s", got, want)
	}
}

func TestUnknownLibChildSurvives(t *testing.T) {
	in := `(kicad_symbol_lib
  (version 20211014)
  (generator kicad_symbol_editor)
  (future_token 42)
)`
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	l := &Lib{}
	if err := l.Decode(node); err != nil {
		t.Fatal(err)
	}
	if len(l.Extras) != 1 {
		t.Fatalf("extras: %d", len(l.Extras))
	}
	if !sexp.Equal(l.Encode(), node) {
		t.Errorf("unknown child dropped:\n%s", encode.String(l.Encode()))
	}
}

func TestNewLib(t *testing.T) {
	l := NewLib(schema.Defaults{Version: 20211014, Generator: schema.LibraryGenerator})
	l.Symbols = append(l.Symbols, NewSymbol("Device:R", "R", "10k"))
	out := encode.String(l.Encode())
	again, err := Parse([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if again.Lookup("Device:R") == nil {
		t.Errorf("fresh library does not round trip:\n%s", out)
	}
}
