package kind

import (
	"errors"
	"testing"
)

func TestFromRoot(t *testing.T) {
	for _, tc := range []struct {
		keyword string
		want    Kind
	}{
		{"kicad_pcb", Board},
		{"kicad_sch", Schematic},
		{"footprint", Footprint},
		{"module", Footprint},
		{"kicad_symbol_lib", SymbolLib},
		{"kicad_wks", Worksheet},
		{"fp_lib_table", FpLibTable},
		{"sym_lib_table", SymLibTable},
	} {
		k, err := FromRoot(tc.keyword)
		if err != nil {
			t.Errorf("%s: %v", tc.keyword, err)
			continue
		}
		if k != tc.want {
			t.Errorf("%s: got %v, want %v", tc.keyword, k, tc.want)
		}
	}
	if _, err := FromRoot("kicad_prl"); !errors.Is(err, ErrBadKind) {
		t.Errorf("unknown root: %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, k := range AllKinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != k {
			t.Errorf("%s: got %v, want %v", d, back, k)
		}
	}
}

func TestRootKeywordInvertsFromRoot(t *testing.T) {
	for _, k := range AllKinds() {
		kw := k.RootKeyword()
		if kw == "" {
			if k != DesignRules {
				t.Errorf("%v: no root keyword", k)
			}
			continue
		}
		back, err := FromRoot(kw)
		if err != nil || back != k {
			t.Errorf("%v: FromRoot(%q) = %v, %v", k, kw, back, err)
		}
	}
}
