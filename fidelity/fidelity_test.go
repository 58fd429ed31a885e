package fidelity

import (
	"strings"
	"testing"
)

func TestDiffIdentical(t *testing.T) {
	if d := Diff("(via)", "(via)"); d != "" {
		t.Errorf("identical inputs produced diff %q", d)
	}
}

func TestDiffMarksChanges(t *testing.T) {
	d := Diff("(size 0.6)", "(size 0.8)")
	if d == "" {
		t.Fatal("differing inputs produced no diff")
	}
	if !strings.Contains(d, "[-") || !strings.Contains(d, "[+") {
		t.Errorf("diff markers missing: %q", d)
	}
}

func TestRoundTripIntact(t *testing.T) {
	in := "(via (at 1.5 2) (size 0.8) (layers \"F.Cu\" \"B.Cu\"))\n"
	d, err := RoundTrip([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if d != "" {
		t.Errorf("round trip drifted:\n%s", d)
	}
}

func TestRoundTripReportsDrift(t *testing.T) {
	// non-canonical spacing cannot survive re-encoding
	in := "(via  (size 0.8))\n"
	d, err := RoundTrip([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if d == "" {
		t.Error("drift went unreported")
	}
}

func TestRoundTripFile(t *testing.T) {
	d, err := RoundTripFile("no-such-file.kicad_pcb")
	if err == nil {
		t.Fatalf("missing file: d=%q", d)
	}
}
