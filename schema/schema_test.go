package schema

import (
	"errors"
	"testing"

	"github.com/kiforge/kicad-sexp/parse"
	"github.com/kiforge/kicad-sexp/sexp"
)

func TestExpectKeyword(t *testing.T) {
	node, err := parse.Parse([]byte(`(pad "1" smd)`))
	if err != nil {
		t.Fatal(err)
	}
	if err := ExpectKeyword(node, "pad", "pad"); err != nil {
		t.Errorf("matching keyword rejected: %v", err)
	}
	err = ExpectKeyword(node, "via", "via")
	if err == nil {
		t.Fatal("pad accepted by via schema")
	}
	var se *sexp.SchemaErr
	if !errors.As(err, &se) {
		t.Fatalf("expected *sexp.SchemaErr, got %T", err)
	}
	if se.Construct != "via" {
		t.Errorf("error names construct %q", se.Construct)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("x", func() Codec { return nil })
	if err := r.Register("x", func() Codec { return nil }); err == nil {
		t.Error("duplicate registration accepted")
	}
	if _, ok := r.New("x"); !ok {
		t.Error("registered keyword not found")
	}
	if _, ok := r.New("y"); ok {
		t.Error("unknown keyword found")
	}
}

func TestExtrasSurviveDetached(t *testing.T) {
	node, err := parse.Parse([]byte(`(via (at 1 2) (newfangled a b (c 3)))`))
	if err != nil {
		t.Fatal(err)
	}
	var x Extras
	x.Add(node.Child("newfangled"))

	out := sexp.NewList("via", sexp.NewList("at", sexp.FromInt(1), sexp.FromInt(2)))
	x.EncodeTo(out)
	if got := out.Child("newfangled"); got == nil {
		t.Fatal("extra construct lost")
	} else if !sexp.Equal(got, node.Child("newfangled")) {
		t.Error("extra construct changed")
	}
}
