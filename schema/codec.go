package schema

import (
	"github.com/kiforge/kicad-sexp/sexp"
)

// Codec is the contract every file-format construct implements.
//
// Decode verifies the leading keyword and populates the receiver from
// the node's children. Implementations decode into a scratch value and
// assign to the receiver only on success, so a failed decode leaves
// the receiver untouched.
//
// Encode deterministically reconstructs a node: presence and order of
// optional children mirror the host tool's writer.
type Codec interface {
	Decode(node *sexp.Node) error
	Encode() *sexp.Node
}

// ExpectKeyword fails with a SchemaErr unless node is a list opening
// with one of the given keywords.
func ExpectKeyword(node *sexp.Node, construct string, keywords ...string) error {
	if node == nil || node.Type != sexp.ListType {
		return sexp.NewSchemaErr(construct, "", "expected expression")
	}
	kw := node.Keyword()
	for _, want := range keywords {
		if kw == want {
			return nil
		}
	}
	if len(keywords) == 1 {
		return sexp.NewSchemaErr(construct, "", "expected %q, have %q", keywords[0], kw)
	}
	return sexp.NewSchemaErr(construct, "", "expected one of %v, have %q", keywords, kw)
}

// Shorthand constructors for the `(keyword value)` shapes entity
// encoders emit.

func StringChild(keyword, v string) *sexp.Node {
	return sexp.NewList(keyword, sexp.FromString(v))
}

func SymbolChild(keyword, v string) *sexp.Node {
	return sexp.NewList(keyword, sexp.FromSymbol(v))
}

func IntChild(keyword string, v int64) *sexp.Node {
	return sexp.NewList(keyword, sexp.FromInt(v))
}

func FloatChild(keyword string, v float64) *sexp.Node {
	return sexp.NewList(keyword, sexp.FromFloat(v))
}
