// Package encode renders S-expression trees back to KiCad file text.
//
// The encoder is solely responsible for byte layout: indentation grows
// one fixed unit per nesting depth, every expression starts its own
// line except compact fixed-shape constructs (coordinates, strokes,
// text effects), and atoms replay their original text when it was
// retained by the parser. An unmodified parse→encode round trip is
// byte identical.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(node, &buf); err != nil {
//	    return err
//	}
//
//	s := encode.String(node) // without the trailing newline
//
// # Related Packages
//
//   - github.com/kiforge/kicad-sexp/sexp - Tree representation
//   - github.com/kiforge/kicad-sexp/parse - Text to tree
package encode
