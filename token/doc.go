// Package token lexes KiCad S-expression text into atoms and
// parenthesis boundaries.
//
// # Usage
//
//	toks, err := token.Tokenize([]byte(`(via (at 10 20))`))
//	if err != nil {
//	    return err
//	}
//
// Tokens retain the raw bytes they were lexed from, so numbers such as
// "0.1000" can be re-emitted exactly as they appeared in the input.
//
// # Related Packages
//
//   - github.com/kiforge/kicad-sexp/parse - Token stream to tree
//   - github.com/kiforge/kicad-sexp/sexp - Tree representation
//   - github.com/kiforge/kicad-sexp/encode - Tree back to text
package token
