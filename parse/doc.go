// Package parse builds generic S-expression trees from KiCad file text.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`(via (at 10 20) (size 0.6))`))
//	if err != nil {
//	    return err
//	}
//
//	// Design-rule files hold a sequence of top-level expressions:
//	nodes, err := parse.ParseMulti(data)
//
// # Related Packages
//
//   - github.com/kiforge/kicad-sexp/sexp - Tree representation
//   - github.com/kiforge/kicad-sexp/token - Tokenization
//   - github.com/kiforge/kicad-sexp/encode - Tree back to text
package parse
