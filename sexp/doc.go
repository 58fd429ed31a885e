// Package sexp defines the generic ordered tree for KiCad S-expression
// documents, together with typed accessors over it.
//
// A Node is either a list or an atom. Lists keep their children in
// document order; by convention the first child of a list is a symbol
// naming the construct. Atoms retain the raw text they were parsed
// from so an unmodified tree re-encodes byte for byte.
//
// # Related Packages
//
//   - github.com/kiforge/kicad-sexp/parse - Text to tree
//   - github.com/kiforge/kicad-sexp/encode - Tree to text
//   - github.com/kiforge/kicad-sexp/schema - Codec contract over trees
package sexp
