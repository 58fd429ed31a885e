// Package schema defines the decode/encode contract file-format
// constructs implement against the generic S-expression tree, plus the
// shared machinery those implementations lean on: keyword dispatch
// registries, the extras bucket that preserves constructs a schema
// version does not model, and the immutable defaults passed to
// "create new" constructors.
//
// Every decode is atomic: it either fully succeeds or fails with a
// structured error, never leaving a partially populated entity behind.
package schema
