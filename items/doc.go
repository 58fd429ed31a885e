// Package items implements the constructs shared across every KiCad
// file kind: positions, coordinates, colors, strokes, text effects,
// nets, properties, page settings, title blocks, groups and embedded
// images.
package items
