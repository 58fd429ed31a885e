package sexp

import (
	"cmp"
	"strings"
)

// Equal reports structural equality: same shapes, same scalar values.
// Retained raw text does not participate, so a canonically re-emitted
// tree compares equal to its parsed original.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case SymbolType, StringType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Number < Symbol < String < List
func rank(t Type) int {
	switch t {
	case NumberType:
		return 0
	case SymbolType:
		return 1
	case StringType:
		return 2
	case ListType:
		return 3
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(a.Float(), b.Float())
}

func compareLists(a, b *Node) int {
	lenA := len(a.Children)
	lenB := len(b.Children)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
