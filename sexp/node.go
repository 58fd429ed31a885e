package sexp

import (
	"strconv"
)

type Type int

const (
	ListType Type = iota
	SymbolType
	StringType
	NumberType
)

func (t Type) String() string {
	return map[Type]string{
		ListType:   "list",
		SymbolType: "symbol",
		StringType: "string",
		NumberType: "number",
	}[t]
}

// Node is one vertex of the generic tree. Lists own their Children in
// document order. Atoms carry the scalar payload for their Type, and
// Raw retains the original textual form when the node came from a
// parsed document. A cleared Raw means the encoder derives the text
// from the payload instead.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Children    []*Node

	String  string
	Raw     string
	Float64 *float64
	Int64   *int64
}

// NewList builds a list node whose first child is the keyword symbol.
func NewList(keyword string, children ...*Node) *Node {
	res := &Node{Type: ListType}
	res.Append(FromSymbol(keyword))
	for _, c := range children {
		res.Append(c)
	}
	return res
}

// List builds a list node without a leading keyword.
func List(children ...*Node) *Node {
	res := &Node{Type: ListType}
	for _, c := range children {
		res.Append(c)
	}
	return res
}

func FromSymbol(v string) *Node {
	return &Node{Type: SymbolType, String: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// Append adds children at the end of the list, fixing up parent links.
func (y *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		child.Parent = y
		child.ParentIndex = len(y.Children)
		y.Children = append(y.Children, child)
	}
	return y
}

// Keyword returns the leading symbol of a list, or "" when the node is
// an atom or the list does not start with a symbol.
func (y *Node) Keyword() string {
	if y.Type != ListType || len(y.Children) == 0 {
		return ""
	}
	k := y.Children[0]
	if k.Type != SymbolType {
		return ""
	}
	return k.String
}

// Float returns the numeric value of a number atom.
func (y *Node) Float() float64 {
	if y.Float64 != nil {
		return *y.Float64
	}
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	return 0
}

// Int returns the integer value of a number atom, truncating floats.
func (y *Node) Int() int64 {
	if y.Int64 != nil {
		return *y.Int64
	}
	if y.Float64 != nil {
		return int64(*y.Float64)
	}
	return 0
}

// SetFloat mutates a number atom, dropping the retained raw text so the
// encoder switches to canonical formatting.
func (y *Node) SetFloat(f float64) {
	y.Type = NumberType
	y.Float64 = &f
	y.Int64 = nil
	y.Raw = ""
}

func (y *Node) SetInt(v int64) {
	y.Type = NumberType
	y.Int64 = &v
	y.Float64 = nil
	y.Raw = ""
}

func (y *Node) SetString(v string) {
	y.Type = StringType
	y.String = v
	y.Float64 = nil
	y.Int64 = nil
	y.Raw = ""
}

// Text returns the scalar value of an atom as a string: the unquoted
// value for strings and symbols, the textual form for numbers.
func (y *Node) Text() string {
	switch y.Type {
	case SymbolType, StringType:
		return y.String
	case NumberType:
		if y.Raw != "" {
			return y.Raw
		}
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
		}
	}
	return ""
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Type = y.Type
	dst.String = y.String
	dst.Raw = y.Raw
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Children = make([]*Node, len(y.Children))
	for i, yc := range y.Children {
		dstI := &Node{}
		yc.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Children[i] = dstI
	}
	return dst
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the tree depth first. f is called before and after the
// children of each list; returning false from the pre call skips them.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
