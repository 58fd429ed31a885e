package sexp

// Child returns the first list child whose leading symbol is keyword,
// or nil.
func (y *Node) Child(keyword string) *Node {
	for _, c := range y.Children {
		if c.Type == ListType && c.Keyword() == keyword {
			return c
		}
	}
	return nil
}

// ChildrenOf returns every list child whose leading symbol is keyword,
// in document order. Repeated tokens such as multiple "pad" entries are
// looked up this way.
func (y *Node) ChildrenOf(keyword string) []*Node {
	var res []*Node
	for _, c := range y.Children {
		if c.Type == ListType && c.Keyword() == keyword {
			res = append(res, c)
		}
	}
	return res
}

// Flag reports the presence of a bareword flag among the children.
// Many tokens are booleans expressed only by presence ("locked",
// "hide", "italic").
func (y *Node) Flag(keyword string) bool {
	for _, c := range y.Children {
		if c.Type == SymbolType && c.String == keyword {
			return true
		}
	}
	return false
}

// At returns the i-th child, or nil when out of range.
func (y *Node) At(i int) *Node {
	if i < 0 || i >= len(y.Children) {
		return nil
	}
	return y.Children[i]
}

// AtString coerces the i-th child to a string or symbol value.
// construct names the entity being decoded for error reporting.
func (y *Node) AtString(construct, field string, i int) (string, error) {
	c := y.At(i)
	if c == nil {
		return "", NewSchemaErr(construct, field, "missing atom at position %d", i)
	}
	switch c.Type {
	case StringType, SymbolType:
		return c.String, nil
	default:
		return "", NewSchemaErr(construct, field, "expected string at position %d, have %s", i, c.Type)
	}
}

// AtInt coerces the i-th child to an integer.
func (y *Node) AtInt(construct, field string, i int) (int64, error) {
	c := y.At(i)
	if c == nil {
		return 0, NewSchemaErr(construct, field, "missing atom at position %d", i)
	}
	if c.Type != NumberType || c.Int64 == nil {
		return 0, NewSchemaErr(construct, field, "expected integer at position %d, have %s", i, c.Type)
	}
	return *c.Int64, nil
}

// AtFloat coerces the i-th child to a float. Integer atoms widen.
func (y *Node) AtFloat(construct, field string, i int) (float64, error) {
	c := y.At(i)
	if c == nil {
		return 0, NewSchemaErr(construct, field, "missing atom at position %d", i)
	}
	if c.Type != NumberType {
		return 0, NewSchemaErr(construct, field, "expected number at position %d, have %s", i, c.Type)
	}
	return c.Float(), nil
}

// AtNode requires the i-th child to be a list.
func (y *Node) AtNode(construct, field string, i int) (*Node, error) {
	c := y.At(i)
	if c == nil {
		return nil, NewSchemaErr(construct, field, "missing expression at position %d", i)
	}
	if c.Type != ListType {
		return nil, NewSchemaErr(construct, field, "expected expression at position %d, have %s", i, c.Type)
	}
	return c, nil
}

// ChildString is a shorthand for the common `(key "value")` shape: it
// looks up the child list and coerces its sole argument.
func (y *Node) ChildString(construct, keyword string) (string, bool, error) {
	c := y.Child(keyword)
	if c == nil {
		return "", false, nil
	}
	v, err := c.AtString(construct, keyword, 1)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// ChildFloat looks up `(key 1.23)`.
func (y *Node) ChildFloat(construct, keyword string) (float64, bool, error) {
	c := y.Child(keyword)
	if c == nil {
		return 0, false, nil
	}
	v, err := c.AtFloat(construct, keyword, 1)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// ChildInt looks up `(key 42)`.
func (y *Node) ChildInt(construct, keyword string) (int64, bool, error) {
	c := y.Child(keyword)
	if c == nil {
		return 0, false, nil
	}
	v, err := c.AtInt(construct, keyword, 1)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
