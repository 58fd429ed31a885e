package condition

import (
	"fmt"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// Condition owns one rule's condition string. The structured tree is
// built on first use and memoized; the verbatim source always wins for
// serialization.
type Condition struct {
	src string

	parsed bool
	expr   Expr
	err    error
}

func New(src string) *Condition {
	return &Condition{src: src}
}

// String returns the verbatim condition source.
func (c *Condition) String() string {
	return c.src
}

// Expr returns the structured expression tree, parsing it on demand.
func (c *Condition) Expr() (Expr, error) {
	if !c.parsed {
		c.expr, c.err = Parse(c.src)
		c.parsed = true
	}
	return c.expr, c.err
}

// Parse builds the expression tree for src.
func Parse(src string) (Expr, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCondition, err)
	}
	return lower(tree.Node)
}

// lower converts the expression-language AST into the closed condition
// node set, rejecting constructs the rule grammar has no use for.
func lower(n ast.Node) (Expr, error) {
	switch v := n.(type) {
	case *ast.IdentifierNode:
		return &Property{Path: []string{v.Value}}, nil
	case *ast.MemberNode:
		path, err := memberPath(v)
		if err != nil {
			return nil, err
		}
		return &Property{Path: path}, nil
	case *ast.StringNode:
		s := v.Value
		return &Literal{Str: &s}, nil
	case *ast.IntegerNode:
		f := float64(v.Value)
		return &Literal{Num: &f}, nil
	case *ast.FloatNode:
		f := v.Value
		return &Literal{Num: &f}, nil
	case *ast.BoolNode:
		b := v.Value
		return &Literal{Bool: &b}, nil
	case *ast.UnaryNode:
		switch v.Operator {
		case "!", "not":
			x, err := lower(v.Node)
			if err != nil {
				return nil, err
			}
			return &Not{X: x}, nil
		case "-":
			x, err := lower(v.Node)
			if err != nil {
				return nil, err
			}
			lit, ok := x.(*Literal)
			if !ok || lit.Num == nil {
				return nil, fmt.Errorf("%w: unary - on non-number", ErrCondition)
			}
			f := -*lit.Num
			return &Literal{Num: &f}, nil
		default:
			return nil, fmt.Errorf("%w: unary operator %q", ErrCondition, v.Operator)
		}
	case *ast.BinaryNode:
		op, err := binaryOp(v.Operator)
		if err != nil {
			return nil, err
		}
		l, err := lower(v.Left)
		if err != nil {
			return nil, err
		}
		r, err := lower(v.Right)
		if err != nil {
			return nil, err
		}
		return &Binary{Op: op, L: l, R: r}, nil
	case *ast.CallNode:
		return lowerCall(v)
	default:
		return nil, fmt.Errorf("%w: unsupported construct %T", ErrCondition, n)
	}
}

func binaryOp(op string) (string, error) {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return op, nil
	case "&&", "and":
		return "&&", nil
	case "||", "or":
		return "||", nil
	default:
		return "", fmt.Errorf("%w: operator %q", ErrCondition, op)
	}
}

func lowerCall(v *ast.CallNode) (Expr, error) {
	call := &Call{}
	switch callee := v.Callee.(type) {
	case *ast.IdentifierNode:
		call.Name = callee.Value
	case *ast.MemberNode:
		path, err := memberPath(callee)
		if err != nil {
			return nil, err
		}
		call.Name = path[len(path)-1]
		call.Receiver = path[:len(path)-1]
	default:
		return nil, fmt.Errorf("%w: call on %T", ErrCondition, v.Callee)
	}
	for _, a := range v.Arguments {
		arg, err := lower(a)
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
	}
	return call, nil
}

func memberPath(m *ast.MemberNode) ([]string, error) {
	prop, ok := m.Property.(*ast.StringNode)
	if !ok {
		return nil, fmt.Errorf("%w: computed property access", ErrCondition)
	}
	switch base := m.Node.(type) {
	case *ast.IdentifierNode:
		return []string{base.Value, prop.Value}, nil
	case *ast.MemberNode:
		head, err := memberPath(base)
		if err != nil {
			return nil, err
		}
		return append(head, prop.Value), nil
	default:
		return nil, fmt.Errorf("%w: property access on %T", ErrCondition, m.Node)
	}
}
