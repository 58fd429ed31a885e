package condition

import (
	"strconv"
	"strings"
)

// Expr is one node of a parsed condition. The set is closed: Property,
// Literal, Call, Not and Binary cover the whole grammar.
type Expr interface {
	exprString(sb *strings.Builder)
}

// Property is a dotted property path such as A.NetClass.
type Property struct {
	Path []string
}

// Literal is a scalar operand: 'HV', 0.25, true.
type Literal struct {
	Str  *string
	Num  *float64
	Bool *bool
}

// Call is a function invocation, optionally bound to a receiver path:
// A.insideArea('Shield*'), AB.isCoupledDiffPair().
type Call struct {
	Receiver []string
	Name     string
	Args     []Expr
}

// Not negates its operand.
type Not struct {
	X Expr
}

// Binary joins two operands with a comparison or boolean connective.
type Binary struct {
	Op string
	L  Expr
	R  Expr
}

func (p *Property) exprString(sb *strings.Builder) {
	sb.WriteString(strings.Join(p.Path, "."))
}

func (l *Literal) exprString(sb *strings.Builder) {
	switch {
	case l.Str != nil:
		sb.WriteString("'" + *l.Str + "'")
	case l.Num != nil:
		sb.WriteString(strconv.FormatFloat(*l.Num, 'f', -1, 64))
	case l.Bool != nil:
		sb.WriteString(strconv.FormatBool(*l.Bool))
	}
}

func (c *Call) exprString(sb *strings.Builder) {
	if len(c.Receiver) > 0 {
		sb.WriteString(strings.Join(c.Receiver, "."))
		sb.WriteString(".")
	}
	sb.WriteString(c.Name)
	sb.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		a.exprString(sb)
	}
	sb.WriteString(")")
}

func (n *Not) exprString(sb *strings.Builder) {
	sb.WriteString("!")
	n.X.exprString(sb)
}

func (b *Binary) exprString(sb *strings.Builder) {
	sb.WriteString("(")
	b.L.exprString(sb)
	sb.WriteString(" " + b.Op + " ")
	b.R.exprString(sb)
	sb.WriteString(")")
}

// ExprString renders a normalized, fully parenthesized form of e. It
// is a debugging aid, not the round-trip representation; the owning
// rule keeps the verbatim source string for that.
func ExprString(e Expr) string {
	var sb strings.Builder
	e.exprString(&sb)
	return sb.String()
}
