package parse

import (
	"errors"
	"fmt"

	"github.com/kiforge/kicad-sexp/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrEmptyDocument = errors.New("empty document")
)

// UnbalancedErr reports an unmatched parenthesis, citing the position
// of the paren that opened the unterminated expression and the nesting
// depth at that point.
type UnbalancedErr struct {
	Depth int
	Pos   token.Pos
}

func (e *UnbalancedErr) Error() string {
	return fmt.Sprintf("unbalanced expression (depth %d) opened at %s", e.Depth, e.Pos.String())
}

func (e *UnbalancedErr) Unwrap() error {
	return ErrParse
}
