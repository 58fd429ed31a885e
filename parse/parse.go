// Package parse provides KiCad S-expression parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/kiforge/kicad-sexp/debug"
	"github.com/kiforge/kicad-sexp/sexp"
	"github.com/kiforge/kicad-sexp/token"
)

// Parse reads exactly one top-level expression from d. Empty input
// fails with ErrEmptyDocument, trailing content after the expression
// with a parse error.
func Parse(d []byte) (*sexp.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyDocument
	}
	off := 0
	res, err := parseOne(toks, &off, 0)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: trailing content %s", ErrParse, toks[off].Pos)
	}
	if debug.Parse() {
		debug.Logf("parse: %q with %d children from %d tokens\n",
			res.Keyword(), len(res.Children), len(toks))
	}
	return res, nil
}

// ParseMulti reads a sequence of top-level expressions, the shape of
// design-rule files. Empty input fails with ErrEmptyDocument.
func ParseMulti(d []byte) ([]*sexp.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmptyDocument
	}
	var res []*sexp.Node
	off := 0
	for off < len(toks) {
		node, err := parseOne(toks, &off, 0)
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	return res, nil
}

func parseOne(toks []token.Token, pi *int, depth int) (*sexp.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TLParen:
		open := t.Pos
		*pi++
		node := &sexp.Node{Type: sexp.ListType}
		for {
			if *pi >= len(toks) {
				return nil, &UnbalancedErr{Depth: depth, Pos: *open}
			}
			if toks[*pi].Type == token.TRParen {
				*pi++
				return node, nil
			}
			child, err := parseOne(toks, pi, depth+1)
			if err != nil {
				return nil, err
			}
			node.Append(child)
		}
	case token.TRParen:
		return nil, token.UnexpectedErr("closing paren", t.Pos)
	default:
		*pi++
		return atomFromToken(t)
	}
}

func atomFromToken(t *token.Token) (*sexp.Node, error) {
	switch t.Type {
	case token.TSymbol:
		return &sexp.Node{
			Type:   sexp.SymbolType,
			String: string(t.Bytes),
			Raw:    string(t.Bytes),
		}, nil
	case token.TString:
		return &sexp.Node{
			Type:   sexp.StringType,
			String: t.String(),
			Raw:    string(t.Bytes),
		}, nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range, keep the value as a float
			f, ferr := strconv.ParseFloat(string(t.Bytes), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: invalid integer (%v) %s", ErrParse, err, t.Pos)
			}
			return &sexp.Node{
				Type:    sexp.NumberType,
				Float64: &f,
				Raw:     string(t.Bytes),
			}, nil
		}
		return &sexp.Node{
			Type:  sexp.NumberType,
			Int64: &i,
			Raw:   string(t.Bytes),
		}, nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float (%v) %s", ErrParse, err, t.Pos)
		}
		return &sexp.Node{
			Type:    sexp.NumberType,
			Float64: &f,
			Raw:     string(t.Bytes),
		}, nil
	default:
		return nil, token.UnexpectedErr(t.Type.String(), t.Pos)
	}
}
