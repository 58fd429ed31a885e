package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen TokenType = iota
	TRParen
	TSymbol
	TString
	TInteger
	TFloat
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TSymbol:  "TSymbol",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
	}[t]
}

// Token is a single lexed unit. Bytes holds the raw slice of input the
// token was lexed from, quotes included for TString.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token value with string quoting and escapes removed.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
