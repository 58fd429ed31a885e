package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
	e     error
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:    `(via)`,
			types: []TokenType{TLParen, TSymbol, TRParen},
		},
		{
			in:    `(at 10 20)`,
			types: []TokenType{TLParen, TSymbol, TInteger, TInteger, TRParen},
		},
		{
			in:    `(size 0.6)`,
			types: []TokenType{TLParen, TSymbol, TFloat, TRParen},
		},
		{
			in:    `(layers F.Cu B.Cu)`,
			types: []TokenType{TLParen, TSymbol, TSymbol, TSymbol, TRParen},
		},
		{
			in:    `(name "hello world")`,
			types: []TokenType{TLParen, TSymbol, TString, TRParen},
		},
		{
			in:    `(value "esc \"q\"")`,
			types: []TokenType{TLParen, TSymbol, TString, TRParen},
		},
		{
			in:    `-0.6`,
			types: []TokenType{TFloat},
		},
		{
			in:    `1e-3`,
			types: []TokenType{TFloat},
		},
		{
			in:    `+44`,
			types: []TokenType{TInteger},
		},
		{
			in:    `20211014`,
			types: []TokenType{TInteger},
		},
		{
			in:    `0.1000`,
			types: []TokenType{TFloat},
		},
		{
			in:    `1.2.3`, // version-ish bareword, not a number
			types: []TokenType{TSymbol},
		},
		{
			in:    "\t(a\n\tb)",
			types: []TokenType{TLParen, TSymbol, TSymbol, TRParen},
		},
		{
			in: `(name "unterminated`,
			e:  ErrUnterminatedString,
		},
	}
	for _, tc := range tests {
		toks, err := Tokenize(nil, []byte(tc.in))
		if tc.e != nil {
			if err == nil {
				t.Errorf("%q: expected error %v, got none", tc.in, tc.e)
			} else if !errors.Is(err, tc.e) {
				t.Errorf("%q: expected error %v, got %v", tc.in, tc.e, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tc.in, err)
			continue
		}
		if len(toks) != len(tc.types) {
			t.Errorf("%q: got %d tokens, want %d", tc.in, len(toks), len(tc.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != tc.types[i] {
				t.Errorf("%q: token %d is %s, want %s", tc.in, i, toks[i].Type, tc.types[i])
			}
		}
	}
}

func TestTokenizeRawPreserved(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`(size 0.1000)`))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(toks[2].Bytes); got != "0.1000" {
		t.Errorf("raw bytes %q, want %q", got, "0.1000")
	}
}

func TestTokenizeErrPosition(t *testing.T) {
	_, err := Tokenize(nil, []byte("(name \n  \"oops"))
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatalf("expected *TokenizeErr, got %T", err)
	}
	if te.Pos.I != 9 {
		t.Errorf("error offset %d, want 9", te.Pos.I)
	}
	if te.Pos.Line() != 1 {
		t.Errorf("error line %d, want 1", te.Pos.Line())
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		"with space",
		`with "quotes"`,
		`back\slash`,
		"multi\nline",
		"${KIPRJMOD}/lib.pretty",
	} {
		q := Quote(v)
		if got := QuotedToString([]byte(q)); got != v {
			t.Errorf("Quote/Unquote mismatch: %q -> %q -> %q", v, q, got)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	for v, want := range map[string]bool{
		"":        true,
		"a b":     true,
		"(":       true,
		"F.Cu":    false,
		"locked":  false,
		"0.1000":  false,
		"quo\"te": true,
	} {
		if got := NeedsQuote(v); got != want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", v, got, want)
		}
	}
}
