package token

import "github.com/kiforge/kicad-sexp/debug"

// Tokenize lexes d into a finite token sequence. The returned tokens
// reference slices of d; callers must not mutate d afterwards.
//
// dst may be nil; when non-nil it is reused as the backing slice.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	res := dst[:0]
	doc := NewPosDoc(d)
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			doc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '(':
			res = append(res, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ')':
			res = append(res, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '"':
			end, err := scanQuoted(d, i, doc)
			if err != nil {
				return nil, err
			}
			res = append(res, Token{Type: TString, Pos: doc.Pos(i), Bytes: d[i:end]})
			i = end
		default:
			end := scanBareword(d, i)
			raw := d[i:end]
			tt, _ := classifyNumber(raw)
			res = append(res, Token{Type: tt, Pos: doc.Pos(i), Bytes: raw})
			i = end
		}
	}
	if debug.Tokenize() {
		debug.Logf("token: %d tokens from %d bytes\n", len(res), n)
	}
	return res, nil
}

// scanQuoted returns the offset one past the closing quote. Newlines
// inside the string still feed the position index so later errors report
// correct lines.
func scanQuoted(d []byte, start int, doc *PosDoc) (int, error) {
	i := start + 1
	n := len(d)
	for i < n {
		switch d[i] {
		case '\\':
			if i+1 >= n {
				return 0, NewTokenizeErr(ErrUnterminatedString, doc.Pos(start))
			}
			i += 2
		case '"':
			return i + 1, nil
		case '\n':
			doc.nl(i)
			i++
		default:
			i++
		}
	}
	return 0, NewTokenizeErr(ErrUnterminatedString, doc.Pos(start))
}

func scanBareword(d []byte, start int) int {
	i := start
	n := len(d)
	for i < n {
		switch d[i] {
		case ' ', '\t', '\r', '\n', '(', ')', '"':
			return i
		}
		i++
	}
	return i
}
