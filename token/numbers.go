package token

// classifyNumber reports whether d, a complete bareword, reads as a
// number, and if so whether it is an integer or a float. Barewords with
// trailing non-numeric content (layer names like "F.Cu") are symbols.
func classifyNumber(d []byte) (TokenType, bool) {
	i := 0
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	digits := asciiDigits(d[i:])
	i += digits
	f := fract(d[i:])
	i += f
	if digits == 0 && f == 0 {
		return TSymbol, false
	}
	e := exp(d[i:])
	i += e
	if i != len(d) {
		return TSymbol, false
	}
	if f+e > 0 {
		return TFloat, true
	}
	return TInteger, true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
