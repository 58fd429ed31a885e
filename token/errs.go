package token

import "errors"

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrBadEscape          = errors.New("bad escape sequence")
)
