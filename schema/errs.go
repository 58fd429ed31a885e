package schema

import (
	"errors"
	"fmt"
)

var ErrUnsupportedVersion = errors.New("unsupported version")

// UnsupportedVersionErr marks a root version token this schema does
// not know. Policy: decoding is still attempted best effort; the error
// is only surfaced when the structure turns out incompatible.
type UnsupportedVersionErr struct {
	Construct string
	Version   string
}

func (e *UnsupportedVersionErr) Error() string {
	return fmt.Sprintf("%s: unsupported version %q", e.Construct, e.Version)
}

func (e *UnsupportedVersionErr) Unwrap() error {
	return ErrUnsupportedVersion
}
