package sexp

import (
	"errors"
	"fmt"
)

var ErrSchema = errors.New("schema error")

// SchemaErr reports a coercion or layout mismatch while decoding a
// construct, naming the construct and the offending field.
type SchemaErr struct {
	Construct string
	Field     string
	Err       error
}

func (e *SchemaErr) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Construct, e.Err.Error())
	}
	return fmt.Sprintf("%s.%s: %s", e.Construct, e.Field, e.Err.Error())
}

func (e *SchemaErr) Unwrap() error {
	return e.Err
}

func NewSchemaErr(construct, field string, format string, args ...any) *SchemaErr {
	return &SchemaErr{
		Construct: construct,
		Field:     field,
		Err:       fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...)),
	}
}
