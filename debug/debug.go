// Package debug holds env-var-gated switches for tracing the parse
// and encode paths without wiring a logger through library APIs.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Encode   bool
	Decode   bool
	File     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("KISEXP_DEBUG_TOKENIZE")
	d.Parse = boolEnv("KISEXP_DEBUG_PARSE")
	d.Encode = boolEnv("KISEXP_DEBUG_ENCODE")
	d.Decode = boolEnv("KISEXP_DEBUG_DECODE")
	d.File = boolEnv("KISEXP_DEBUG_FILE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func File() bool {
	return d.File
}
