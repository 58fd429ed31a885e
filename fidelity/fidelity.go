// Package fidelity verifies the byte-exactness guarantee: loading and
// saving a document without mutation must reproduce identical output.
// Its diff rendering is what the format tests print when the guarantee
// breaks.
package fidelity

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kiforge/kicad-sexp/encode"
	"github.com/kiforge/kicad-sexp/kifile"
	"github.com/kiforge/kicad-sexp/parse"
)

var useColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// Diff returns "" when want and got are byte-identical, otherwise a
// readable inline diff with deletions marked [-...-] and insertions
// [+...+], colorized when stdout is a terminal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			sb.WriteString(paint(color.FgRed, "[-"+d.Text+"-]"))
		case diffpatch.DiffInsert:
			sb.WriteString(paint(color.FgGreen, "[+"+d.Text+"+]"))
		}
	}
	return sb.String()
}

func paint(attr color.Attribute, s string) string {
	if !useColor {
		return s
	}
	return color.New(attr).Sprint(s)
}

// RoundTrip parses data as a single document, re-encodes it, and
// returns a diff against the input. An empty result means the bytes
// survived intact.
func RoundTrip(data []byte) (string, error) {
	node, err := parse.Parse(data)
	if err != nil {
		return "", err
	}
	return Diff(string(data), encode.String(node)+"\n"), nil
}

// RoundTripFile is RoundTrip over a file on disk.
func RoundTripFile(path string, opts ...kifile.Option) (string, error) {
	data, err := kifile.ReadFile(path, opts...)
	if err != nil {
		return "", err
	}
	return RoundTrip(data)
}
