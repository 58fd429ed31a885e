// Package kind enumerates the supported KiCad file kinds and their
// root keywords and file suffixes.
package kind

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Board Kind = iota
	Schematic
	Footprint
	SymbolLib
	Worksheet
	DesignRules
	FpLibTable
	SymLibTable
)

var ErrBadKind = errors.New("bad file kind")

// FromRoot maps a document's root keyword to its kind. The legacy
// "module" keyword still opens footprint files written by old hosts.
func FromRoot(keyword string) (Kind, error) {
	k, ok := map[string]Kind{
		"kicad_pcb":        Board,
		"kicad_sch":        Schematic,
		"footprint":        Footprint,
		"module":           Footprint,
		"kicad_symbol_lib": SymbolLib,
		"kicad_wks":        Worksheet,
		"fp_lib_table":     FpLibTable,
		"sym_lib_table":    SymLibTable,
	}[keyword]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: root keyword %q", ErrBadKind, keyword)
}

// RootKeyword returns the keyword a freshly written document of this
// kind opens with. DesignRules files have no single root expression.
func (k Kind) RootKeyword() string {
	switch k {
	case Board:
		return "kicad_pcb"
	case Schematic:
		return "kicad_sch"
	case Footprint:
		return "footprint"
	case SymbolLib:
		return "kicad_symbol_lib"
	case Worksheet:
		return "kicad_wks"
	case FpLibTable:
		return "fp_lib_table"
	case SymLibTable:
		return "sym_lib_table"
	default:
		return ""
	}
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Board:
		return []byte("board"), nil
	case Schematic:
		return []byte("schematic"), nil
	case Footprint:
		return []byte("footprint"), nil
	case SymbolLib:
		return []byte("symbol-lib"), nil
	case Worksheet:
		return []byte("worksheet"), nil
	case DesignRules:
		return []byte("design-rules"), nil
	case FpLibTable:
		return []byte("fp-lib-table"), nil
	case SymLibTable:
		return []byte("sym-lib-table"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, c := range AllKinds() {
		t, _ := c.MarshalText()
		if string(t) == string(d) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrBadKind, string(d))
}

// Suffix returns the file extension for this kind (including the dot).
// Library tables have fixed full names instead of suffixes.
func (k Kind) Suffix() string {
	switch k {
	case Board:
		return ".kicad_pcb"
	case Schematic:
		return ".kicad_sch"
	case Footprint:
		return ".kicad_mod"
	case SymbolLib:
		return ".kicad_sym"
	case Worksheet:
		return ".kicad_wks"
	case DesignRules:
		return ".kicad_dru"
	default:
		return ""
	}
}

// AllKinds returns all supported kinds.
func AllKinds() []Kind {
	return []Kind{Board, Schematic, Footprint, SymbolLib, Worksheet, DesignRules, FpLibTable, SymLibTable}
}
