package debug

import (
	"fmt"
	"os"
)

// Logf writes to stderr. Gate calls behind one of the switch
// functions; this does no filtering of its own.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
