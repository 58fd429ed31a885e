package schema

// Defaults carries the configuration "create new" constructors stamp
// into freshly built documents. It is a value, passed explicitly, so
// no ambient state leaks into entity construction.
type Defaults struct {
	// Version is the file format version date token (YYYYMMDD).
	Version int64
	// Generator names the program writing the file.
	Generator string
}

// Generator recorded by documents this library creates from scratch.
const LibraryGenerator = "kicad-sexp"
