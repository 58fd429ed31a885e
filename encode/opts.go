package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting depth.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting depth, for emitting a fragment that
// sits inside an already-indented parent.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Compact marks additional keywords whose subtree renders on one line.
func Compact(keywords ...string) EncodeOption {
	return func(es *EncState) {
		m := make(map[string]bool, len(es.compact)+len(keywords))
		for k := range es.compact {
			m[k] = true
		}
		for _, k := range keywords {
			m[k] = true
		}
		es.compact = m
	}
}

// Block marks additional atom-only keywords that render one child per
// line.
func Block(keywords ...string) EncodeOption {
	return func(es *EncState) {
		m := make(map[string]bool, len(es.block)+len(keywords))
		for k := range es.block {
			m[k] = true
		}
		for _, k := range keywords {
			m[k] = true
		}
		es.block = m
	}
}
