// Package condition parses the boolean expression strings embedded in
// design-rule constraints: property comparisons, function calls and
// boolean connectives over the rule's A/B item bindings.
//
//	cond := condition.New(`A.NetClass == 'HV' && !A.insideArea('Shield*')`)
//	expr, err := cond.Expr() // structured tree, built lazily
//
// The original string is kept verbatim for round-tripping. The tree is
// only ever inspected, never evaluated; evaluation against real board
// geometry is the host tool's job.
package condition
