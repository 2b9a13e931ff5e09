// Package strategy turns declarative rollup rules into executable target
// traversals.
//
// A strategy is a small text of rules, one per line:
//
//	<sourceTypes> <rel> <destTypes> accept:<policy> [src:'''<pattern>'''] [dest:'''<pattern>''']
//
// Type specs are concrete tags or @-group names expanded by the target
// package. Relation symbols are < (subset_of), > (superset_of),
// ~ (overlaps_with), = (equivalent_to), * (any_link), and . (self_link).
// Acceptance symbols are * (always), - (never), ^ (at_start), and
// $ (at_end). Lines starting with # and blank lines are ignored; a
// trailing # comment is allowed after the clauses.
//
// Each rule expands into the cross product of its resolved source and
// destination types, one edge requirement per pair. Later lines overwrite
// the acceptance policy of an identical requirement. Parsing is atomic:
// any bad line fails the whole strategy with ErrParse.
//
// An Evaluator runs a parsed strategy against the graph engine and filters
// the reached nodes by acceptance policy. The Registry resolves a strategy
// reference - the reserved name "@null", a built-in name, a *.strat file
// path, or a registered implementation - into an Evaluator.
package strategy
