/*
Package lalr implements a table-driven LALR(1) parser: the bottom-up
shift/reduce driver, its symbol and state stacks, and the partial-reduction
("active-rule") bookkeeping that lets semantic actions fire on a rule's
prefix before the rule is fully reduced.

The driver consumes a *lr.Tables artifact; it never computes one. Given
tables, a token stream and a map of semantic actions keyed by rule ID, Parse
drives the parse to either an accepted value or the first parse error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package lalr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lalr1.lalr'.
func tracer() tracing.Trace {
	return tracing.Select("lalr1.lalr")
}
