/*
Package lalr1 is the root of an LALR(1) parsing toolbox.

lalr1 drives a table-driven bottom-up parse from a precomputed LALR(1)
parsing-table artifact (shift/reduce/goto tables, produced by an external
table-generation tool) and invokes caller-supplied semantic actions to
build a value from a token stream. It additionally supports an incremental
("partial-reduction") mode, in which semantic actions may run on prefixes
of a production before that production is fully reduced — useful for
actions that need to take effect before the rest of the right-hand side
has been parsed (e.g. binding a variable before an expression that uses
it).

Package structure is as follows:

■ lr: table types, the symbol/rule index accessor and the JSON table
artifact format consumed by the runtime.

■ lr/lalr: the table-driven parser (Parser Core) together with the
partial-reduction bookkeeping (Partial-Reduction Engine).

■ lr/rasc: the recursive-ascent code generator, translating a table
artifact into a state-machine parser behaviorally equivalent to lr/lalr.

■ lr/scanner: a small scanner toolbox used by the example front-ends to
turn text into a token stream; the core itself never reads source text.

■ runtime: a symbol table / scope stack used by the example front-ends for
variable bindings.

■ examples/expr, examples/diff: example front-ends (an expression
evaluator and a differentiating expression evaluator) that plug semantic
actions into the core.

The base package contains data types used throughout the other packages,
most notably the opaque symbol identifier type used by parsing tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package lalr1
