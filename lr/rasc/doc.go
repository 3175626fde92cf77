/*
Package rasc translates an LALR(1) parsing-table artifact into the source
of a recursive-ascent parser: one Go function per LR state, calling each
other directly instead of interpreting the shift/reduce/jump tables at run
time. The generated parser exposes the same public contract as package
lr/lalr and is built to produce the identical sequence of semantic-action
calls for any input the table-driven parser accepts.

The generated source imports only lr/lalr and the root lalr1 package (for
the shared Symbol, TokenRecord, Semantics and ID types); it does not
depend on package lr or on rasc itself at run time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package rasc
