/*
Package lr holds a parsing-table artifact and makes its rows addressable
by symbol rather than by raw index.

This package does not build grammars or compute LALR(1) tables — table
construction is explicitly out of scope (tables arrive pre-built, as a
JSON artifact produced by an external generator). What it does provide
is the Table Accessor: a small set of types for loading that artifact
and looking up shift/reduce/jump entries by the caller's own symbol IDs
instead of by the dense integer indices the artifact stores them under.

Loading a table artifact

    tables, err := lr.LoadFile("grammar.tables.json")
    if err == nil {
        // tables.Infos carries free-form provenance text from the
        // generator, when present
    }

Table is a thin wrapper over a dense integer matrix (see lr/sparse) plus
a "no value" sentinel for empty cells. Tables groups the three matrices
(Shift, Reduce, Jump) a parser needs, together with the side tables that
describe each rule's right-hand-side length and left-hand-side symbol.

Symbol lookup

Terminals, non-terminals and semantic rules each get their own
IndexTable: a bijection between the caller's lalr1.ID values and the
artifact's dense row/column indices.

    row, err := tables.TerminalIndex(someID)
    if err == nil {
        action := tables.Shift.Get(state, row)
        if action != tables.Shift.NullValue() {
            // shift is legal for this (state, terminal) pair
        }
    }

IndexTable resolves this by a map lookup rather than a linear scan over
the artifact's index tuples, which is the preferred shape for tables
with more than a handful of symbols.

BSD License

Copyright (c) 2017–2020, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package lr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}
