/*
Package lr implements the table accessor for LALR(1) parsing tables: the
pure, stateless mapping between the caller's symbol alphabet (terminal,
nonterminal and semantic-rule IDs) and the dense internal row/column indices
used by the shift, reduce, jump and partial-reduction tables.

Computing those tables — closure construction, lookahead propagation,
conflict resolution — is explicitly out of scope: package lr only consumes
a table artifact, typically produced by an external LALR(1) table generator
and serialized as JSON (see Load). Package lr/lalr drives a parse using
these tables; package lr/rasc compiles them into a recursive-ascent parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package lr

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr/sparse"
)

// Consts holds the sentinel values embedded in a table artifact. Accept and
// Err are cell values found in the reduce table in addition to real rule
// indices; End and Start are a terminal ID and a state index, respectively.
type Consts struct {
	Accept int32    `json:"acc"`
	Err    int32    `json:"err"`
	End    lalr1.ID `json:"end"`
	Start  int      `json:"start"`
}

// Table is a dense 2-D array of signed integers, as produced by a table
// generator and addressed by (state, column) using the internal indices
// handed out by an IndexTable. A cell equal to the table's null value means
// "no action".
type Table struct {
	mat *sparse.IntMatrix
}

// NewTable wraps a dense row-major array into a Table. errValue marks
// "no action" cells.
func NewTable(rows [][]int32, errValue int32) *Table {
	return &Table{mat: sparse.FromDense(rows, errValue)}
}

// Get returns the value at (row, col), or the table's null value if unset or
// out of range.
func (t *Table) Get(row, col int) int32 {
	if t == nil || t.mat == nil {
		return 0
	}
	return t.mat.Value(row, col)
}

// NullValue returns the sentinel meaning "no entry".
func (t *Table) NullValue() int32 {
	if t == nil || t.mat == nil {
		return 0
	}
	return t.mat.NullValue()
}

// Rows returns the row count the table was built with.
func (t *Table) Rows() int {
	if t == nil || t.mat == nil {
		return 0
	}
	return t.mat.M()
}

// rawTable mirrors the wire format of a single table: {"elems": [[int]]}.
type rawTable struct {
	Elems [][]int32 `json:"elems"`
}

// IndexEntry is one row of an index table: an external symbol ID, its dense
// internal index, and a human-readable name (used for debugging and by the
// recursive-ascent generator).
type IndexEntry struct {
	ID    lalr1.ID
	Index int
	Name  string
}

// IndexTable maps between external symbol IDs (terminal, nonterminal or
// semantic-rule) and the dense internal indices used by the parsing tables.
// Tables are treated as authoritative: looking up an ID or index absent from
// the table is a MissingSymbol error, never a best-effort fallback.
//
// The reference implementation performs this lookup via linear scan, since
// grammar alphabets are small; we use a map instead, which the design
// explicitly calls out as an equivalent, preferred implementation.
type IndexTable struct {
	entries []IndexEntry
	byID    map[lalr1.ID]int
	byIndex map[int]int
}

// NewIndexTable builds an IndexTable from explicit entries. Used when
// assembling a Tables value directly (e.g. in tests) rather than decoding
// one from a JSON artifact.
func NewIndexTable(entries []IndexEntry) IndexTable {
	return newIndexTable(entries)
}

func newIndexTable(entries []IndexEntry) IndexTable {
	it := IndexTable{
		entries: entries,
		byID:    make(map[lalr1.ID]int, len(entries)),
		byIndex: make(map[int]int, len(entries)),
	}
	for i, e := range entries {
		it.byID[e.ID] = i
		it.byIndex[e.Index] = i
	}
	return it
}

// Index returns the dense internal index for an external ID.
func (t IndexTable) Index(id lalr1.ID) (int, error) {
	if i, ok := t.byID[id]; ok {
		return t.entries[i].Index, nil
	}
	return 0, &MissingSymbolError{ID: id}
}

// ID returns the external ID for a dense internal index.
func (t IndexTable) ID(index int) (lalr1.ID, error) {
	if i, ok := t.byIndex[index]; ok {
		return t.entries[i].ID, nil
	}
	return lalr1.ID{}, &MissingSymbolError{Index: index, byIndex: true}
}

// Name returns the human-readable name for a dense internal index, or ""
// if the index is unknown.
func (t IndexTable) Name(index int) string {
	if i, ok := t.byIndex[index]; ok {
		return t.entries[i].Name
	}
	return ""
}

// Len returns the number of entries in the index table.
func (t IndexTable) Len() int { return len(t.entries) }

// Entries returns a copy of the index table's entries, in the order they
// were built. Used by the recursive-ascent generator to enumerate a
// state's terminals/nonterminals at code-generation time.
func (t IndexTable) Entries() []IndexEntry {
	return append([]IndexEntry(nil), t.entries...)
}

// Tables is the full LALR(1) parsing-table artifact: the shift, reduce and
// jump tables, the symbol index tables, rule metadata, and the optional
// partial-reduction tables. Tables are immutable once loaded and may be
// shared across any number of concurrent parses.
type Tables struct {
	Shift  *Table
	Reduce *Table
	Jump   *Table

	Terminals    IndexTable
	Nonterminals IndexTable
	SemanticIdx  IndexTable

	// NumRHS[r] is the length of rule r's right-hand side.
	NumRHS []int
	// LHS[r] is the nonterminal index of rule r's left-hand side.
	LHS []int

	// Partial-reduction tables, parallel to Shift/Jump. A cell equal to
	// Consts.Err means no partial action applies at that site.
	PartialsRuleTerm        *Table
	PartialsRuleNonterm     *Table
	PartialsMatchLenTerm    *Table
	PartialsMatchLenNonterm *Table
	PartialsLHSNonterm      *Table

	Consts Consts
	Infos  string
}

// wireTables mirrors the JSON artifact format described by the external
// interface: dense 2-D int tables, 3-tuple index lists, and a consts block.
type wireTables struct {
	Shift  rawTable `json:"shift"`
	Reduce rawTable `json:"reduce"`
	Jump   rawTable `json:"jump"`

	TermIdx     json.RawMessage `json:"term_idx"`
	NontermIdx  json.RawMessage `json:"nonterm_idx"`
	SemanticIdx json.RawMessage `json:"semantic_idx"`

	NumRHSSyms []int `json:"num_rhs_syms"`
	LHSIdx     []int `json:"lhs_idx"`

	PartialsRuleTerm        rawTable `json:"partials_rule_term"`
	PartialsRuleNonterm     rawTable `json:"partials_rule_nonterm"`
	PartialsMatchLenTerm    rawTable `json:"partials_matchlen_term"`
	PartialsMatchLenNonterm rawTable `json:"partials_matchlen_nonterm"`
	PartialsLHSNonterm      rawTable `json:"partials_lhs_nonterm"`

	Consts Consts `json:"consts"`
	Infos  string `json:"infos"`
}

// UnmarshalJSON decodes a table artifact as described in the external
// interface: a top-level object with dense int tables, 3-tuple index lists
// ([id, index, name]) and a consts block giving the sentinel values.
func (tt *Tables) UnmarshalJSON(data []byte) error {
	var wire wireTables
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("lr: decoding table artifact: %w", err)
	}
	errVal := wire.Consts.Err

	terms, err := decodeIndexTuples(wire.TermIdx)
	if err != nil {
		return fmt.Errorf("lr: decoding term_idx: %w", err)
	}
	nonterms, err := decodeIndexTuples(wire.NontermIdx)
	if err != nil {
		return fmt.Errorf("lr: decoding nonterm_idx: %w", err)
	}
	semantics, err := decodeIndexTuples(wire.SemanticIdx)
	if err != nil {
		return fmt.Errorf("lr: decoding semantic_idx: %w", err)
	}

	tt.Shift = NewTable(wire.Shift.Elems, errVal)
	tt.Reduce = NewTable(wire.Reduce.Elems, errVal)
	tt.Jump = NewTable(wire.Jump.Elems, errVal)

	tt.Terminals = newIndexTable(terms)
	tt.Nonterminals = newIndexTable(nonterms)
	tt.SemanticIdx = newIndexTable(semantics)

	tt.NumRHS = wire.NumRHSSyms
	tt.LHS = wire.LHSIdx

	tt.PartialsRuleTerm = NewTable(wire.PartialsRuleTerm.Elems, errVal)
	tt.PartialsRuleNonterm = NewTable(wire.PartialsRuleNonterm.Elems, errVal)
	tt.PartialsMatchLenTerm = NewTable(wire.PartialsMatchLenTerm.Elems, errVal)
	tt.PartialsMatchLenNonterm = NewTable(wire.PartialsMatchLenNonterm.Elems, errVal)
	tt.PartialsLHSNonterm = NewTable(wire.PartialsLHSNonterm.Elems, errVal)

	tt.Consts = wire.Consts
	tt.Infos = wire.Infos
	return nil
}

// decodeIndexTuples decodes a list of [id, index, name] tuples into
// IndexEntry values. The first element may be a JSON number or string (see
// lalr1.ID); the other two are always a number and a string, respectively.
func decodeIndexTuples(raw json.RawMessage) ([]IndexEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var tuples [][]json.RawMessage
	if err := json.Unmarshal(raw, &tuples); err != nil {
		return nil, err
	}
	entries := make([]IndexEntry, 0, len(tuples))
	for n, tuple := range tuples {
		if len(tuple) != 3 {
			return nil, fmt.Errorf("entry %d: expected a 3-tuple, got %d elements", n, len(tuple))
		}
		var e IndexEntry
		if err := json.Unmarshal(tuple[0], &e.ID); err != nil {
			return nil, fmt.Errorf("entry %d: id: %w", n, err)
		}
		if err := json.Unmarshal(tuple[1], &e.Index); err != nil {
			return nil, fmt.Errorf("entry %d: index: %w", n, err)
		}
		if err := json.Unmarshal(tuple[2], &e.Name); err != nil {
			return nil, fmt.Errorf("entry %d: name: %w", n, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Load decodes a table artifact from r.
func Load(r io.Reader) (*Tables, error) {
	var tt Tables
	if err := json.NewDecoder(r).Decode(&tt); err != nil {
		return nil, err
	}
	return &tt, nil
}

// LoadFile decodes a table artifact from a JSON file on disk.
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// TerminalIndex returns the dense internal column index for a terminal ID.
func (tt *Tables) TerminalIndex(id lalr1.ID) (int, error) { return tt.Terminals.Index(id) }

// TerminalID returns the terminal ID for a dense internal column index.
func (tt *Tables) TerminalID(idx int) (lalr1.ID, error) { return tt.Terminals.ID(idx) }

// NonterminalIndex returns the dense internal column index for a
// nonterminal ID.
func (tt *Tables) NonterminalIndex(id lalr1.ID) (int, error) { return tt.Nonterminals.Index(id) }

// NonterminalID returns the nonterminal ID for a dense internal column
// index.
func (tt *Tables) NonterminalID(idx int) (lalr1.ID, error) { return tt.Nonterminals.ID(idx) }

// SemanticRuleIndex returns the dense internal rule index for a
// semantic-rule ID.
func (tt *Tables) SemanticRuleIndex(id lalr1.ID) (int, error) { return tt.SemanticIdx.Index(id) }

// SemanticRuleID returns the semantic-rule ID for a dense internal rule
// index.
func (tt *Tables) SemanticRuleID(idx int) (lalr1.ID, error) { return tt.SemanticIdx.ID(idx) }
