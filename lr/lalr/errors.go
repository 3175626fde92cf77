package lalr

import (
	"fmt"

	"github.com/go-lalr1/lalr1"
)

// SyntaxError is raised when the lookahead has neither a shift nor a
// reduce action at the current state.
type SyntaxError struct {
	State     int
	Lookahead lalr1.ID
	Pos       int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lalr: syntax error in state %d on lookahead %s at input position %d", e.State, e.Lookahead, e.Pos)
}

// ShiftReduceConflictError is raised when both a shift and a reduce action
// (including an accept) are present for the same state and lookahead. This always
// indicates a bad or non-LALR(1) table; the runtime never resolves it.
type ShiftReduceConflictError struct {
	State     int
	Lookahead lalr1.ID
}

func (e *ShiftReduceConflictError) Error() string {
	return fmt.Sprintf("lalr: shift/reduce conflict in state %d on lookahead %s", e.State, e.Lookahead)
}

// InvalidGotoError is raised when the jump table has no entry for a
// nonterminal after a reduce.
type InvalidGotoError struct {
	State       int
	Nonterminal lalr1.ID
}

func (e *InvalidGotoError) Error() string {
	return fmt.Sprintf("lalr: no jump entry in state %d for nonterminal %s", e.State, e.Nonterminal)
}

// SemanticError wraps an error returned by a user-supplied semantic
// action. It is propagated from Parse without modification to the
// parser's internal state.
type SemanticError struct {
	RuleID lalr1.ID
	Err    error
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("lalr: semantic action for rule %s failed: %v", e.RuleID, e.Err)
}

func (e *SemanticError) Unwrap() error { return e.Err }

// EndOfInputError is raised when the parser attempts to read a token past
// the END record.
type EndOfInputError struct{}

func (e *EndOfInputError) Error() string { return "lalr: attempt to advance past end of input" }
