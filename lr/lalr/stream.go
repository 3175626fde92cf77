package lalr

import "github.com/go-lalr1/lalr1"

// TokenRecord is one element of the input token sequence: a terminal ID
// and its optional semantic value. The final record's ID must equal the
// tables' END terminal; what happens if it is missing is unspecified.
type TokenRecord struct {
	ID    lalr1.ID
	Value interface{}
}

// Stream is a sequential, index-based view over a finite token sequence.
// It performs no I/O of its own; advancing past the last record is an
// error rather than a silently repeated END.
type Stream struct {
	toks []TokenRecord
	pos  int
}

// NewStream wraps a token sequence for sequential lookahead.
func NewStream(toks []TokenRecord) *Stream {
	return &Stream{toks: toks}
}

// Advance returns the next token record, or an *EndOfInputError once the
// sequence is exhausted.
func (s *Stream) Advance() (TokenRecord, error) {
	if s.pos >= len(s.toks) {
		return TokenRecord{}, &EndOfInputError{}
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

// Pos returns the number of records consumed so far.
func (s *Stream) Pos() int { return s.pos }
