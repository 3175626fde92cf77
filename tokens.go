package lalr1

import "fmt"

// TokType is a category type for a Token, as produced by a scanner. Concrete
// front-ends define their own constants; the core never interprets them
// directly — tables address terminals through ID, not TokType.
type TokType int

// Token is what a scanner (see package lr/scanner) hands to a front-end
// before it is translated into an lr/lalr.TokenRecord for the parser.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// Span captures a run of input positions [from, to) covered by a token.
type Span [2]uint64

// From returns the start of the span.
func (s Span) From() uint64 { return s[0] }

// To returns the end of the span.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of the span.
func (s Span) Len() uint64 { return s[1] - s[0] }

// IsNull reports whether the span is the zero value.
func (s Span) IsNull() bool { return s == Span{} }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
