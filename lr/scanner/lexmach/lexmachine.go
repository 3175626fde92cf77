package lexmach

import (
	"strings"

	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lalr1.scanner.lexmach'.
func tracer() tracing.Trace {
	return tracing.Select("lalr1.scanner.lexmach")
}

// Adapter wraps a compiled lexmachine DFA, ready to produce per-input
// Scanners.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// NewAdapter builds an Adapter. init installs the caller's own lexer
// rules (regular expressions with their actions); literals and keywords
// are then installed as single-token matches, tagged with the
// lexmachine-internal integer ID looked up by name in tokenIDs.
//
// NewAdapter fails if the DFA does not compile.
func NewAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIDs map[string]int) (*Adapter, error) {
	a := &Adapter{Lexer: lexmachine.NewLexer()}
	init(a.Lexer)
	for _, lit := range literals {
		pattern := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		a.Lexer.Add([]byte(pattern), MakeToken(lit, tokenIDs[lit]))
	}
	for _, kw := range keywords {
		a.Lexer.Add([]byte(strings.ToLower(kw)), MakeToken(kw, tokenIDs[kw]))
	}
	if err := a.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return a, nil
}

// Scanner creates a Tokenizer for one input sequence.
func (a *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, errHandler: logError}, nil
}

// Scanner is a Tokenizer backed by a compiled lexmachine DFA.
type Scanner struct {
	scanner    *lexmachine.Scanner
	errHandler func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	s.errHandler = h
}

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. Unconsumed-input errors
// are reported to the error handler and skipped over, matching
// lexmachine's own recovery convention.
func (s *Scanner) NextToken() lalr1.Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		s.errHandler(err)
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", lalr1.Span{})
	}
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		lalr1.TokType(token.Type),
		string(token.Lexeme),
		lalr1.Span{uint64(token.StartColumn), uint64(token.EndColumn)},
	)
}

// Skip is a pre-defined lexmachine action which ignores the scanned match
// (for whitespace and comment rules).
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined lexmachine action which wraps a scanned match
// into a token carrying the given integer ID.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
