/*
Package lexmach adapts timtadh/lexmachine's DFA-driven scanner generator
to the scanner.Tokenizer interface, for front ends that need more than
text/scanner's fixed Go-like lexical rules (custom keyword sets, literal
multi-character operators, user-defined token classes).

Lexmachine has to be initialized by providing keywords and regular
expressions; package lexmach is opinionated about how that setup happens.
Clients needing more liberty should wrap lexmachine themselves.

	var literals []string    // tokens representing literal strings
	var keywords []string    // keyword tokens
	var tokenIDs map[string]int

	init := func(lexer *lexmachine.Lexer) {
		// install the regular expressions for this grammar's tokens;
		// lexmach.Skip and lexmach.MakeToken are pre-defined actions
	}

	lm, err := lexmach.NewAdapter(init, literals, keywords, tokenIDs)
	if err != nil {
		// DFA failed to compile
	}

A Scanner is instantiated per input sequence and implements
scanner.Tokenizer:

	s, err := lm.Scanner("input string to tokenize")
	for {
		token := s.NextToken()
		if token.TokType() == scanner.EOF {
			break
		}
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 The lalr1 Authors

*/
package lexmach
