package lalr

import (
	"testing"

	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr"
)

// The classic expression grammar, used throughout the package tests:
//
//	0: E -> E '+' T
//	1: E -> T
//	2: T -> T '*' F
//	3: T -> F
//	4: F -> '(' E ')'
//	5: F -> id
//
// Terminal columns: id, '+', '*', '(', ')', '$' (end). Nonterminal
// columns: E, T, F. The table below is the canonical 12-state SLR(1)
// automaton for this grammar.

const nv = -2147483648 // lr sparse.DefaultNullValue, repeated here to keep the fixture self-contained
const acc = -1

var (
	idTerm  = lalr1.IntID(0)
	plus    = lalr1.TextID("+")
	star    = lalr1.TextID("*")
	lparen  = lalr1.TextID("(")
	rparen  = lalr1.TextID(")")
	endTerm = lalr1.IntID(-1)

	nontermE = lalr1.IntID(100)
	nontermT = lalr1.IntID(101)
	nontermF = lalr1.IntID(102)
)

func ruleID(i int) lalr1.ID { return lalr1.IntID(int64(1000 + i)) }

func arithTables() *lr.Tables {
	shiftRows := [][]int32{
		{5, nv, nv, 4, nv, nv},
		{nv, 6, nv, nv, nv, nv},
		{nv, nv, 7, nv, nv, nv},
		{nv, nv, nv, nv, nv, nv},
		{5, nv, nv, 4, nv, nv},
		{nv, nv, nv, nv, nv, nv},
		{5, nv, nv, 4, nv, nv},
		{5, nv, nv, 4, nv, nv},
		{nv, 6, nv, nv, 11, nv},
		{nv, nv, 7, nv, nv, nv},
		{nv, nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv, nv},
	}
	reduceRows := [][]int32{
		{nv, nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv, acc},
		{nv, 1, nv, nv, 1, 1},
		{nv, 3, 3, nv, 3, 3},
		{nv, nv, nv, nv, nv, nv},
		{nv, 5, 5, nv, 5, 5},
		{nv, nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv, nv},
		{nv, 0, nv, nv, 0, 0},
		{nv, 2, 2, nv, 2, 2},
		{nv, 4, 4, nv, 4, 4},
	}
	jumpRows := [][]int32{
		{1, 2, 3},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{8, 2, 3},
		{nv, nv, nv},
		{nv, 9, 3},
		{nv, nv, 10},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
	}

	terms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: idTerm, Index: 0, Name: "id"},
		{ID: plus, Index: 1, Name: "+"},
		{ID: star, Index: 2, Name: "*"},
		{ID: lparen, Index: 3, Name: "("},
		{ID: rparen, Index: 4, Name: ")"},
		{ID: endTerm, Index: 5, Name: "$"},
	})
	nonterms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: nontermE, Index: 0, Name: "E"},
		{ID: nontermT, Index: 1, Name: "T"},
		{ID: nontermF, Index: 2, Name: "F"},
	})
	rules := lr.NewIndexTable([]lr.IndexEntry{
		{ID: ruleID(0), Index: 0, Name: "E->E+T"},
		{ID: ruleID(1), Index: 1, Name: "E->T"},
		{ID: ruleID(2), Index: 2, Name: "T->T*F"},
		{ID: ruleID(3), Index: 3, Name: "T->F"},
		{ID: ruleID(4), Index: 4, Name: "F->(E)"},
		{ID: ruleID(5), Index: 5, Name: "F->id"},
	})

	return &lr.Tables{
		Shift:        lr.NewTable(shiftRows, nv),
		Reduce:       lr.NewTable(reduceRows, nv),
		Jump:         lr.NewTable(jumpRows, nv),
		Terminals:    terms,
		Nonterminals: nonterms,
		SemanticIdx:  rules,
		NumRHS:       []int{3, 1, 3, 1, 3, 1},
		LHS:          []int{0, 0, 1, 1, 2, 2},

		PartialsRuleTerm:        lr.NewTable(nil, nv),
		PartialsRuleNonterm:     lr.NewTable(nil, nv),
		PartialsMatchLenTerm:    lr.NewTable(nil, nv),
		PartialsMatchLenNonterm: lr.NewTable(nil, nv),
		PartialsLHSNonterm:      lr.NewTable(nil, nv),

		Consts: lr.Consts{Accept: acc, Err: nv, End: endTerm, Start: 0},
		Infos:  "arithmetic grammar fixture",
	}
}

func arithSemantics() Semantics {
	asInt := func(s Symbol) int { return s.Value.(int) }
	return Semantics{
		ruleID(0): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[0]) + asInt(args[2]), nil
		},
		ruleID(1): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[0]), nil
		},
		ruleID(2): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[0]) * asInt(args[2]), nil
		},
		ruleID(3): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[0]), nil
		},
		ruleID(4): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[1]), nil
		},
		ruleID(5): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return asInt(args[0]), nil
		},
	}
}

func num(v int) TokenRecord      { return TokenRecord{ID: idTerm, Value: v} }
func term(id lalr1.ID) TokenRecord { return TokenRecord{ID: id} }
func end() TokenRecord            { return TokenRecord{ID: endTerm} }

func TestArithPrecedence(t *testing.T) {
	p := New(arithTables(), arithSemantics())
	tokens := []TokenRecord{num(1), term(plus), num(2), term(star), num(3), end()}
	result, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result == nil || result.Value.(int) != 7 {
		t.Fatalf("expected 7, got %+v", result)
	}
}

func TestArithParens(t *testing.T) {
	p := New(arithTables(), arithSemantics())
	tokens := []TokenRecord{term(lparen), num(1), term(plus), num(2), term(rparen), term(star), num(3), end()}
	result, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result == nil || result.Value.(int) != 9 {
		t.Fatalf("expected 9, got %+v", result)
	}
}

func TestArithSyntaxError(t *testing.T) {
	p := New(arithTables(), arithSemantics())
	tokens := []TokenRecord{num(1), term(plus), end()}
	_, err := p.Parse(tokens)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
}

func TestReusedParserIsIdempotent(t *testing.T) {
	p := New(arithTables(), arithSemantics())
	tokens := []TokenRecord{num(4), term(plus), num(5), end()}
	first, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	second, err := p.Parse(tokens)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if first.Value.(int) != second.Value.(int) {
		t.Fatalf("expected idempotent re-parse, got %v then %v", first.Value, second.Value)
	}
}

func TestStackInvariantAtEveryStep(t *testing.T) {
	p := New(arithTables(), arithSemantics())
	tokens := []TokenRecord{term(lparen), num(1), term(plus), num(2), term(rparen), term(star), num(3), end()}
	p.reset(tokens)
	if err := p.advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	for {
		if len(p.stateStack) != len(p.symStack)+1 {
			t.Fatalf("invariant broken: states=%d symbols=%d", len(p.stateStack), len(p.symStack))
		}
		accepted, _, err := p.step()
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if accepted {
			break
		}
	}
}
