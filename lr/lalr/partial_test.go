package lalr

import (
	"testing"

	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr"
)

// A small grammar exercising the partial-reduction engine, modeled after
// a variable-binding-before-use front end:
//
//	0: S -> A
//	1: A -> id '=' T ',' T
//	2: T -> id
//	3: T -> num
//
// A partial action fires right after the first T is reduced and jumped
// (state 4 -> state 5), seeing the prefix [id, '=', T]. With partials
// enabled, that action can bind the identifier's value before the second
// T is parsed; with partials disabled, the rule's action runs only at the
// full reduction, after the second T has been reduced, and that call binds
// nothing, so a second T that refers to the same identifier observes it
// unbound.
//
// Terminal columns: id, '=', ',', num, '$'. Nonterminal columns: S, A, T.

var (
	diffID    = lalr1.IntID(0)
	diffAssn  = lalr1.TextID("=")
	diffComma = lalr1.TextID(",")
	diffNum   = lalr1.IntID(1)
	diffEnd   = lalr1.IntID(-1)

	diffS = lalr1.IntID(200)
	diffA = lalr1.IntID(201)
	diffT = lalr1.IntID(202)
)

func diffRuleID(i int) lalr1.ID { return lalr1.IntID(int64(2000 + i)) }

func diffTables() *lr.Tables {
	shiftRows := [][]int32{
		{3, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv},
		{nv, 4, nv, nv, nv},
		{6, nv, nv, 7, nv},
		{nv, nv, 8, nv, nv},
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv},
		{6, nv, nv, 7, nv},
		{nv, nv, nv, nv, nv},
	}
	reduceRows := [][]int32{
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, acc},
		{nv, nv, nv, nv, 0},
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, nv},
		{nv, nv, 2, nv, 2},
		{nv, nv, 3, nv, 3},
		{nv, nv, nv, nv, nv},
		{nv, nv, nv, nv, 1},
	}
	jumpRows := [][]int32{
		{1, 2, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, 5},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, 9},
		{nv, nv, nv},
	}
	partialsRuleNontermRows := [][]int32{
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, 1},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
	}
	partialsMatchLenNontermRows := [][]int32{
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, 3},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
	}
	partialsLHSNontermRows := [][]int32{
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, 2},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
		{nv, nv, nv},
	}

	terms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: diffID, Index: 0, Name: "id"},
		{ID: diffAssn, Index: 1, Name: "="},
		{ID: diffComma, Index: 2, Name: ","},
		{ID: diffNum, Index: 3, Name: "num"},
		{ID: diffEnd, Index: 4, Name: "$"},
	})
	nonterms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: diffS, Index: 0, Name: "S"},
		{ID: diffA, Index: 1, Name: "A"},
		{ID: diffT, Index: 2, Name: "T"},
	})
	rules := lr.NewIndexTable([]lr.IndexEntry{
		{ID: diffRuleID(0), Index: 0, Name: "S->A"},
		{ID: diffRuleID(1), Index: 1, Name: "A->id=T,T"},
		{ID: diffRuleID(2), Index: 2, Name: "T->id"},
		{ID: diffRuleID(3), Index: 3, Name: "T->num"},
	})

	return &lr.Tables{
		Shift:        lr.NewTable(shiftRows, nv),
		Reduce:       lr.NewTable(reduceRows, nv),
		Jump:         lr.NewTable(jumpRows, nv),
		Terminals:    terms,
		Nonterminals: nonterms,
		SemanticIdx:  rules,
		NumRHS:       []int{1, 5, 1, 1},
		LHS:          []int{0, 1, 2, 2},

		PartialsRuleTerm:        lr.NewTable(nil, nv),
		PartialsMatchLenTerm:    lr.NewTable(nil, nv),
		PartialsRuleNonterm:     lr.NewTable(partialsRuleNontermRows, nv),
		PartialsMatchLenNonterm: lr.NewTable(partialsMatchLenNontermRows, nv),
		PartialsLHSNonterm:      lr.NewTable(partialsLHSNontermRows, nv),

		Consts: lr.Consts{Accept: acc, Err: nv, End: diffEnd, Start: 0},
		Infos:  "binding-before-use grammar fixture",
	}
}

func diffSemantics(symtab map[string]int) Semantics {
	return Semantics{
		diffRuleID(0): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return args[0].Value, nil
		},
		diffRuleID(1): func(args []Symbol, completed bool, _ interface{}) (interface{}, error) {
			if completed {
				return args[4].Value, nil
			}
			if len(args) == 3 {
				name := args[0].Value.(string)
				val := args[2].Value.(int)
				symtab[name] = val
			}
			return nil, nil
		},
		diffRuleID(2): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			name := args[0].Value.(string)
			if v, ok := symtab[name]; ok {
				return v, nil
			}
			return -1, nil
		},
		diffRuleID(3): func(args []Symbol, _ bool, _ interface{}) (interface{}, error) {
			return args[0].Value, nil
		},
	}
}

func diffTokens() []TokenRecord {
	return []TokenRecord{
		{ID: diffID, Value: "x"},
		{ID: diffAssn},
		{ID: diffNum, Value: 5},
		{ID: diffComma},
		{ID: diffID, Value: "x"},
		{ID: diffEnd},
	}
}

func TestPartialBindingVisibleBeforeSecondUse(t *testing.T) {
	symtab := map[string]int{}
	p := New(diffTables(), diffSemantics(symtab), WithPartials(true))
	result, err := p.Parse(diffTokens())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Value.(int) != 5 {
		t.Fatalf("expected the bound value 5, got %v", result.Value)
	}
	if symtab["x"] != 5 {
		t.Fatalf("expected x bound to 5, got %v", symtab["x"])
	}
}

func TestWithoutPartialsBindingIsTooLate(t *testing.T) {
	symtab := map[string]int{}
	p := New(diffTables(), diffSemantics(symtab), WithPartials(false))
	result, err := p.Parse(diffTokens())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result.Value.(int) != -1 {
		t.Fatalf("expected the unbound sentinel -1, got %v", result.Value)
	}
}

func TestHandlesAreMonotonicWithinAParse(t *testing.T) {
	symtab := map[string]int{}
	p := New(diffTables(), diffSemantics(symtab), WithPartials(true))
	if _, err := p.Parse(diffTokens()); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// A single partial instance was created (and later popped at the full
	// reduce), so exactly one handle should have been handed out.
	if p.nextHandle != 1 {
		t.Fatalf("expected exactly one handle to have been assigned, got next=%d", p.nextHandle)
	}
	for ruleID, stack := range p.active {
		if len(stack) != 0 {
			t.Fatalf("expected no dangling active-rule instances, found %d for rule %s", len(stack), ruleID)
		}
	}
}
