package rasc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr"
)

// A minimal three-state table. Grammar: S -> id
//
//	state 0: shift id -> state 1; jump on S -> state 2
//	state 1: reduce S->id on '$'
//	state 2: accept on '$'
const nv = -2147483648
const acc = -1

func tinyTables() *lr.Tables {
	idTerm := lalr1.IntID(0)
	endTerm := lalr1.IntID(-1)
	nontermS := lalr1.IntID(100)
	rule0 := lalr1.IntID(1000)

	shiftRows := [][]int32{
		{1, nv},
		{nv, nv},
		{nv, nv},
	}
	reduceRows := [][]int32{
		{nv, nv},
		{nv, 0},
		{nv, acc},
	}
	jumpRows := [][]int32{
		{2},
		{nv},
		{nv},
	}

	terms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: idTerm, Index: 0, Name: "id"},
		{ID: endTerm, Index: 1, Name: "$"},
	})
	nonterms := lr.NewIndexTable([]lr.IndexEntry{
		{ID: nontermS, Index: 0, Name: "S"},
	})
	rules := lr.NewIndexTable([]lr.IndexEntry{
		{ID: rule0, Index: 0, Name: "S->id"},
	})

	return &lr.Tables{
		Shift:        lr.NewTable(shiftRows, nv),
		Reduce:       lr.NewTable(reduceRows, nv),
		Jump:         lr.NewTable(jumpRows, nv),
		Terminals:    terms,
		Nonterminals: nonterms,
		SemanticIdx:  rules,
		NumRHS:       []int{1},
		LHS:          []int{0},

		PartialsRuleTerm:        lr.NewTable(nil, nv),
		PartialsRuleNonterm:     lr.NewTable(nil, nv),
		PartialsMatchLenTerm:    lr.NewTable(nil, nv),
		PartialsMatchLenNonterm: lr.NewTable(nil, nv),
		PartialsLHSNonterm:      lr.NewTable(nil, nv),

		Consts: lr.Consts{Accept: acc, Err: nv, End: endTerm, Start: 0},
		Infos:  "tiny fixture: S -> id",
	}
}

func TestGenerateProducesExpectedStructure(t *testing.T) {
	g := New(tinyTables(), "tinyparser")
	var buf bytes.Buffer
	if err := g.Generate(&buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"package tinyparser",
		"Code generated by lalr1/lr/rasc",
		"Table fingerprint:",
		"func (p *Parser) state0() error {",
		"func (p *Parser) state1() error {",
		"func (p *Parser) state2() error {",
		"type InvalidTransitionError struct {",
		"func (p *Parser) applyRule(",
		"func (p *Parser) applyPartial(",
		"func NewParser(",
		"func (p *Parser) Parse(",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected generated source to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGenerateState0EmitsShiftAndDispatch(t *testing.T) {
	g := New(tinyTables(), "tinyparser")
	var buf bytes.Buffer
	if err := g.Generate(&buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "lalr1.IntID(0)") {
		t.Fatalf("expected a literal for the id terminal, got:\n%s", out)
	}
	if !strings.Contains(out, "nextState = p.state1") {
		t.Fatalf("expected state0 to shift into state1, got:\n%s", out)
	}
	if !strings.Contains(out, "InvalidTransitionError{State: 0") {
		t.Fatalf("expected a default InvalidTransitionError branch in state0, got:\n%s", out)
	}
}

func TestGenerateEmitsReduceAndAccept(t *testing.T) {
	g := New(tinyTables(), "tinyparser")
	var buf bytes.Buffer
	if err := g.Generate(&buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "lalr1.IntID(1000)") {
		t.Fatalf("expected a literal for the S->id rule, got:\n%s", out)
	}
	if !strings.Contains(out, "p.accepted = true") {
		t.Fatalf("expected an accept branch, got:\n%s", out)
	}
}

func TestFingerprintIsStableAcrossRuns(t *testing.T) {
	g := New(tinyTables(), "tinyparser")
	var first, second bytes.Buffer
	if err := g.Generate(&first); err != nil {
		t.Fatalf("Generate (first): %v", err)
	}
	if err := g.Generate(&second); err != nil {
		t.Fatalf("Generate (second): %v", err)
	}
	if first.String() != second.String() {
		t.Fatal("expected generating from the same tables twice to produce identical source")
	}
}
