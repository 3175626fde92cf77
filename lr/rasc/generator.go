package rasc

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/cnf/structhash"
	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr"
)

// Generator emits a recursive-ascent parser for a fixed table artifact.
type Generator struct {
	tables      *lr.Tables
	packageName string
}

// New builds a Generator for tables, emitting code into package
// packageName.
func New(tables *lr.Tables, packageName string) *Generator {
	return &Generator{tables: tables, packageName: packageName}
}

// Generate writes the full generated parser source to w.
func (g *Generator) Generate(w io.Writer) error {
	var buf bytes.Buffer
	pr := func(format string, args ...interface{}) { fmt.Fprintf(&buf, format+"\n", args...) }

	fingerprint, err := structhash.Hash(tableDigest(g.tables), 1)
	if err != nil {
		return fmt.Errorf("rasc: fingerprinting tables: %w", err)
	}

	pr("// Code generated by lalr1/lr/rasc from a parsing-table artifact. DO NOT EDIT.")
	pr("// Table fingerprint: %s", fingerprint)
	pr("")
	pr("package %s", g.packageName)
	pr("")
	pr("import (")
	pr("\t\"fmt\"")
	pr("")
	pr("\t\"github.com/go-lalr1/lalr1\"")
	pr("\t\"github.com/go-lalr1/lalr1/lr/lalr\"")
	pr(")")
	pr("")

	g.writeParserType(pr)
	g.writeHelpers(pr)

	rows := g.tables.Shift.Rows()
	for s := 0; s < rows; s++ {
		if err := g.writeState(pr, s); err != nil {
			return err
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// tableDigest extracts the stable, hashable part of a table artifact: the
// dense shift, reduce and jump matrices, rule metadata, constants and info
// string, but not Go-internal bookkeeping. The partial-reduction tables and
// the symbol index tables are not part of the digest.
func tableDigest(tt *lr.Tables) map[string]interface{} {
	dense := func(t *lr.Table, cols int) [][]int32 {
		rows := make([][]int32, t.Rows())
		for i := range rows {
			rows[i] = make([]int32, cols)
			for j := range rows[i] {
				rows[i][j] = t.Get(i, j)
			}
		}
		return rows
	}
	return map[string]interface{}{
		"shift":   dense(tt.Shift, tt.Terminals.Len()),
		"reduce":  dense(tt.Reduce, tt.Terminals.Len()),
		"jump":    dense(tt.Jump, tt.Nonterminals.Len()),
		"num_rhs": tt.NumRHS,
		"lhs":     tt.LHS,
		"consts":  tt.Consts,
		"infos":   tt.Infos,
	}
}

func idLiteral(id lalr1.ID) string {
	if id.IsText() {
		return fmt.Sprintf("lalr1.TextID(%q)", id.Text())
	}
	return fmt.Sprintf("lalr1.IntID(%d)", id.Int())
}

func (g *Generator) writeParserType(pr func(string, ...interface{})) {
	pr("type activeRule struct {")
	pr("\tseenTokens int")
	pr("\tretval     interface{}")
	pr("\thandle     int64")
	pr("}")
	pr("")
	pr("// InvalidTransitionError is raised when a state's lookahead matches")
	pr("// neither a shift, a reduce nor an accept action — a malformed table.")
	pr("type InvalidTransitionError struct {")
	pr("\tState     int")
	pr("\tLookahead lalr1.ID")
	pr("}")
	pr("")
	pr("func (e *InvalidTransitionError) Error() string {")
	pr("\treturn fmt.Sprintf(\"state %%d has no action for lookahead %%s\", e.State, e.Lookahead)")
	pr("}")
	pr("")
	pr("// Parser is a generated recursive-ascent parser, behaviorally")
	pr("// equivalent to a table-driven lalr.Parser over the same tables.")
	pr("type Parser struct {")
	pr("\tsemantics   lalr.Semantics")
	pr("\tusePartials bool")
	pr("")
	pr("\tsymbols    []lalr.Symbol")
	pr("\tlookahead  lalr.Symbol")
	pr("\tstream     *lalr.Stream")
	pr("\tdistToJump int")
	pr("\taccepted   bool")
	pr("")
	pr("\tactive     map[lalr1.ID][]*activeRule")
	pr("\tnextHandle int64")
	pr("}")
	pr("")
	pr("// Option configures a Parser at construction time.")
	pr("type Option func(*Parser)")
	pr("")
	pr("// WithPartials toggles the partial-reduction engine. Enabled by default.")
	pr("func WithPartials(enabled bool) Option {")
	pr("\treturn func(p *Parser) { p.usePartials = enabled }")
	pr("}")
	pr("")
	pr("// NewParser builds a generated parser bound to the given semantic actions.")
	pr("func NewParser(semantics lalr.Semantics, opts ...Option) *Parser {")
	pr("\tp := &Parser{semantics: semantics, usePartials: true}")
	pr("\tfor _, opt := range opts {")
	pr("\t\topt(p)")
	pr("\t}")
	pr("\treturn p")
	pr("}")
	pr("")
	pr("// Parse drives a full parse of tokens, invoking semantic actions in")
	pr("// exactly the sequence a table-driven lalr.Parser would over the")
	pr("// tables this parser was generated from.")
	pr("func (p *Parser) Parse(tokens []lalr.TokenRecord) (*lalr.Symbol, error) {")
	pr("\tp.symbols = nil")
	pr("\tp.active = make(map[lalr1.ID][]*activeRule)")
	pr("\tp.nextHandle = 0")
	pr("\tp.distToJump = 0")
	pr("\tp.accepted = false")
	pr("\tp.stream = lalr.NewStream(tokens)")
	pr("\tif err := p.advance(); err != nil {")
	pr("\t\treturn nil, err")
	pr("\t}")
	pr("\tif err := p.state%d(); err != nil {", g.tables.Consts.Start)
	pr("\t\treturn nil, err")
	pr("\t}")
	pr("\tif len(p.symbols) < 1 || !p.accepted {")
	pr("\t\treturn nil, nil")
	pr("\t}")
	pr("\ttop := p.symbols[len(p.symbols)-1]")
	pr("\treturn &top, nil")
	pr("}")
	pr("")
}

func (g *Generator) writeHelpers(pr func(string, ...interface{})) {
	pr("func (p *Parser) advance() error {")
	pr("\trec, err := p.stream.Advance()")
	pr("\tif err != nil {")
	pr("\t\treturn err")
	pr("\t}")
	pr("\tp.lookahead = lalr.Symbol{IsTerminal: true, ID: rec.ID, Value: rec.Value}")
	pr("\treturn nil")
	pr("}")
	pr("")
	pr("func (p *Parser) pushLookahead() error {")
	pr("\tp.symbols = append(p.symbols, p.lookahead)")
	pr("\treturn p.advance()")
	pr("}")
	pr("")
	pr("func (p *Parser) applyRule(ruleID lalr1.ID, numRHS int, lhsID lalr1.ID) error {")
	pr("\targs := make([]lalr.Symbol, numRHS)")
	pr("\tcopy(args, p.symbols[len(p.symbols)-numRHS:])")
	pr("\tp.symbols = p.symbols[:len(p.symbols)-numRHS]")
	pr("")
	pr("\tvar prevRetval interface{}")
	pr("\tif stack := p.active[ruleID]; len(stack) > 0 {")
	pr("\t\ttop := stack[len(stack)-1]")
	pr("\t\tprevRetval = top.retval")
	pr("\t\tp.active[ruleID] = stack[:len(stack)-1]")
	pr("\t}")
	pr("")
	pr("\treduced := prevRetval")
	pr("\tif action, ok := p.semantics[ruleID]; ok {")
	pr("\t\tv, err := action(args, true, prevRetval)")
	pr("\t\tif err != nil {")
	pr("\t\t\treturn &lalr.SemanticError{RuleID: ruleID, Err: err}")
	pr("\t\t}")
	pr("\t\treduced = v")
	pr("\t}")
	pr("\tp.symbols = append(p.symbols, lalr.Symbol{IsTerminal: false, ID: lhsID, Value: reduced})")
	pr("\tp.distToJump = numRHS")
	pr("\treturn nil")
	pr("}")
	pr("")
	pr("func (p *Parser) applyPartial(ruleID lalr1.ID, matchLen int, beforeShift bool) error {")
	pr("\tif !p.usePartials {")
	pr("\t\treturn nil")
	pr("\t}")
	pr("\targLen := matchLen")
	pr("\truleLen := matchLen")
	pr("\tif beforeShift {")
	pr("\t\truleLen++")
	pr("\t}")
	pr("")
	pr("\tstack := p.active[ruleID]")
	pr("\tvar top *activeRule")
	pr("\tif len(stack) > 0 {")
	pr("\t\ttop = stack[len(stack)-1]")
	pr("\t}")
	pr("")
	pr("\talreadySeen := false")
	pr("\tseenBefore := -1")
	pr("\tswitch {")
	pr("\tcase top != nil && beforeShift && top.seenTokens < ruleLen:")
	pr("\t\tseenBefore = top.seenTokens")
	pr("\tcase top != nil && beforeShift:")
	pr("\t\ttop = nil")
	pr("\tcase top != nil && !beforeShift && top.seenTokens == ruleLen:")
	pr("\t\talreadySeen = true")
	pr("\t\tseenBefore = top.seenTokens")
	pr("\tcase top != nil && !beforeShift:")
	pr("\t\tseenBefore = top.seenTokens")
	pr("\t}")
	pr("")
	pr("\tif top == nil {")
	pr("\t\ttop = &activeRule{handle: p.nextHandle}")
	pr("\t\tp.nextHandle++")
	pr("\t\tstack = append(stack, top)")
	pr("\t\tp.active[ruleID] = stack")
	pr("\t}")
	pr("\ttop.seenTokens = ruleLen")
	pr("")
	pr("\tif alreadySeen {")
	pr("\t\treturn nil")
	pr("\t}")
	pr("")
	pr("\targs := make([]lalr.Symbol, argLen)")
	pr("\tif argLen > 0 {")
	pr("\t\tcopy(args, p.symbols[len(p.symbols)-argLen:])")
	pr("\t}")
	pr("\taction, hasAction := p.semantics[ruleID]")
	pr("")
	pr("\tif !beforeShift || seenBefore < ruleLen-1 {")
	pr("\t\tif hasAction {")
	pr("\t\t\tv, err := action(args, false, top.retval)")
	pr("\t\t\tif err != nil {")
	pr("\t\t\t\treturn &lalr.SemanticError{RuleID: ruleID, Err: err}")
	pr("\t\t\t}")
	pr("\t\t\ttop.retval = v")
	pr("\t\t}")
	pr("\t}")
	pr("\tif beforeShift {")
	pr("\t\twithLookahead := make([]lalr.Symbol, argLen+1)")
	pr("\t\tcopy(withLookahead, args)")
	pr("\t\twithLookahead[argLen] = p.lookahead")
	pr("\t\tif hasAction {")
	pr("\t\t\tv, err := action(withLookahead, false, top.retval)")
	pr("\t\t\tif err != nil {")
	pr("\t\t\t\treturn &lalr.SemanticError{RuleID: ruleID, Err: err}")
	pr("\t\t\t}")
	pr("\t\t\ttop.retval = v")
	pr("\t\t}")
	pr("\t}")
	pr("\treturn nil")
	pr("}")
	pr("")
}

// shiftCase describes one terminal dispatch branch that shifts into a new
// state.
type shiftCase struct {
	cond        string
	nextState   int
	partialRule string // idLiteral, or "" if no partial fires here
	matchLen    int32
}

func (g *Generator) writeState(pr func(string, ...interface{}), s int) error {
	tt := g.tables
	shiftNull := tt.Shift.NullValue()
	reduceNull := tt.Reduce.NullValue()
	jumpNull := tt.Jump.NullValue()
	partialTermNull := tt.PartialsRuleTerm.NullValue()
	partialNontermNull := tt.PartialsRuleNonterm.NullValue()

	var shifts []shiftCase
	reduceGroups := map[int][]string{}
	var reduceOrder []int
	var acceptConds []string

	for _, term := range tt.Terminals.Entries() {
		cond := fmt.Sprintf("p.lookahead.ID == %s", idLiteral(term.ID))
		if next := tt.Shift.Get(s, term.Index); next != shiftNull {
			sc := shiftCase{cond: cond, nextState: int(next)}
			if partialRule := tt.PartialsRuleTerm.Get(s, term.Index); partialRule != partialTermNull {
				ruleID, err := tt.SemanticRuleID(int(partialRule))
				if err != nil {
					return err
				}
				sc.partialRule = idLiteral(ruleID)
				sc.matchLen = tt.PartialsMatchLenTerm.Get(s, term.Index)
			}
			shifts = append(shifts, sc)
		}
		if red := tt.Reduce.Get(s, term.Index); red != reduceNull {
			if red == tt.Consts.Accept {
				acceptConds = append(acceptConds, cond)
			} else {
				ruleIdx := int(red)
				if _, seen := reduceGroups[ruleIdx]; !seen {
					reduceOrder = append(reduceOrder, ruleIdx)
				}
				reduceGroups[ruleIdx] = append(reduceGroups[ruleIdx], cond)
			}
		}
	}

	pr("func (p *Parser) state%d() error {", s)

	hasDispatch := len(shifts) > 0 || len(reduceOrder) > 0 || len(acceptConds) > 0
	if hasDispatch {
		pr("\tvar nextState func() error")
		pr("\tswitch {")
		for _, sc := range shifts {
			pr("\tcase %s:", sc.cond)
			if sc.partialRule != "" {
				pr("\t\tif err := p.applyPartial(%s, %d, true); err != nil {", sc.partialRule, sc.matchLen)
				pr("\t\t\treturn err")
				pr("\t\t}")
			}
			pr("\t\tnextState = p.state%d", sc.nextState)
		}
		sort.Ints(reduceOrder)
		for _, ruleIdx := range reduceOrder {
			conds := reduceGroups[ruleIdx]
			numRHS := tt.NumRHS[ruleIdx]
			lhsIdx := tt.LHS[ruleIdx]
			lhsID, err := tt.NonterminalID(lhsIdx)
			if err != nil {
				return err
			}
			ruleID, err := tt.SemanticRuleID(ruleIdx)
			if err != nil {
				return err
			}
			pr("\tcase %s:", joinOr(conds))
			pr("\t\tif err := p.applyRule(%s, %d, %s); err != nil {", idLiteral(ruleID), numRHS, idLiteral(lhsID))
			pr("\t\t\treturn err")
			pr("\t\t}")
		}
		if len(acceptConds) > 0 {
			pr("\tcase %s:", joinOr(acceptConds))
			pr("\t\tp.accepted = true")
		}
		pr("\tdefault:")
		pr("\t\treturn &InvalidTransitionError{State: %d, Lookahead: p.lookahead.ID}", s)
		pr("\t}")
		pr("\tif nextState != nil {")
		pr("\t\tif err := p.pushLookahead(); err != nil {")
		pr("\t\t\treturn err")
		pr("\t\t}")
		pr("\t\tif err := nextState(); err != nil {")
		pr("\t\t\treturn err")
		pr("\t\t}")
		pr("\t}")
	}

	hasJump := false
	for _, nt := range tt.Nonterminals.Entries() {
		if tt.Jump.Get(s, nt.Index) != jumpNull {
			hasJump = true
			break
		}
	}
	if hasJump {
		pr("\tfor p.distToJump == 0 && !p.accepted && len(p.symbols) > 0 && !p.symbols[len(p.symbols)-1].IsTerminal {")
		pr("\t\ttop := p.symbols[len(p.symbols)-1]")
		pr("\t\tvar jumpNext func() error")
		pr("\t\tswitch {")
		for _, nt := range tt.Nonterminals.Entries() {
			next := tt.Jump.Get(s, nt.Index)
			if next == jumpNull {
				continue
			}
			pr("\t\tcase top.ID == %s:", idLiteral(nt.ID))
			if pr2 := tt.PartialsRuleNonterm.Get(s, nt.Index); pr2 != partialNontermNull {
				ruleID, err := tt.SemanticRuleID(int(pr2))
				if err != nil {
					return err
				}
				matchLen := tt.PartialsMatchLenNonterm.Get(s, nt.Index)
				pr("\t\t\tif err := p.applyPartial(%s, %d, false); err != nil {", idLiteral(ruleID), matchLen)
				pr("\t\t\t\treturn err")
				pr("\t\t\t}")
			}
			pr("\t\t\tjumpNext = p.state%d", int(next))
		}
		pr("\t\t}")
		pr("\t\tif jumpNext == nil {")
		pr("\t\t\tbreak")
		pr("\t\t}")
		pr("\t\tif err := jumpNext(); err != nil {")
		pr("\t\t\treturn err")
		pr("\t\t}")
		pr("\t}")
	}
	pr("\tp.distToJump--")
	pr("\treturn nil")
	pr("}")
	pr("")
	return nil
}

func joinOr(conds []string) string {
	out := conds[0]
	for _, c := range conds[1:] {
		out += " || " + c
	}
	return out
}
