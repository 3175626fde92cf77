package lalr

import (
	"github.com/go-lalr1/lalr1"
	"github.com/go-lalr1/lalr1/lr"
)

// Symbol is a single entry of the parser's symbol stack: a terminal
// carrying a scanned value, or a nonterminal carrying the return value of
// the semantic action that reduced it.
type Symbol struct {
	IsTerminal bool
	ID         lalr1.ID
	Value      interface{}
}

// Action is a semantic action for one rule. completed is true for a full
// reduction and false for a partial (prefix) invocation; prevRetval
// carries the previous partial invocation's return value for the same
// active rule instance, or nil on the first call.
type Action func(args []Symbol, completed bool, prevRetval interface{}) (interface{}, error)

// Semantics maps semantic-rule IDs to their actions. A rule absent from
// the map simply passes its previous return value (or nil) through.
type Semantics map[lalr1.ID]Action

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithPartials toggles the partial-reduction engine. Enabled by default.
func WithPartials(enabled bool) Option {
	return func(p *Parser) { p.usePartials = enabled }
}

// WithDebug toggles verbose tracing of the shift/reduce driver loop.
func WithDebug(enabled bool) Option {
	return func(p *Parser) { p.debug = enabled }
}

// Parser is a table-driven LALR(1) shift/reduce driver. A Parser may be
// reused for any number of sequential parses (Parse resets all per-parse
// state on entry) but a single instance must not be used concurrently or
// recursively from within one of its own semantic actions.
type Parser struct {
	tables      *lr.Tables
	semantics   Semantics
	usePartials bool
	debug       bool

	stateStack []int
	symStack   []Symbol
	lookahead  Symbol
	pos        int
	stream     *Stream

	active     map[lalr1.ID][]*activeRule
	nextHandle int64
}

// New builds a Parser bound to the given tables and semantic actions.
// Tables are borrowed for the lifetime of the Parser and must not be
// mutated.
func New(tables *lr.Tables, semantics Semantics, opts ...Option) *Parser {
	p := &Parser{
		tables:      tables,
		semantics:   semantics,
		usePartials: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse drives a full parse of tokens against the Parser's tables,
// invoking semantic actions as rules are reduced (and, with partials
// enabled, as their prefixes are matched). It returns the top stack symbol
// at accept, carrying the parse's value (nil if the stack was empty), or
// the first error encountered.
func (p *Parser) Parse(tokens []TokenRecord) (*Symbol, error) {
	p.reset(tokens)
	if err := p.advance(); err != nil {
		return nil, err
	}
	for {
		accepted, result, err := p.step()
		if err != nil {
			return nil, err
		}
		if accepted {
			return result, nil
		}
	}
}

func (p *Parser) reset(tokens []TokenRecord) {
	p.stream = NewStream(tokens)
	p.stateStack = []int{p.tables.Consts.Start}
	p.symStack = p.symStack[:0]
	p.active = make(map[lalr1.ID][]*activeRule)
	p.nextHandle = 0
	p.pos = 0
	p.lookahead = Symbol{}
}

func (p *Parser) advance() error {
	rec, err := p.stream.Advance()
	if err != nil {
		return err
	}
	p.pos = p.stream.Pos()
	p.lookahead = Symbol{IsTerminal: true, ID: rec.ID, Value: rec.Value}
	return nil
}

// step performs exactly one shift or reduce (or detects accept/error) and
// reports whether the parse has finished.
func (p *Parser) step() (accepted bool, result *Symbol, err error) {
	s := p.stateStack[len(p.stateStack)-1]
	t, err := p.tables.TerminalIndex(p.lookahead.ID)
	if err != nil {
		return false, nil, err
	}

	shiftAction := p.tables.Shift.Get(s, t)
	reduceAction := p.tables.Reduce.Get(s, t)
	hasShift := shiftAction != p.tables.Shift.NullValue()
	hasReduce := reduceAction != p.tables.Reduce.NullValue()

	switch {
	case !hasShift && !hasReduce:
		return false, nil, &SyntaxError{State: s, Lookahead: p.lookahead.ID, Pos: p.pos}
	case hasShift && hasReduce:
		return false, nil, &ShiftReduceConflictError{State: s, Lookahead: p.lookahead.ID}
	case hasReduce && reduceAction == p.tables.Consts.Accept:
		if p.debug {
			tracer().Debugf("accept in state %d", s)
		}
		return true, p.acceptValue(), nil
	case hasShift:
		if err := p.shift(s, t, shiftAction); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	default:
		if err := p.reduceBy(int(reduceAction)); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}
}

func (p *Parser) acceptValue() *Symbol {
	if len(p.symStack) == 0 {
		return nil
	}
	top := p.symStack[len(p.symStack)-1]
	return &top
}

func (p *Parser) shift(s, t int, nextState int32) error {
	if p.usePartials {
		ruleIdx := p.tables.PartialsRuleTerm.Get(s, t)
		if ruleIdx != p.tables.PartialsRuleTerm.NullValue() {
			matchLen := p.tables.PartialsMatchLenTerm.Get(s, t)
			ruleID, err := p.tables.SemanticRuleID(int(ruleIdx))
			if err != nil {
				return err
			}
			if err := p.applyPartial(ruleID, int(matchLen), true); err != nil {
				return err
			}
		}
	}
	if p.debug {
		tracer().Debugf("shift %s -> state %d", p.lookahead.ID, nextState)
	}
	p.symStack = append(p.symStack, p.lookahead)
	p.stateStack = append(p.stateStack, int(nextState))
	return p.advance()
}

func (p *Parser) reduceBy(ruleIdx int) error {
	k := p.tables.NumRHS[ruleIdx]
	lhsIdx := p.tables.LHS[ruleIdx]
	lhsID, err := p.tables.NonterminalID(lhsIdx)
	if err != nil {
		return err
	}
	ruleID, err := p.tables.SemanticRuleID(ruleIdx)
	if err != nil {
		return err
	}

	args := make([]Symbol, k)
	copy(args, p.symStack[len(p.symStack)-k:])
	p.symStack = p.symStack[:len(p.symStack)-k]
	p.stateStack = p.stateStack[:len(p.stateStack)-k]

	var prevRetval interface{}
	if stack := p.active[ruleID]; len(stack) > 0 {
		top := stack[len(stack)-1]
		prevRetval = top.retval
		p.active[ruleID] = stack[:len(stack)-1]
	}

	reduced := prevRetval
	if action, ok := p.semantics[ruleID]; ok {
		v, err := action(args, true, prevRetval)
		if err != nil {
			return &SemanticError{RuleID: ruleID, Err: err}
		}
		reduced = v
	}

	if p.debug {
		tracer().Debugf("reduce rule %s (%d symbols) -> %s", ruleID, k, lhsID)
	}
	p.symStack = append(p.symStack, Symbol{IsTerminal: false, ID: lhsID, Value: reduced})

	sAfterPop := p.stateStack[len(p.stateStack)-1]
	j := p.tables.Jump.Get(sAfterPop, lhsIdx)
	if j == p.tables.Jump.NullValue() {
		return &InvalidGotoError{State: sAfterPop, Nonterminal: lhsID}
	}
	p.stateStack = append(p.stateStack, int(j))

	if p.usePartials {
		pr := p.tables.PartialsRuleNonterm.Get(sAfterPop, lhsIdx)
		if pr != p.tables.PartialsRuleNonterm.NullValue() {
			matchLen := p.tables.PartialsMatchLenNonterm.Get(sAfterPop, lhsIdx)
			partialRuleID, err := p.tables.SemanticRuleID(int(pr))
			if err != nil {
				return err
			}
			if err := p.applyPartial(partialRuleID, int(matchLen), false); err != nil {
				return err
			}
		}
	}
	return nil
}
