package lalr

import "github.com/go-lalr1/lalr1"

// activeRule is a not-yet-fully-reduced instance of a rule being tracked
// by the partial-reduction engine. Recursion re-entering the same rule
// before an earlier instance completes produces a second activeRule
// stacked on top of the first; handle distinguishes them for diagnostics.
type activeRule struct {
	seenTokens int
	retval     interface{}
	handle     int64
}

// applyPartial implements the partial-reduction ("active-rule") algorithm:
// it finds or creates the top active instance for ruleID, decides whether
// this call extends an existing instance, starts a fresh one (recursion),
// or has already been handled, and — unless already handled — invokes the
// rule's semantic action with completed=false over the currently visible
// prefix.
//
// matchLen is the prefix length as stored in the partial tables; when
// beforeShift is true the about-to-be-shifted lookahead is counted too, and
// the action may be called a second time with the lookahead appended, per
// the exact guard below.
func (p *Parser) applyPartial(ruleID lalr1.ID, matchLen int, beforeShift bool) error {
	argLen := matchLen
	ruleLen := matchLen
	if beforeShift {
		ruleLen++
	}

	stack := p.active[ruleID]
	var top *activeRule
	if len(stack) > 0 {
		top = stack[len(stack)-1]
	}

	alreadySeen := false
	seenBefore := -1
	switch {
	case top != nil && beforeShift && top.seenTokens < ruleLen:
		seenBefore = top.seenTokens
	case top != nil && beforeShift:
		// top.seenTokens >= ruleLen: recursion re-enters the rule before
		// the earlier instance completes. Start a fresh instance.
		top = nil
	case top != nil && !beforeShift && top.seenTokens == ruleLen:
		alreadySeen = true
		seenBefore = top.seenTokens
	case top != nil && !beforeShift:
		seenBefore = top.seenTokens
	}

	if top == nil {
		top = &activeRule{handle: p.nextHandle}
		p.nextHandle++
		stack = append(stack, top)
		p.active[ruleID] = stack
	}
	top.seenTokens = ruleLen

	if alreadySeen {
		return nil
	}

	args := make([]Symbol, argLen)
	if argLen > 0 {
		copy(args, p.symStack[len(p.symStack)-argLen:])
	}
	action, hasAction := p.semantics[ruleID]

	if !beforeShift || seenBefore < ruleLen-1 {
		if hasAction {
			v, err := action(args, false, top.retval)
			if err != nil {
				return &SemanticError{RuleID: ruleID, Err: err}
			}
			top.retval = v
		}
	}
	if beforeShift {
		withLookahead := make([]Symbol, argLen+1)
		copy(withLookahead, args)
		withLookahead[argLen] = p.lookahead
		if hasAction {
			v, err := action(withLookahead, false, top.retval)
			if err != nil {
				return &SemanticError{RuleID: ruleID, Err: err}
			}
			top.retval = v
		}
	}
	return nil
}
