package table

import (
	"github.com/corvidae/redfish/internal/automaton"
	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/conflict"
	"github.com/corvidae/redfish/internal/grammar"
)

// ParseTable holds the assembled ACTION and GOTO entries over the states
// of a viable-prefix automaton, plus enough of the grammar to render and
// persist it.
type ParseTable struct {
	Mode string // "LALR(1)" or "CLR(1)", for BuildReport / persistence

	gPrime    *grammar.Grammar
	gStart    string
	terms     []string
	nonTerms  []string
	automaton *automaton.DFA[grammar.ItemSet]

	action map[string]map[string]Action // state -> terminal -> action
	goTo   map[string]map[string]string // state -> non-terminal -> state

	// actionOrigin tracks the LR0Item that produced each placed action, so
	// a later conflict can hand the arbiter the incumbent's real item
	// shape instead of a reconstruction. Not persisted; only needed during
	// assembly.
	actionOrigin map[string]map[string]grammar.LR0Item
}

// Stats summarizes how many conflicts the arbiter saw and how it resolved
// them, for BuildReport. A rejected conflict is one Strict mode found no
// chain for; the table keeps its incumbent action for that cell and the
// build is reported as failed overall, but assembly continues so every
// other cell, and every other conflict, is still reported in the same
// pass rather than stopping at the first one.
type Stats struct {
	States            int
	ConflictsSeen     int
	ConflictsResolved int
	ConflictsRejected int
}

// Assemble builds the ACTION/GOTO tables for g's viable-prefix automaton
// dfa (either the canonical LR(1) or LALR(1) core-merged collection),
// using arb to resolve any conflicts found while proposing ACTION
// entries. This is Algorithm 4.56 steps 2-3 generalized to call the
// arbiter on a collision instead of treating any collision as a fatal
// grammar defect.
//
// Every state is visited regardless of conflicts found in earlier states,
// so a Strict arbiter that rejects a conflict doesn't stop the rest of the
// table from being built: Assemble returns the fully-built table and
// stats alongside a non-nil error in that case, so a caller (the CLI) can
// still print the build report before failing.
func Assemble(gPrime *grammar.Grammar, dfa *automaton.DFA[grammar.ItemSet], arb *conflict.Arbiter, mode string) (*ParseTable, *Stats, error) {
	pt := &ParseTable{
		Mode:         mode,
		gPrime:       gPrime,
		gStart:       startSymbolBeforeAugmentation(gPrime),
		terms:        gPrime.Terminals(),
		nonTerms:     gPrime.NonTerminals(),
		automaton:    dfa,
		action:       map[string]map[string]Action{},
		goTo:         map[string]map[string]string{},
		actionOrigin: map[string]map[string]grammar.LR0Item{},
	}

	stats := &Stats{States: len(dfa.States())}
	var firstRejection error

	for _, state := range dfa.OrderedStates() {
		pt.action[state] = map[string]Action{}
		pt.goTo[state] = map[string]string{}
		pt.actionOrigin[state] = map[string]grammar.LR0Item{}

		itemSet := dfa.GetValue(state)
		for _, key := range grammar.SortedKeys(itemSet) {
			item := itemSet.Get(key)

			// shift: [A -> α.aβ, b], a terminal, GOTO(i,a) defined
			if sym, ok := item.NextSymbol(); ok && gPrime.IsTerminal(sym) {
				next := dfa.Next(state, sym)
				if next != "" {
					proposed := Action{Type: Shift, State: next}
					pt.propose(arb, stats, &firstRejection, state, sym, proposed, item.LR0Item, "shift "+sym)
				}
			}

			// reduce: [A -> α., a], A != S'
			if item.AtEnd() && item.NonTerminal != gPrime.StartSymbol() {
				proposed := Action{Type: Reduce, Symbol: item.NonTerminal, Production: grammar.Production(item.Left)}
				pt.propose(arb, stats, &firstRejection, state, item.Lookahead, proposed, item.LR0Item, "reduce "+item.NonTerminal)
			}

			// accept: [S' -> S., $]
			if item.AtEnd() && item.NonTerminal == gPrime.StartSymbol() && item.Lookahead == grammar.EndOfInput {
				proposed := Action{Type: Accept}
				pt.propose(arb, stats, &firstRejection, state, grammar.EndOfInput, proposed, item.LR0Item, "accept")
			}
		}

		// GOTO entries for non-terminals
		for _, nt := range pt.nonTerms {
			if next := dfa.Next(state, nt); next != "" {
				pt.goTo[state][nt] = next
			}
		}
	}

	return pt, stats, firstRejection
}

// propose records a proposed action for (state, symbol), invoking the
// arbiter if a different action is already present. The incumbent's own
// originating item is carried alongside its action in pt.actionOrigin, so
// a conflict hands the arbiter the real item shape on both sides rather
// than a reconstruction. A Strict rejection keeps the incumbent action in
// the cell, records the first such rejection's error in *firstRejection
// (leaving the state it already holds if there's already a prior one),
// and lets assembly continue.
func (pt *ParseTable) propose(arb *conflict.Arbiter, stats *Stats, firstRejection *error, state, symbol string, proposed Action, item grammar.LR0Item, label string) {
	existing, had := pt.action[state][symbol]
	if !had {
		pt.action[state][symbol] = proposed
		pt.actionOrigin[state][symbol] = item
		return
	}
	if existing.Equal(proposed) {
		return
	}

	stats.ConflictsSeen++

	winner, err := arb.Resolve(
		conflict.Candidate{Item: pt.actionOrigin[state][symbol], Label: existing.String()},
		conflict.Candidate{Item: item, Label: label},
	)
	if err != nil {
		stats.ConflictsRejected++
		if *firstRejection == nil {
			*firstRejection = cerrors.Wrap(cerrors.KindUnresolvableConflict, err,
				"state %s, terminal %q: %s", state, symbol, err.Error())
		}
		return
	}
	stats.ConflictsResolved++

	if winner.Label == label {
		pt.action[state][symbol] = proposed
		pt.actionOrigin[state][symbol] = item
	}
	// else keep existing
}

func startSymbolBeforeAugmentation(gPrime *grammar.Grammar) string {
	rule, ok := gPrime.Rule(gPrime.StartSymbol())
	if !ok || len(rule.Productions) != 1 || len(rule.Productions[0]) != 1 {
		return gPrime.StartSymbol()
	}
	return rule.Productions[0][0]
}

// Initial returns the automaton's start state.
func (pt *ParseTable) Initial() string {
	return pt.automaton.Start
}

// Action returns the ACTION-table entry for (state, terminal).
func (pt *ParseTable) Action(state, terminal string) Action {
	row, ok := pt.action[state]
	if !ok {
		return Action{Type: Error}
	}
	act, ok := row[terminal]
	if !ok {
		return Action{Type: Error}
	}
	return act
}

// Goto returns the GOTO-table entry for (state, nonTerminal).
func (pt *ParseTable) Goto(state, nonTerminal string) (string, error) {
	row, ok := pt.goTo[state]
	if !ok {
		return "", cerrors.InternalGoto("no GOTO row for state %q", state)
	}
	next, ok := row[nonTerminal]
	if !ok {
		return "", cerrors.InternalGoto("GOTO[%q, %q] is undefined", state, nonTerminal)
	}
	return next, nil
}

// GetDFA exposes the underlying automaton, for callers that want to render
// or persist it alongside the tables.
func (pt *ParseTable) GetDFA() *automaton.DFA[grammar.ItemSet] {
	return pt.automaton
}

// Terminals and NonTerminals expose the ordered symbol lists used to build
// the table, for rendering.
func (pt *ParseTable) Terminals() []string    { return pt.terms }
func (pt *ParseTable) NonTerminals() []string { return pt.nonTerms }
