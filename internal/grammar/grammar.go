// Package grammar implements the context-free grammar model (symbols,
// productions, FIRST sets) that the automaton and table packages build on.
package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/util"
)

// EndOfInput is the special terminal used as the lookahead placeholder at
// the bottom of input, conventionally written "$".
const EndOfInput = "$"

// Epsilon denotes an empty production right-hand side in textual notation.
const Epsilon = "ε"

// Production is the right-hand side of a grammar rule: an ordered sequence
// of symbol names. An empty Production represents an epsilon production.
type Production []string

func (p Production) String() string {
	return util.JoinSymbols([]string(p))
}

func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Production) Copy() Production {
	c := make(Production, len(p))
	copy(c, p)
	return c
}

// Rule is a non-terminal and all of its alternative productions.
type Rule struct {
	NonTerminal string
	Productions []Production
}

// Grammar is the in-memory context-free grammar model: a set of
// terminals, a set of non-terminals each with one or more productions,
// and a designated start symbol (the non-terminal of the first rule
// added).
type Grammar struct {
	rulesByName map[string]Rule
	ruleOrder   []string // insertion order; first entry is the start symbol
	terminals   util.StringSet
	terms       []string // insertion order
}

// New returns an empty Grammar ready to have rules added to it.
func New() *Grammar {
	return &Grammar{
		rulesByName: map[string]Rule{},
		terminals:   util.NewStringSet(),
	}
}

// AddTerminal registers name as a terminal symbol. It is safe to call more
// than once for the same name.
func (g *Grammar) AddTerminal(name string) {
	if !g.terminals.Has(name) {
		g.terminals.Add(name)
		g.terms = append(g.terms, name)
	}
}

// AddRule adds a non-terminal rule with the given alternative productions.
// Any symbol in a production that hasn't been declared a terminal via
// AddTerminal and isn't itself the name of a rule is treated as a
// terminal the first time the grammar is finalized by Validate.
func (g *Grammar) AddRule(nonTerminal string, productions ...Production) {
	if _, exists := g.rulesByName[nonTerminal]; !exists {
		g.ruleOrder = append(g.ruleOrder, nonTerminal)
	}
	g.rulesByName[nonTerminal] = Rule{NonTerminal: nonTerminal, Productions: productions}
}

// StartSymbol returns the non-terminal of the first rule added to the
// grammar.
func (g *Grammar) StartSymbol() string {
	if len(g.ruleOrder) == 0 {
		return ""
	}
	return g.ruleOrder[0]
}

// Rule returns the rule for a non-terminal, and whether it exists.
func (g *Grammar) Rule(nonTerminal string) (Rule, bool) {
	r, ok := g.rulesByName[nonTerminal]
	return r, ok
}

// NonTerminals returns all declared non-terminal names in declaration
// order.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.ruleOrder))
	copy(out, g.ruleOrder)
	return out
}

// Terminals returns all declared terminal names in declaration order.
func (g *Grammar) Terminals() []string {
	out := make([]string, len(g.terms))
	copy(out, g.terms)
	return out
}

// IsTerminal reports whether symbol is a declared terminal (or the
// end-of-input marker).
func (g *Grammar) IsTerminal(symbol string) bool {
	if symbol == EndOfInput {
		return true
	}
	return g.terminals.Has(symbol)
}

// IsNonTerminal reports whether symbol names a declared rule.
func (g *Grammar) IsNonTerminal(symbol string) bool {
	_, ok := g.rulesByName[symbol]
	return ok
}

// Validate checks internal consistency: every symbol referenced by a
// production must be either a declared terminal or a declared
// non-terminal, and the grammar must have at least one rule. Any symbol
// that is referenced but neither declared as a terminal nor the name of a
// rule is implicitly registered as a terminal, mirroring how a grammar
// written by hand will declare its non-terminals but leave terminals (like
// punctuation token names) to be inferred.
func (g *Grammar) Validate() error {
	if len(g.ruleOrder) == 0 {
		return cerrors.GrammarMalformed("grammar has no rules")
	}
	for _, ntName := range g.ruleOrder {
		rule := g.rulesByName[ntName]
		if len(rule.Productions) == 0 {
			return cerrors.GrammarMalformed("non-terminal %q has no productions", ntName)
		}
		for _, prod := range rule.Productions {
			for _, sym := range prod {
				if sym == "" {
					continue // epsilon slot
				}
				if g.IsNonTerminal(sym) || g.IsTerminal(sym) {
					continue
				}
				g.AddTerminal(sym)
			}
		}
	}
	return nil
}

// Augmented returns a copy of g with a new start rule S' -> S appended,
// where S is g's original start symbol. The augmented grammar's
// StartSymbol is the new S'.
func (g *Grammar) Augmented() *Grammar {
	aug := New()
	newStart := g.StartSymbol() + "'"
	for aug.IsNonTerminal(newStart) || g.IsNonTerminal(newStart) || g.IsTerminal(newStart) {
		newStart += "'"
	}
	aug.AddRule(newStart, Production{g.StartSymbol()})
	for _, nt := range g.ruleOrder {
		rule := g.rulesByName[nt]
		prods := make([]Production, len(rule.Productions))
		for i, p := range rule.Productions {
			prods[i] = p.Copy()
		}
		aug.AddRule(nt, prods...)
	}
	for _, t := range g.terms {
		aug.AddTerminal(t)
	}
	return aug
}

// GenerateUniqueTerminal returns a terminal name based on prefix that is
// not already used anywhere in the grammar, by appending digits until it
// is unique.
func (g *Grammar) GenerateUniqueTerminal(prefix string) string {
	candidate := prefix
	n := 0
	for g.IsTerminal(candidate) || g.IsNonTerminal(candidate) {
		candidate = fmt.Sprintf("%s%d", prefix, n)
		n++
	}
	return candidate
}

// Digest returns a stable, order-independent-of-map-iteration hash of the
// grammar's canonical production listing, used by table persistence to
// detect a binary table that was built from a different grammar.
func (g *Grammar) Digest() uint64 {
	var lines []string
	for _, nt := range g.ruleOrder {
		rule := g.rulesByName[nt]
		for _, p := range rule.Productions {
			lines = append(lines, nt+" -> "+p.String())
		}
	}
	sort.Strings(lines)

	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	var h uint64 = offset64
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			h ^= uint64(line[i])
			h *= prime64
		}
		h ^= '\n'
		h *= prime64
	}
	return h
}

// String renders the grammar back into the textual notation AddRule/Parse
// use, one non-terminal per line.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.ruleOrder {
		rule := g.rulesByName[nt]
		sb.WriteString(nt)
		sb.WriteString(" -> ")
		parts := make([]string, len(rule.Productions))
		for i, p := range rule.Productions {
			parts[i] = p.String()
		}
		sb.WriteString(strings.Join(parts, " | "))
		sb.WriteString(" ;\n")
	}
	return sb.String()
}
