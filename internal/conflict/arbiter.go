// Package conflict implements a declarative conflict arbiter:
// ACTION-table collisions are resolved not by ad hoc code but by matching
// the conflicting items against an ordered list of precedence chains, data
// that can be extended from a TOML file without touching Go source.
package conflict

import (
	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/grammar"
)

// Pattern matches an LR0 item shape: its non-terminal, an optional tail of
// symbols immediately before the dot, and an optional head of symbols
// immediately after the dot. An empty Before/After slice matches any
// tail/head, so a pattern can be as loose as "any item of this
// non-terminal" or as tight as "the dot directly after this symbol".
type Pattern struct {
	NonTerminal string
	Before      []string // suffix of item.Left that must match, if non-empty
	After       []string // prefix of item.Right that must match, if non-empty
}

func (p Pattern) Matches(item grammar.LR0Item) bool {
	if p.NonTerminal != "" && p.NonTerminal != item.NonTerminal {
		return false
	}
	if len(p.Before) > 0 {
		if len(item.Left) < len(p.Before) {
			return false
		}
		tail := item.Left[len(item.Left)-len(p.Before):]
		for i := range p.Before {
			if tail[i] != p.Before[i] {
				return false
			}
		}
	}
	if len(p.After) > 0 {
		if len(item.Right) < len(p.After) {
			return false
		}
		head := item.Right[:len(p.After)]
		for i := range p.After {
			if head[i] != p.After[i] {
				return false
			}
		}
	}
	return true
}

// Chain is a named, ordered pair of patterns describing a known ambiguity:
// when one conflicting action's item matches Winner and the other matches
// Loser, Winner's action is chosen regardless of which action the table
// assembler happened to see first.
type Chain struct {
	Name   string
	Winner Pattern
	Loser  Pattern
}

// Arbiter resolves ACTION-table conflicts using an ordered list of Chains,
// falling back to a configurable default when no chain applies.
type Arbiter struct {
	Chains []Chain

	// Strict, when true, makes Resolve return an UnresolvableConflict
	// error instead of applying the default "prefer the challenger"
	// fallback for any conflict no chain covers.
	Strict bool
}

// NewDefault returns an Arbiter pre-loaded with the built-in chains that
// resolve the C11-subset grammar's two known ambiguity classes.
func NewDefault() *Arbiter {
	return &Arbiter{Chains: append([]Chain{}, BuiltinChains...)}
}

// Candidate is one of the two colliding items a conflict arose from, along
// with a label identifying which kind of action it would produce (used
// only for error messages).
type Candidate struct {
	Item  grammar.LR0Item
	Label string // e.g. "shift" or "reduce X -> Y"
}

// Resolve decides which of two colliding candidates should win the
// ACTION-table cell. incumbent is the action already placed in the table;
// challenger is the new action being added. It returns the winning
// Candidate, or an error if Strict is set and no chain resolves the
// conflict.
func (a *Arbiter) Resolve(incumbent, challenger Candidate) (Candidate, error) {
	for _, chain := range a.Chains {
		incumbentWins := chain.Winner.Matches(incumbent.Item) && chain.Loser.Matches(challenger.Item)
		challengerWins := chain.Winner.Matches(challenger.Item) && chain.Loser.Matches(incumbent.Item)
		if incumbentWins && !challengerWins {
			return incumbent, nil
		}
		if challengerWins && !incumbentWins {
			return challenger, nil
		}
	}

	if a.Strict {
		return Candidate{}, cerrors.UnresolvableConflict(
			"no precedence chain resolves conflict between %q and %q",
			incumbent.Label, challenger.Label)
	}

	// default fallback: prefer the challenger when no chain applies.
	return challenger, nil
}
