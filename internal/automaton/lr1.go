package automaton

import (
	"github.com/corvidae/redfish/internal/grammar"
)

// NewLR1ViablePrefixDFA builds the canonical collection of sets of LR(1)
// items for g (already augmented by the caller), by repeatedly closing and
// taking GOTO until no new states appear. This is the "items(G')"
// construction of purple dragon book Algorithm 4.56, step 1.
func NewLR1ViablePrefixDFA(g *grammar.Grammar, fs *grammar.FirstSets) *DFA[grammar.ItemSet] {
	dfa := NewDFA[grammar.ItemSet]()

	start := grammar.InitialLR1ItemSet(g, fs)
	startName := stateName(start)
	dfa.AddState(startName, start)
	dfa.Start = startName

	allSymbols := append(append([]string{}, g.Terminals()...), g.NonTerminals()...)

	queue := []string{startName}
	seen := map[string]bool{startName: true}

	for len(queue) > 0 {
		curName := queue[0]
		queue = queue[1:]
		curSet := dfa.GetValue(curName)

		for _, sym := range allSymbols {
			next := grammar.LR1Goto(g, curSet, sym, fs)
			if next.Len() == 0 {
				continue
			}
			nextName := stateName(next)
			if !dfa.HasState(nextName) {
				dfa.AddState(nextName, next)
			}
			dfa.AddTransition(curName, sym, nextName)
			if !seen[nextName] {
				seen[nextName] = true
				queue = append(queue, nextName)
			}
		}
	}

	dfa.NumberStates()
	return dfa
}

// stateName derives a stable state identifier from the sorted textual keys
// of its item set, so that two independently-computed item sets with
// identical contents are recognized as the same DFA state.
func stateName(set grammar.ItemSet) string {
	keys := grammar.SortedKeys(set)
	name := ""
	for i, k := range keys {
		if i > 0 {
			name += "\x1f"
		}
		name += k
	}
	return name
}
