package automaton

import (
	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/grammar"
	"github.com/corvidae/redfish/internal/util"
)

// NewLALR1ViablePrefixDFA builds the canonical LR(1) automaton for g and
// then merges every pair of states that share an LR(0) core, unioning
// their lookaheads, the "efficient construction" approach described in
// purple dragon book §4.7 (compute the full canonical collection, then
// merge same-core states) rather than computing LALR kernels directly.
// It returns an error if merging introduces an inconsistent state (one
// state reachable via two different GOTOs that would need to become two
// different merged states), meaning the grammar is not LALR(1).
func NewLALR1ViablePrefixDFA(g *grammar.Grammar, fs *grammar.FirstSets) (*DFA[grammar.ItemSet], error) {
	canon := NewLR1ViablePrefixDFA(g, fs)

	// group canonical states by LR0 core
	coreGroups := map[string][]string{}
	coreKeyOf := map[string]string{}
	for _, name := range canon.OrderedStates() {
		key := coreKey(canon.GetValue(name))
		coreGroups[key] = append(coreGroups[key], name)
		coreKeyOf[name] = key
	}

	// merged state name is the core key itself; build merged item sets by
	// unioning lookaheads of items sharing an LR0 core across the group.
	merged := NewDFA[grammar.ItemSet]()
	for coreK, members := range coreGroups {
		mergedSet := grammar.NewItemSet()
		for _, m := range members {
			set := canon.GetValue(m)
			for _, k := range grammar.SortedKeys(set) {
				it := set.Get(k)
				mergedSet.Set(it.String(), it)
			}
		}
		merged.AddState(coreK, mergedSet)
	}
	merged.Start = coreKeyOf[canon.Start]

	// rewrite transitions: for each canonical transition from->to on
	// symbol, add coreKeyOf[from] -> coreKeyOf[to] on symbol to the merged
	// automaton, checking for inconsistency (same source core + symbol
	// mapping to two different target cores).
	for _, from := range canon.OrderedStates() {
		fromCore := coreKeyOf[from]
		for _, sym := range util.OrderedKeys(canon.Transitions(from)) {
			to := canon.Transitions(from)[sym]
			toCore := coreKeyOf[to]

			existing := merged.Next(fromCore, sym)
			if existing != "" && existing != toCore {
				return nil, cerrors.UnresolvableConflict(
					"grammar is not LALR(1): state merge produced inconsistent GOTO[%s, %s] (both %s and %s)",
					fromCore, sym, existing, toCore)
			}
			merged.AddTransition(fromCore, sym, toCore)
		}
	}

	merged.NumberStates()
	return merged, nil
}

// coreKey derives a stable identifier for an item set based only on its
// LR0 cores (ignoring lookaheads), used to detect same-core canonical
// states that LALR(1) construction must merge.
func coreKey(set grammar.ItemSet) string {
	cores := grammar.CoreSet(set)
	keys := util.OrderedKeys(map[string]grammar.LR0Item(cores))
	name := ""
	for i, k := range keys {
		if i > 0 {
			name += "\x1f"
		}
		name += k
	}
	return name
}
