package grammar

// LR1Closure computes CLOSURE(items) under the standard LR(1) closure
// rule (purple dragon book Algorithm 4.54): for every item
// [A -> α.Bβ, a] in the set and every production B -> γ, add
// [B -> .γ, b] for every b in FIRST(βa).
func LR1Closure(g *Grammar, items ItemSet, fs *FirstSets) ItemSet {
	closure := NewItemSet()
	for _, k := range items.Elements() {
		closure.Set(k, items.Get(k))
	}

	changed := true
	for changed {
		changed = false
		for _, k := range SortedKeys(closure) {
			item := closure.Get(k)
			sym, ok := item.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}

			beta := item.Right[1:]
			lookaheads := fs.OfString(append(append([]string{}, beta...), item.Lookahead), g)
			// if beta is nullable all the way through, OfString already
			// included FIRST(lookahead) since it's appended as the final
			// symbol in the string.

			rule, _ := g.Rule(sym)
			for _, prod := range rule.Productions {
				for _, b := range lookaheads.Elements() {
					newItem := LR1Item{
						LR0Item:   LR0Item{NonTerminal: sym, Left: nil, Right: append([]string{}, prod...)},
						Lookahead: b,
					}
					key := newItem.String()
					if !closure.Has(key) {
						closure.Set(key, newItem)
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// LR1Goto computes GOTO(items, X): advance the dot past X in every item of
// items where X is the next symbol, then take the closure of the result.
func LR1Goto(g *Grammar, items ItemSet, symbol string, fs *FirstSets) ItemSet {
	moved := NewItemSet()
	for _, k := range items.Elements() {
		item := items.Get(k)
		sym, ok := item.NextSymbol()
		if !ok || sym != symbol {
			continue
		}
		advanced := item.Advance()
		moved.Set(advanced.String(), advanced)
	}
	if moved.Len() == 0 {
		return moved
	}
	return LR1Closure(g, moved, fs)
}

// InitialLR1ItemSet returns CLOSURE({[S' -> .S, $]}) for the augmented
// grammar g, the canonical LR(1) automaton's start state.
func InitialLR1ItemSet(g *Grammar, fs *FirstSets) ItemSet {
	rule, _ := g.Rule(g.StartSymbol())
	start := NewItemSet()
	for _, prod := range rule.Productions {
		item := LR1Item{
			LR0Item:   LR0Item{NonTerminal: g.StartSymbol(), Left: nil, Right: append([]string{}, prod...)},
			Lookahead: EndOfInput,
		}
		start.Set(item.String(), item)
	}
	return LR1Closure(g, start, fs)
}
