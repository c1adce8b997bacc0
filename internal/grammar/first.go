package grammar

import "github.com/corvidae/redfish/internal/util"

// FirstSets holds the computed FIRST set for every symbol in a grammar
// (terminals trivially map to themselves), plus whether each non-terminal
// can derive epsilon.
type FirstSets struct {
	sets    map[string]util.StringSet
	nullable map[string]bool
}

// ComputeFirstSets computes FIRST(X) for every terminal and non-terminal X
// in g by iterating to a fixpoint, the standard algorithm (purple dragon
// book §4.4.2).
func ComputeFirstSets(g *Grammar) *FirstSets {
	fs := &FirstSets{
		sets:     map[string]util.StringSet{},
		nullable: map[string]bool{},
	}

	for _, t := range g.Terminals() {
		fs.sets[t] = util.StringSetOf([]string{t})
	}
	fs.sets[EndOfInput] = util.StringSetOf([]string{EndOfInput})

	for _, nt := range g.NonTerminals() {
		fs.sets[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			rule, _ := g.Rule(nt)
			for _, prod := range rule.Productions {
				if len(prod) == 0 {
					if !fs.nullable[nt] {
						fs.nullable[nt] = true
						changed = true
					}
					continue
				}

				allNullableSoFar := true
				for _, sym := range prod {
					before := fs.sets[nt].Len()
					symFirst := fs.sets[sym]
					for _, t := range symFirst.Elements() {
						if t == "" {
							continue
						}
						fs.sets[nt].Add(t)
					}
					if fs.sets[nt].Len() != before {
						changed = true
					}

					if !fs.isNullable(sym, g) {
						allNullableSoFar = false
						break
					}
				}
				if allNullableSoFar && !fs.nullable[nt] {
					fs.nullable[nt] = true
					changed = true
				}
			}
		}
	}

	return fs
}

func (fs *FirstSets) isNullable(symbol string, g *Grammar) bool {
	if g.IsTerminal(symbol) {
		return false
	}
	return fs.nullable[symbol]
}

// Of returns FIRST(symbol).
func (fs *FirstSets) Of(symbol string) util.StringSet {
	if s, ok := fs.sets[symbol]; ok {
		return s
	}
	return util.NewStringSet()
}

// Nullable reports whether the non-terminal can derive epsilon.
func (fs *FirstSets) Nullable(nonTerminal string) bool {
	return fs.nullable[nonTerminal]
}

// OfString computes FIRST of a symbol string (a production's right-hand
// side, possibly followed by a lookahead symbol as the final entry), per
// the standard extension of FIRST from single symbols to strings: the
// union of FIRST of each prefix symbol up to and including the first
// non-nullable one.
func (fs *FirstSets) OfString(symbols []string, g *Grammar) util.StringSet {
	result := util.NewStringSet()
	allNullable := true
	for _, sym := range symbols {
		for _, t := range fs.Of(sym).Elements() {
			result.Add(t)
		}
		if !fs.isNullable(sym, g) {
			allNullable = false
			break
		}
	}
	if allNullable {
		// the whole string can vanish; caller is expected to have appended
		// a trailing lookahead/follow symbol when that matters, per the
		// CLOSURE rule this function primarily serves.
	}
	return result
}
