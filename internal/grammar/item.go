package grammar

import (
	"fmt"
	"strings"

	"github.com/corvidae/redfish/internal/cerrors"
	"github.com/corvidae/redfish/internal/util"
)

// LR0Item is a dotted production: NonTerminal -> Left . Right, where Left
// is the portion of the production already matched and Right is the
// portion yet to come.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

func (it LR0Item) Equal(o LR0Item) bool {
	if it.NonTerminal != o.NonTerminal {
		return false
	}
	return Production(it.Left).Equal(Production(o.Left)) && Production(it.Right).Equal(Production(o.Right))
}

func (it LR0Item) Copy() LR0Item {
	left := make([]string, len(it.Left))
	copy(left, it.Left)
	right := make([]string, len(it.Right))
	copy(right, it.Right)
	return LR0Item{NonTerminal: it.NonTerminal, Left: left, Right: right}
}

// AtEnd reports whether the dot has reached the end of the production
// (Right is empty), meaning this item calls for a reduce.
func (it LR0Item) AtEnd() bool {
	return len(it.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot, and whether one
// exists.
func (it LR0Item) NextSymbol() (string, bool) {
	if len(it.Right) == 0 {
		return "", false
	}
	return it.Right[0], true
}

// Advance returns a copy of it with the dot moved one symbol to the
// right. It panics if called on an item already AtEnd; callers are
// expected to check first.
func (it LR0Item) Advance() LR0Item {
	if it.AtEnd() {
		panic("cannot advance an item whose dot is already at the end")
	}
	next := it.Copy()
	next.Left = append(next.Left, it.Right[0])
	next.Right = it.Right[1:]
	return next
}

func (it LR0Item) String() string {
	ntPhrase := ""
	if it.NonTerminal != "" {
		ntPhrase = it.NonTerminal + " -> "
	}
	left := strings.Join(it.Left, " ")
	right := strings.Join(it.Right, " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s%s.%s", ntPhrase, left, right)
}

// LR1Item is an LR0Item paired with a single lookahead terminal.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (it LR1Item) Equal(o LR1Item) bool {
	return it.LR0Item.Equal(o.LR0Item) && it.Lookahead == o.Lookahead
}

func (it LR1Item) Copy() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Copy(), Lookahead: it.Lookahead}
}

func (it LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Advance(), Lookahead: it.Lookahead}
}

func (it LR1Item) String() string {
	return fmt.Sprintf("%s, %s", it.LR0Item.String(), it.Lookahead)
}

// ParseLR0Item parses the textual form "NONTERM -> ALPHA . BETA", with
// "ε" denoting an empty ALPHA or BETA.
func ParseLR0Item(s string) (LR0Item, error) {
	sides := strings.SplitN(s, "->", 2)
	if len(sides) != 2 {
		return LR0Item{}, cerrors.GrammarMalformed("not an item of form 'NONTERM -> ALPHA.BETA': %q", s)
	}
	nt := strings.TrimSpace(sides[0])
	if nt == "" {
		return LR0Item{}, cerrors.GrammarMalformed("empty non-terminal in item %q", s)
	}

	rhs := strings.TrimSpace(sides[1])
	dotParts := strings.SplitN(rhs, ".", 2)
	if len(dotParts) != 2 {
		return LR0Item{}, cerrors.GrammarMalformed("item must have exactly one dot: %q", s)
	}

	parseSide := func(side string) []string {
		var out []string
		for _, sym := range strings.Fields(side) {
			if sym == Epsilon {
				continue
			}
			out = append(out, sym)
		}
		return out
	}

	return LR0Item{
		NonTerminal: nt,
		Left:        parseSide(dotParts[0]),
		Right:       parseSide(dotParts[1]),
	}, nil
}

// MustParseLR0Item is ParseLR0Item but panics on error.
func MustParseLR0Item(s string) LR0Item {
	it, err := ParseLR0Item(s)
	if err != nil {
		panic(err.Error())
	}
	return it
}

// ParseLR1Item parses the textual form "NONTERM -> ALPHA . BETA, a".
func ParseLR1Item(s string) (LR1Item, error) {
	sides := strings.Split(s, ",")
	if len(sides) != 2 {
		return LR1Item{}, cerrors.GrammarMalformed("not an item of form 'NONTERM -> ALPHA.BETA, a': %q", s)
	}
	lr0, err := ParseLR0Item(sides[0])
	if err != nil {
		return LR1Item{}, err
	}
	return LR1Item{LR0Item: lr0, Lookahead: strings.TrimSpace(sides[1])}, nil
}

// MustParseLR1Item is ParseLR1Item but panics on error.
func MustParseLR1Item(s string) LR1Item {
	it, err := ParseLR1Item(s)
	if err != nil {
		panic(err.Error())
	}
	return it
}

// ItemSet is a set of LR1Items keyed by their textual notation, giving a
// value-comparable set suitable for use as an automaton state.
type ItemSet = util.ValueSet[LR1Item]

// NewItemSet returns an empty ItemSet.
func NewItemSet() ItemSet {
	return util.NewValueSet[LR1Item]()
}

// AddItem inserts it into set, keyed by its textual form.
func AddItem(set ItemSet, it LR1Item) {
	set.Set(it.String(), it)
}

// CoreSet reduces an ItemSet to the set of its LR0 cores (dropping
// lookaheads), keyed by LR0 textual notation. Two canonical-LR(1) states
// with equal CoreSets are merge candidates under LALR(1) construction.
func CoreSet(set ItemSet) util.ValueSet[LR0Item] {
	cores := util.NewValueSet[LR0Item]()
	for _, key := range set.Elements() {
		it := set.Get(key)
		cores.Set(it.LR0Item.String(), it.LR0Item)
	}
	return cores
}

// EqualCoreSets reports whether two ItemSets have identical LR0 cores,
// ignoring lookaheads.
func EqualCoreSets(a, b ItemSet) bool {
	ca, cb := CoreSet(a), CoreSet(b)
	if ca.Len() != cb.Len() {
		return false
	}
	for _, k := range ca.Elements() {
		if !cb.Has(k) {
			return false
		}
	}
	return true
}

// SortedKeys returns the textual keys of an ItemSet in alphabetical order,
// for deterministic iteration.
func SortedKeys(set ItemSet) []string {
	return util.OrderedKeys(map[string]LR1Item(set))
}
