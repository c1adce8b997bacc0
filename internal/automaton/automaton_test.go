package automaton

import (
	"testing"

	"github.com/corvidae/redfish/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func expressionGrammar() *grammar.Grammar {
	return grammar.MustParse("E -> E + T | T ;\nT -> T * F | F ;\nF -> ( E ) | id ;").Augmented()
}

func Test_NewLR1ViablePrefixDFA(t *testing.T) {
	assert := assert.New(t)

	g := expressionGrammar()
	fs := grammar.ComputeFirstSets(g)

	dfa := NewLR1ViablePrefixDFA(g, fs)

	assert.NotEmpty(dfa.Start)
	assert.Greater(len(dfa.States()), 1)

	// from the start state, shifting "id" must lead somewhere.
	next := dfa.Next(dfa.Start, "id")
	assert.NotEmpty(next)
}

func Test_NewLALR1ViablePrefixDFA_MergesCores(t *testing.T) {
	assert := assert.New(t)

	g := expressionGrammar()
	fs := grammar.ComputeFirstSets(g)

	canon := NewLR1ViablePrefixDFA(g, fs)
	lalr, err := NewLALR1ViablePrefixDFA(g, fs)
	assert.NoError(err)

	// the classic expression grammar is LALR(1) with strictly fewer states
	// than its canonical LR(1) collection once F -> id states with
	// differing lookaheads are merged.
	assert.Less(len(lalr.States()), len(canon.States()))
	assert.NotEmpty(lalr.Start)
}

func Test_NumberStates_Deterministic(t *testing.T) {
	assert := assert.New(t)

	g := expressionGrammar()
	fs := grammar.ComputeFirstSets(g)

	a := NewLR1ViablePrefixDFA(g, fs)
	b := NewLR1ViablePrefixDFA(g, fs)

	assert.Equal(a.OrderedStates(), b.OrderedStates())
	for _, s := range a.OrderedStates() {
		assert.Equal(a.StateIndex(s), b.StateIndex(s))
	}
}
